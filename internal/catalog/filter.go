package catalog

import (
	"sort"
	"strings"

	"footwear-store/internal/domain"
)

// SortMode selects the quantity ordering of the catalog view.
type SortMode int

const (
	SortNone SortMode = iota
	SortQuantityAsc
	SortQuantityDesc
)

// AllVendors is the sentinel vendor constraint meaning "no constraint".
const AllVendors = ""

// Request is the (search text, vendor constraint, sort mode) triple governing
// a catalog view. The zero value selects the whole catalog in fetch order.
type Request struct {
	Search string
	Vendor string
	Sort   SortMode
}

// searchValues are the fields a search term is matched against; a hit on any
// one of them keeps the product.
func searchValues(p *domain.Product) []string {
	return []string{
		p.Name,
		p.Description,
		p.ManufacturerName,
		p.VendorName,
		p.CategoryName,
		p.Article,
		p.Size,
	}
}

// Apply narrows and orders the product set according to the request. The
// input is never mutated; the result is a fresh slice. Applying the same
// request to its own output yields the same output.
func Apply(products []domain.Product, req Request) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(req.Search))

	for _, p := range products {
		if req.Vendor != AllVendors && p.VendorName != req.Vendor {
			continue
		}

		if search != "" && !matches(&p, search) {
			continue
		}

		result = append(result, p)
	}

	switch req.Sort {
	case SortQuantityAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Quantity < result[j].Quantity
		})
	case SortQuantityDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Quantity > result[j].Quantity
		})
	}

	return result
}

func matches(p *domain.Product, search string) bool {
	for _, value := range searchValues(p) {
		if strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}
