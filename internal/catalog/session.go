package catalog

import (
	"context"
	"sort"

	"footwear-store/internal/domain"
	"footwear-store/internal/repository"
)

// ViewSession owns one window's authoritative catalog snapshot and its active
// filter request. Sessions are not shared between windows; each one refreshes
// independently.
type ViewSession struct {
	repo repository.ProductRepository
	all  []domain.Product
	req  Request
	view []domain.Product
}

// NewViewSession creates an empty session; call Refresh to populate it.
func NewViewSession(repo repository.ProductRepository) *ViewSession {
	return &ViewSession{repo: repo}
}

// Refresh re-fetches the full catalog and re-applies the current request.
// Object identity is not preserved across refreshes.
func (s *ViewSession) Refresh(ctx context.Context) error {
	all, err := s.repo.FetchAll(ctx)
	if err != nil {
		return err
	}

	s.all = all
	s.view = Apply(s.all, s.req)
	return nil
}

// SetFilter stores the request and recomputes the view.
func (s *ViewSession) SetFilter(req Request) {
	s.req = req
	s.view = Apply(s.all, s.req)
}

// Reset restores the default request and recomputes the view.
func (s *ViewSession) Reset() {
	s.SetFilter(Request{})
}

// Filter returns the active request.
func (s *ViewSession) Filter() Request {
	return s.req
}

// CurrentView returns the ordered, filtered view. The returned slice is a
// copy; the session's snapshot is never handed out for mutation.
func (s *ViewSession) CurrentView() []domain.Product {
	view := make([]domain.Product, len(s.view))
	copy(view, s.view)
	return view
}

// Vendors returns the distinct vendor names present in the snapshot, sorted
// ascending. Presentation uses this to build the vendor constraint choices.
func (s *ViewSession) Vendors() []string {
	seen := make(map[string]struct{}, len(s.all))
	vendors := make([]string, 0, len(s.all))
	for _, p := range s.all {
		if _, ok := seen[p.VendorName]; ok {
			continue
		}
		seen[p.VendorName] = struct{}{}
		vendors = append(vendors, p.VendorName)
	}

	sort.Strings(vendors)
	return vendors
}
