package catalog

import (
	"context"
	"testing"

	"footwear-store/internal/domain"
	"footwear-store/internal/repository"
)

// Mock catalog repository for testing
type mockProductRepository struct {
	products   []domain.Product
	fetchCalls int
	err        error
}

func (m *mockProductRepository) FetchAll(ctx context.Context) ([]domain.Product, error) {
	m.fetchCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *mockProductRepository) FetchOne(ctx context.Context, id int) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) Insert(ctx context.Context, product *domain.Product) error {
	m.products = append(m.products, *product)
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return nil
}

func (m *mockProductRepository) UpdateImage(ctx context.Context, id int, image string) error {
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int) error {
	return nil
}

func (m *mockProductRepository) CountOrderReferences(ctx context.Context, productID int) (int, error) {
	return 0, nil
}

func (m *mockProductRepository) NextID(ctx context.Context) (int, error) {
	return len(m.products) + 1, nil
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Runner Pro", VendorName: "ShoePort", Quantity: 5},
		{ID: 2, Name: "Winter Boot", VendorName: "Baltic Trade", Quantity: 0},
		{ID: 3, Name: "City Sandal", VendorName: "ShoePort", Quantity: 12},
	}
}

func TestSessionRefreshAppliesCurrentFilter(t *testing.T) {
	repo := &mockProductRepository{products: testCatalog()}
	session := NewViewSession(repo)
	ctx := context.Background()

	if err := session.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if got := session.CurrentView(); len(got) != 3 {
		t.Fatalf("expected full catalog, got %d products", len(got))
	}

	session.SetFilter(Request{Vendor: "ShoePort"})
	if got := session.CurrentView(); len(got) != 2 {
		t.Fatalf("expected 2 ShoePort products, got %d", len(got))
	}

	// A refresh keeps the active filter.
	repo.products = append(repo.products, domain.Product{ID: 4, Name: "Trail Shoe", VendorName: "ShoePort", Quantity: 7})
	if err := session.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if got := session.CurrentView(); len(got) != 3 {
		t.Fatalf("expected 3 ShoePort products after refresh, got %d", len(got))
	}
	if repo.fetchCalls != 2 {
		t.Fatalf("expected 2 fetches, got %d", repo.fetchCalls)
	}
}

func TestSessionResetRestoresDefaultRequest(t *testing.T) {
	repo := &mockProductRepository{products: testCatalog()}
	session := NewViewSession(repo)

	if err := session.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	session.SetFilter(Request{Search: "runner", Vendor: "ShoePort", Sort: SortQuantityDesc})
	session.Reset()

	if session.Filter() != (Request{}) {
		t.Fatalf("expected default request, got %+v", session.Filter())
	}
	if got := session.CurrentView(); len(got) != 3 {
		t.Fatalf("expected full catalog after reset, got %d products", len(got))
	}
}

func TestSessionCurrentViewIsACopy(t *testing.T) {
	repo := &mockProductRepository{products: testCatalog()}
	session := NewViewSession(repo)

	if err := session.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	view := session.CurrentView()
	view[0].Name = "mutated"

	if session.CurrentView()[0].Name != "Runner Pro" {
		t.Fatal("mutating the returned view leaked into the session")
	}
}

func TestSessionVendorsAreSortedAndDistinct(t *testing.T) {
	repo := &mockProductRepository{products: testCatalog()}
	session := NewViewSession(repo)

	if err := session.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	vendors := session.Vendors()
	want := []string{"Baltic Trade", "ShoePort"}
	if len(vendors) != len(want) {
		t.Fatalf("expected %v, got %v", want, vendors)
	}
	for i := range want {
		if vendors[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, vendors)
		}
	}
}
