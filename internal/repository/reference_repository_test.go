package repository

import (
	"context"
	"errors"
	"testing"
)

func TestLoadReferencesOrdersByName(t *testing.T) {
	resetTables(t)

	stmts := []string{
		`INSERT INTO categories (id, category_name) VALUES (1, 'Sneakers'), (2, 'Boots'), (3, 'Sandals')`,
		`INSERT INTO manufacturers (id, manufacturer_name) VALUES (1, 'Ralf Ringer'), (2, 'Ecco')`,
		`INSERT INTO vendors (id, vendor_name) VALUES (1, 'ShoePort'), (2, 'Baltic Trade')`,
	}
	for _, stmt := range stmts {
		if _, err := testDB.Exec(stmt); err != nil {
			t.Fatalf("failed to seed references: %v", err)
		}
	}

	repo := NewReferenceRepository(testDB)
	refs, err := repo.LoadReferences(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	wantCategories := []string{"Boots", "Sandals", "Sneakers"}
	for i, want := range wantCategories {
		if refs.Categories[i].Name != want {
			t.Fatalf("categories out of order: %+v", refs.Categories)
		}
	}
	if refs.Manufacturers[0].Name != "Ecco" {
		t.Errorf("manufacturers out of order: %+v", refs.Manufacturers)
	}
	if refs.Vendors[0].Name != "Baltic Trade" {
		t.Errorf("vendors out of order: %+v", refs.Vendors)
	}
}

func TestValidateRefs(t *testing.T) {
	resetTables(t)
	seedReferences(t)

	repo := NewReferenceRepository(testDB)
	ctx := context.Background()

	if err := repo.ValidateRefs(ctx, 1, 1, 1); err != nil {
		t.Fatalf("valid ids rejected: %v", err)
	}

	cases := [][3]int{
		{99, 1, 1},
		{1, 99, 1},
		{1, 1, 99},
	}
	for _, ids := range cases {
		err := repo.ValidateRefs(ctx, ids[0], ids[1], ids[2])
		if !errors.Is(err, ErrReferenceViolation) {
			t.Errorf("ids %v: expected ErrReferenceViolation, got %v", ids, err)
		}
	}
}
