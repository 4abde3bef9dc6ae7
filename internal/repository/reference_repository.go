package repository

import (
	"context"
	"database/sql"
	"fmt"

	"footwear-store/internal/domain"
)

// ReferenceRepository loads the session-immutable lookup sets and validates
// that a draft's reference ids resolve before a write is attempted.
type ReferenceRepository interface {
	LoadReferences(ctx context.Context) (*domain.ReferenceData, error)
	ValidateRefs(ctx context.Context, categoryID, manufacturerID, vendorID int) error
}

type referenceRepository struct {
	db *sql.DB
}

// NewReferenceRepository creates a new instance of ReferenceRepository
func NewReferenceRepository(db *sql.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) loadSet(ctx context.Context, query string) ([]domain.Reference, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("failed to load references", err)
	}
	defer rows.Close()

	refs := []domain.Reference{}
	for rows.Next() {
		ref := domain.Reference{}
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, classify("failed to scan reference", err)
		}
		refs = append(refs, ref)
	}

	if err = rows.Err(); err != nil {
		return nil, classify("error iterating references", err)
	}

	return refs, nil
}

// LoadReferences fetches categories, manufacturers and vendors, each ordered
// by display name.
func (r *referenceRepository) LoadReferences(ctx context.Context) (*domain.ReferenceData, error) {
	categories, err := r.loadSet(ctx, `SELECT id, category_name FROM categories ORDER BY category_name`)
	if err != nil {
		return nil, err
	}

	manufacturers, err := r.loadSet(ctx, `SELECT id, manufacturer_name FROM manufacturers ORDER BY manufacturer_name`)
	if err != nil {
		return nil, err
	}

	vendors, err := r.loadSet(ctx, `SELECT id, vendor_name FROM vendors ORDER BY vendor_name`)
	if err != nil {
		return nil, err
	}

	return &domain.ReferenceData{
		Categories:    categories,
		Manufacturers: manufacturers,
		Vendors:       vendors,
	}, nil
}

// ValidateRefs checks that all three reference ids exist. The products table
// carries no foreign keys, so this is the only integrity gate.
func (r *referenceRepository) ValidateRefs(ctx context.Context, categoryID, manufacturerID, vendorID int) error {
	query := `
		SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1),
		       EXISTS(SELECT 1 FROM manufacturers WHERE id = $2),
		       EXISTS(SELECT 1 FROM vendors WHERE id = $3)
	`

	var categoryOK, manufacturerOK, vendorOK bool
	err := r.db.QueryRowContext(ctx, query, categoryID, manufacturerID, vendorID).
		Scan(&categoryOK, &manufacturerOK, &vendorOK)
	if err != nil {
		return classify("failed to validate references", err)
	}

	if !categoryOK || !manufacturerOK || !vendorOK {
		return fmt.Errorf("%w: category=%v manufacturer=%v vendor=%v",
			ErrReferenceViolation, categoryOK, manufacturerOK, vendorOK)
	}

	return nil
}
