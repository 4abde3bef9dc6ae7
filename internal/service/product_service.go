package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"footwear-store/internal/assets"
	"footwear-store/internal/domain"
	"footwear-store/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrDeleteBlocked = errors.New("product is referenced by an order and cannot be deleted")
)

// ProductDraft carries the user-entered fields of a create or update. The id
// and article are never part of a draft; they are allocated by the workflow.
type ProductDraft struct {
	Name           string
	Description    string
	Size           string
	CategoryID     int
	ManufacturerID int
	VendorID       int
	Price          decimal.Decimal
	Quantity       int
	Discount       int
}

// ProductService orchestrates catalog writes: validation, id/article
// allocation, the row write and the associated image asset. The row write is
// the source of truth; asset cleanup is best-effort and never fails a save.
type ProductService interface {
	Create(ctx context.Context, draft ProductDraft, newImage *assets.Staged) (*domain.Product, error)
	Update(ctx context.Context, id int, draft ProductDraft, newImage *assets.Staged) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type productService struct {
	products repository.ProductRepository
	refs     repository.ReferenceRepository
	assets   *assets.Manager
	logger   *zap.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(
	products repository.ProductRepository,
	refs repository.ReferenceRepository,
	assetManager *assets.Manager,
	logger *zap.Logger,
) ProductService {
	return &productService{
		products: products,
		refs:     refs,
		assets:   assetManager,
		logger:   logger,
	}
}

// FormatArticle derives the display article code from an allocated id.
func FormatArticle(id int) string {
	return fmt.Sprintf("ART%04d", id)
}

// validate normalizes the draft and rejects it before any write is attempted.
func (s *productService) validate(ctx context.Context, draft *ProductDraft) error {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Size = strings.TrimSpace(draft.Size)

	if draft.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if draft.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if draft.Quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
	}
	if draft.Discount < 0 || draft.Discount > 100 {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	}

	return s.refs.ValidateRefs(ctx, draft.CategoryID, draft.ManufacturerID, draft.VendorID)
}

func (draft *ProductDraft) toProduct(id int, article string, image *string) *domain.Product {
	return &domain.Product{
		ID:             id,
		Article:        article,
		Name:           draft.Name,
		CategoryID:     draft.CategoryID,
		ManufacturerID: draft.ManufacturerID,
		VendorID:       draft.VendorID,
		Description:    draft.Description,
		Size:           draft.Size,
		Price:          draft.Price,
		Quantity:       draft.Quantity,
		Discount:       draft.Discount,
		Image:          image,
	}
}

// Create validates the draft, allocates the next id and article, inserts the
// row, and then commits the staged image (if any) under the id-derived name
// with a follow-up update of the row's image reference.
func (s *productService) Create(ctx context.Context, draft ProductDraft, newImage *assets.Staged) (*domain.Product, error) {
	if err := s.validate(ctx, &draft); err != nil {
		return nil, err
	}

	id, err := s.products.NextID(ctx)
	if err != nil {
		return nil, err
	}

	product := draft.toProduct(id, FormatArticle(id), nil)
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}

	if newImage != nil {
		path, err := s.assets.Commit(newImage, id)
		if err != nil {
			// The row is already committed and owns the truth; the product
			// simply stays without an image.
			s.logger.Warn("Failed to commit product image",
				zap.Int("product_id", id),
				zap.Error(err),
			)
			return s.products.FetchOne(ctx, id)
		}

		if err := s.products.UpdateImage(ctx, id, path); err != nil {
			return nil, err
		}
	}

	return s.products.FetchOne(ctx, id)
}

// Update validates the draft, commits a newly staged image under the existing
// id's derived name, writes the full row, and best-effort removes the asset
// the new image replaced.
func (s *productService) Update(ctx context.Context, id int, draft ProductDraft, newImage *assets.Staged) (*domain.Product, error) {
	if err := s.validate(ctx, &draft); err != nil {
		return nil, err
	}

	existing, err := s.products.FetchOne(ctx, id)
	if err != nil {
		return nil, err
	}

	var oldPath string
	if existing.Image != nil {
		oldPath = *existing.Image
	}

	image := existing.Image
	if newImage != nil {
		path, err := s.assets.Commit(newImage, id)
		if err != nil {
			return nil, err
		}
		image = &path
	}

	product := draft.toProduct(id, existing.Article, image)
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	if newImage != nil && image != nil {
		s.assets.Replace(oldPath, *image)
	}

	return s.products.FetchOne(ctx, id)
}

// Delete refuses to remove a product still referenced by an order line;
// otherwise it deletes the row and best-effort removes its asset file.
func (s *productService) Delete(ctx context.Context, id int) error {
	count, err := s.products.CountOrderReferences(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %d order line(s)", ErrDeleteBlocked, count)
	}

	existing, err := s.products.FetchOne(ctx, id)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	if existing.Image != nil {
		s.assets.Remove(*existing.Image)
	}

	return nil
}
