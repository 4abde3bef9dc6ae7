package repository

import (
	"context"
	"database/sql"

	"footwear-store/internal/domain"
)

// productColumns is the joined projection shared by FetchAll and FetchOne.
// Products whose reference ids do not resolve are excluded by the inner
// joins; that is the intended catalog semantics, not an accident.
const productColumns = `
	SELECT p.id, p.article, p.product_name,
	       p.category_id, p.manufacturer_id, p.vendor_id,
	       c.category_name, m.manufacturer_name, v.vendor_name,
	       COALESCE(p.description, ''), COALESCE(p.size, ''),
	       p.price, p.quantity, p.discount, p.image
	FROM products p
	JOIN categories c ON p.category_id = c.id
	JOIN manufacturers m ON p.manufacturer_id = m.id
	JOIN vendors v ON p.vendor_id = v.id
`

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	FetchAll(ctx context.Context) ([]domain.Product, error)
	FetchOne(ctx context.Context, id int) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	UpdateImage(ctx context.Context, id int, image string) error
	Delete(ctx context.Context, id int) error
	CountOrderReferences(ctx context.Context, productID int) (int, error)
	NextID(ctx context.Context) (int, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.Article,
		&product.Name,
		&product.CategoryID,
		&product.ManufacturerID,
		&product.VendorID,
		&product.CategoryName,
		&product.ManufacturerName,
		&product.VendorName,
		&product.Description,
		&product.Size,
		&product.Price,
		&product.Quantity,
		&product.Discount,
		&product.Image,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// FetchAll retrieves the full joined catalog in stable id order.
func (r *productRepository) FetchAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, productColumns+` ORDER BY p.id`)
	if err != nil {
		return nil, classify("failed to fetch products", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, classify("failed to scan product", err)
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		return nil, classify("error iterating products", err)
	}

	return products, nil
}

// FetchOne retrieves a single joined product by id.
func (r *productRepository) FetchOne(ctx context.Context, id int) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, productColumns+` WHERE p.id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, classify("failed to fetch product", err)
	}

	return product, nil
}

// Insert writes a new row under an explicitly assigned id.
func (r *productRepository) Insert(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products
			(id, product_name, category_id, description, manufacturer_id,
			 vendor_id, price, size, quantity, discount, image, article)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.CategoryID,
		product.Description,
		product.ManufacturerID,
		product.VendorID,
		product.Price,
		product.Size,
		product.Quantity,
		product.Discount,
		product.Image,
		product.Article,
	)

	if err != nil {
		return classify("failed to insert product", err)
	}

	return nil
}

// Update performs a full-row update of all mutable fields.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET product_name = $2, category_id = $3, description = $4,
		    manufacturer_id = $5, vendor_id = $6, price = $7,
		    size = $8, quantity = $9, discount = $10, image = $11
		WHERE id = $1
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.CategoryID,
		product.Description,
		product.ManufacturerID,
		product.VendorID,
		product.Price,
		product.Size,
		product.Quantity,
		product.Discount,
		product.Image,
	)

	if err != nil {
		return classify("failed to update product", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return classify("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// UpdateImage sets the image reference of an existing row.
func (r *productRepository) UpdateImage(ctx context.Context, id int, image string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE products SET image = $2 WHERE id = $1`, id, image)
	if err != nil {
		return classify("failed to update product image", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return classify("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product row.
func (r *productRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return classify("failed to delete product", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return classify("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// CountOrderReferences counts order lines that still reference a product.
// Deletion is refused while the count is non-zero.
func (r *productRepository) CountOrderReferences(ctx context.Context, productID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM order_items WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, classify("failed to count order references", err)
	}

	return count, nil
}

// NextID allocates the next product id as max(id)+1, starting at 1 on an
// empty catalog. The read-then-insert window is accepted: a concurrent
// writer surfaces as ErrDuplicateID on Insert.
func (r *productRepository) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id), 0) + 1 FROM products`).Scan(&next)
	if err != nil {
		return 0, classify("failed to allocate product id", err)
	}

	return next, nil
}
