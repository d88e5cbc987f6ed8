package repository

import (
	"context"
	"fmt"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, image, image_hint,
		                      order_options, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.CategoryID,
		product.Name,
		product.Image,
		product.ImageHint,
		product.OrderOptions,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, category_id, name, image, image_hint, order_options,
		       created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.CategoryID,
		&product.Name,
		&product.Image,
		&product.ImageHint,
		&product.OrderOptions,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return &product, nil
}

func (r *productRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, name, image, image_hint, order_options,
		       created_at, updated_at
		FROM products
		WHERE category_id = $1
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		r.log.Error("Failed to get category products",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return nil, fmt.Errorf("find products for category %s: %w", categoryID.String(), err)
	}
	defer rows.Close()

	return scanProducts(rows, r.log)
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, category_id, name, image, image_hint, order_options,
		       created_at, updated_at
		FROM products
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows, r.log)
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, image = $4, image_hint = $5,
		    order_options = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.CategoryID,
		product.Name,
		product.Image,
		product.ImageHint,
		product.OrderOptions,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", product.ID.String())
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id.String())
	}

	return nil
}

func scanProducts(rows pgx.Rows, log *zap.Logger) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.CategoryID,
			&product.Name,
			&product.Image,
			&product.ImageHint,
			&product.OrderOptions,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}
