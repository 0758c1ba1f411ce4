package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"greenmarket-backend/internal/domains/product/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresProductRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &postgresProductRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (
			id, seller_id, name, slug, description,
			price, category, images,
			sustainability_score, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.SellerID,
		product.Name,
		product.Slug,
		product.Description,
		product.Price,
		product.Category,
		pq.Array([]string(product.Images)),
		product.SustainabilityScore,
		product.Status,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `
		SELECT
			id, seller_id, name, slug, description,
			price, category, images,
			sustainability_score, status,
			created_at, updated_at
		FROM products
		WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// =====================================================
// GET BY SLUG
// =====================================================

func (r *postgresProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	query := `
		SELECT
			id, seller_id, name, slug, description,
			price, category, images,
			sustainability_score, status,
			created_at, updated_at
		FROM products
		WHERE slug = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

// =====================================================
// EXISTS
// =====================================================

func (r *postgresProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}

	return exists, nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresProductRepository) List(
	ctx context.Context,
	req model.ListProductsRequest,
) ([]*model.Product, int, error) {
	// Build dynamic query
	baseWhere := ` WHERE status = 'active'`
	args := []interface{}{}
	argCount := 1

	if req.Category != nil {
		baseWhere += fmt.Sprintf(" AND category = $%d", argCount)
		args = append(args, *req.Category)
		argCount++
	}

	if req.SellerID != nil {
		baseWhere += fmt.Sprintf(" AND seller_id = $%d", argCount)
		args = append(args, *req.SellerID)
		argCount++
	}

	if req.CertifiedOnly {
		baseWhere += " AND sustainability_score IS NOT NULL"
	}

	query := `
		SELECT
			id, seller_id, name, slug, description,
			price, category, images,
			sustainability_score, status,
			created_at, updated_at
		FROM products` + baseWhere +
		" ORDER BY created_at DESC" +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1)

	queryArgs := append(append([]interface{}{}, args...), req.Limit, (req.Page-1)*req.Limit)

	rows, err := r.pool.Query(ctx, query, queryArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		product, err := r.scanRow(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read products: %w", err)
	}

	// Count with same filters
	countQuery := `SELECT COUNT(*) FROM products` + baseWhere
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	return products, total, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresProductRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET
			name = $2,
			slug = $3,
			description = $4,
			price = $5,
			category = $6,
			images = $7,
			status = $8,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		product.Price,
		product.Category,
		pq.Array([]string(product.Images)),
		product.Status,
	)

	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// =====================================================
// UPDATE SUSTAINABILITY SCORE
// =====================================================

func (r *postgresProductRepository) UpdateSustainabilityScore(ctx context.Context, id uuid.UUID, score int) error {
	query := `
		UPDATE products
		SET sustainability_score = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, score)
	if err != nil {
		return fmt.Errorf("failed to update sustainability score: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

// =====================================================
// SLUG EXISTS
// =====================================================

func (r *postgresProductRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}

	return exists, nil
}

// =====================================================
// HELPERS
// =====================================================

func (r *postgresProductRepository) scanOne(row pgx.Row) (*model.Product, error) {
	product := &model.Product{}
	var images []string

	err := row.Scan(
		&product.ID,
		&product.SellerID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Price,
		&product.Category,
		pq.Array(&images),
		&product.SustainabilityScore,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product.Images = images
	return product, nil
}

func (r *postgresProductRepository) scanRow(rows pgx.Rows) (*model.Product, error) {
	product := &model.Product{}
	var images []string

	err := rows.Scan(
		&product.ID,
		&product.SellerID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Price,
		&product.Category,
		pq.Array(&images),
		&product.SustainabilityScore,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	product.Images = images
	return product, nil
}
