package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"greenmarket-backend/internal/domains/product/model"
	"greenmarket-backend/internal/domains/product/repository"
	"greenmarket-backend/internal/shared/utils"
	"greenmarket-backend/pkg/cache"
)

const (
	productCacheTTL     = 1 * time.Hour
	productListCacheKey = "products:list"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type productService struct {
	productRepo repository.ProductRepository
	cache       cache.Cache
}

func NewProductService(
	productRepo repository.ProductRepository,
	cache cache.Cache,
) ServiceInterface {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
	}
}

// =====================================================
// CREATE PRODUCT
// =====================================================

func (s *productService) CreateProduct(
	ctx context.Context,
	sellerID uuid.UUID,
	req model.CreateProductRequest,
) (*model.ProductResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Generate a unique slug from the name
	slug, err := s.uniqueSlug(ctx, utils.GenerateSlug(req.Name))
	if err != nil {
		return nil, err
	}

	// Step 3: Create entity
	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		Status:      model.ProductStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Step 4: Persist
	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, model.ErrSlugTaken) {
			return nil, model.NewSlugTakenError(slug)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	// Step 5: Invalidate list cache
	s.invalidateListCache(ctx)

	return model.NewProductResponse(product), nil
}

// =====================================================
// GET PRODUCT
// =====================================================

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.NewProductNotFoundError()
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return model.NewProductResponse(product), nil
}

func (s *productService) GetProductBySlug(ctx context.Context, slug string) (*model.ProductResponse, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.NewProductNotFoundError()
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return model.NewProductResponse(product), nil
}

// =====================================================
// LIST PRODUCTS
// =====================================================

func (s *productService) ListProducts(
	ctx context.Context,
	req model.ListProductsRequest,
) (*model.ListProductsResponse, error) {
	// Step 1: Validate request (normalizes page/limit)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Try cache first
	cacheKey := fmt.Sprintf("%s:%v:%v:%t:%d:%d",
		productListCacheKey, derefOr(req.Category, "all"), derefOr(req.SellerID, "all"),
		req.CertifiedOnly, req.Page, req.Limit)

	var cached model.ListProductsResponse
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Product list cache read failed")
	}
	if found {
		return &cached, nil
	}

	// Step 3: Cache miss - query database
	products, total, err := s.productRepo.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	// Step 4: Build response
	responses := make([]model.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, *model.NewProductResponse(p))
	}

	totalPages := (total + req.Limit - 1) / req.Limit
	response := &model.ListProductsResponse{
		Products: responses,
		Pagination: model.PaginationMeta{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}

	// Step 5: Cache the result
	if err := s.cache.Set(ctx, cacheKey, response, productCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("Product list cache write failed")
	}

	return response, nil
}

// =====================================================
// UPDATE PRODUCT
// =====================================================

func (s *productService) UpdateProduct(
	ctx context.Context,
	sellerID, productID uuid.UUID,
	req model.UpdateProductRequest,
) (*model.ProductResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Get existing product
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.NewProductNotFoundError()
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	// Step 3: Verify ownership
	if product.SellerID != sellerID {
		return nil, model.NewNotOwnerError()
	}

	// Step 4: Apply provided fields
	if req.Name != nil && *req.Name != product.Name {
		product.Name = *req.Name
		slug, err := s.uniqueSlug(ctx, utils.GenerateSlug(*req.Name))
		if err != nil {
			return nil, err
		}
		product.Slug = slug
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	product.UpdatedAt = time.Now()

	// Step 5: Persist
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// Step 6: Invalidate list cache
	s.invalidateListCache(ctx)

	return model.NewProductResponse(product), nil
}

// =====================================================
// VERIFICATION GATEWAY
// =====================================================

func (s *productService) Exists(ctx context.Context, productID uuid.UUID) (bool, error) {
	return s.productRepo.Exists(ctx, productID)
}

func (s *productService) UpdateSustainabilityScore(ctx context.Context, productID uuid.UUID, score int) error {
	if score < 0 || score > 100 {
		return model.NewInvalidScoreError(score)
	}

	if err := s.productRepo.UpdateSustainabilityScore(ctx, productID, score); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return model.NewProductNotFoundError()
		}
		return fmt.Errorf("failed to update sustainability score: %w", err)
	}

	// Certified score changed; cached listings are stale
	s.invalidateListCache(ctx)

	return nil
}

// =====================================================
// HELPERS
// =====================================================

// uniqueSlug appends a numeric suffix until the slug is free
func (s *productService) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		taken, err := s.productRepo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *productService) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, productListCacheKey+":*"); err != nil {
		log.Warn().Err(err).Msg("Product list cache invalidation failed")
	}
}

func derefOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
