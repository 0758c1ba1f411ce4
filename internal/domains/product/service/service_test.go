package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"greenmarket-backend/internal/domains/product/model"
)

// MockProductRepository is a mock implementation of the ProductRepository interface
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, req model.ListProductsRequest) ([]*model.Product, int, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Product), args.Int(1), args.Error(2)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateSustainabilityScore(ctx context.Context, id uuid.UUID, score int) error {
	args := m.Called(ctx, id, score)
	return args.Error(0)
}

func (m *MockProductRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

// MockCache is a no-op cache that records invalidations
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) DeletePattern(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newTestService() (ServiceInterface, *MockProductRepository, *MockCache) {
	repo := new(MockProductRepository)
	c := new(MockCache)
	return NewProductService(repo, c), repo, c
}

func TestCreateProduct_GeneratesSlug(t *testing.T) {
	svc, repo, c := newTestService()
	ctx := context.Background()
	sellerID := uuid.New()

	repo.On("SlugExists", ctx, "bamboo-toothbrush").Return(false, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(p *model.Product) bool {
		return p.Slug == "bamboo-toothbrush" && p.SellerID == sellerID && p.Status == model.ProductStatusActive
	})).Return(nil)
	c.On("DeletePattern", ctx, "products:list:*").Return(nil)

	resp, err := svc.CreateProduct(ctx, sellerID, model.CreateProductRequest{
		Name:     "Bamboo Toothbrush",
		Price:    decimal.NewFromFloat(4.99),
		Category: "personal-care",
	})

	require.NoError(t, err)
	assert.Equal(t, "bamboo-toothbrush", resp.Slug)
	assert.Nil(t, resp.SustainabilityScore)
	repo.AssertExpectations(t)
}

func TestCreateProduct_SlugCollisionGetsSuffix(t *testing.T) {
	svc, repo, c := newTestService()
	ctx := context.Background()

	repo.On("SlugExists", ctx, "bamboo-toothbrush").Return(true, nil)
	repo.On("SlugExists", ctx, "bamboo-toothbrush-2").Return(true, nil)
	repo.On("SlugExists", ctx, "bamboo-toothbrush-3").Return(false, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Product")).Return(nil)
	c.On("DeletePattern", ctx, "products:list:*").Return(nil)

	resp, err := svc.CreateProduct(ctx, uuid.New(), model.CreateProductRequest{
		Name:     "Bamboo Toothbrush",
		Price:    decimal.NewFromFloat(4.99),
		Category: "personal-care",
	})

	require.NoError(t, err)
	assert.Equal(t, "bamboo-toothbrush-3", resp.Slug)
}

func TestCreateProduct_RejectsNonPositivePrice(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, uuid.New(), model.CreateProductRequest{
		Name:     "Free Sample",
		Price:    decimal.Zero,
		Category: "samples",
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateProduct_OnlyOwnerMayEdit(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	owner := uuid.New()
	intruder := uuid.New()
	product := &model.Product{
		ID:       uuid.New(),
		SellerID: owner,
		Name:     "Recycled Notebook",
		Slug:     "recycled-notebook",
		Price:    decimal.NewFromInt(7),
		Category: "stationery",
		Status:   model.ProductStatusActive,
	}

	repo.On("GetByID", ctx, product.ID).Return(product, nil)

	newName := "Recycled Notebook v2"
	_, err := svc.UpdateProduct(ctx, intruder, product.ID, model.UpdateProductRequest{Name: &newName})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateSustainabilityScore_RangeGuard(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	err := svc.UpdateSustainabilityScore(ctx, uuid.New(), 101)

	require.Error(t, err)
	repo.AssertNotCalled(t, "UpdateSustainabilityScore", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSustainabilityScore_InvalidatesListings(t *testing.T) {
	svc, repo, c := newTestService()
	ctx := context.Background()
	productID := uuid.New()

	repo.On("UpdateSustainabilityScore", ctx, productID, 88).Return(nil)
	c.On("DeletePattern", ctx, "products:list:*").Return(nil)

	err := svc.UpdateSustainabilityScore(ctx, productID, 88)

	require.NoError(t, err)
	c.AssertExpectations(t)
}

func TestListProducts_CacheMissQueriesAndStores(t *testing.T) {
	svc, repo, c := newTestService()
	ctx := context.Background()

	products := []*model.Product{
		{ID: uuid.New(), Name: "Solar Charger", Slug: "solar-charger", Price: decimal.NewFromInt(30)},
	}

	c.On("Get", ctx, mock.AnythingOfType("string"), mock.Anything).Return(false, nil)
	repo.On("List", ctx, mock.AnythingOfType("model.ListProductsRequest")).Return(products, 1, nil)
	c.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.ListProducts(ctx, model.ListProductsRequest{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Len(t, resp.Products, 1)
	assert.Equal(t, 1, resp.Pagination.Total)
	assert.False(t, resp.Pagination.HasNext)
	c.AssertExpectations(t)
}

func TestListProducts_NormalizesPagination(t *testing.T) {
	svc, repo, c := newTestService()
	ctx := context.Background()

	c.On("Get", ctx, mock.AnythingOfType("string"), mock.Anything).Return(false, nil)
	repo.On("List", ctx, mock.MatchedBy(func(req model.ListProductsRequest) bool {
		return req.Page == 1 && req.Limit == 20
	})).Return([]*model.Product{}, 0, nil)
	c.On("Set", ctx, mock.AnythingOfType("string"), mock.Anything, mock.Anything).Return(nil)

	_, err := svc.ListProducts(ctx, model.ListProductsRequest{Page: 0, Limit: 500})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
