package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/data/repository"
	"shop-loyalty/internal/dto/request"
	"shop-loyalty/internal/dto/response"
	"shop-loyalty/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService manages the pre-order catalog: categories with pickup
// days and the products inside them.
type ProductService interface {
	GetCatalog(ctx context.Context) ([]response.CategoryResponse, error)

	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetCatalog(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load categories", zap.Error(err))
		return nil, fmt.Errorf("load categories: %w", err)
	}

	catalog := make([]response.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		products, err := s.repo.Product.FindByCategory(ctx, category.ID)
		if err != nil {
			s.log.Error("Failed to load category products",
				zap.Error(err),
				zap.String("category_id", category.ID.String()),
			)
			return nil, fmt.Errorf("load products: %w", err)
		}
		catalog = append(catalog, response.CategoryToResponse(category, products))
	}

	return catalog, nil
}

func (s *productService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Image:      req.Image,
		ImageHint:  req.ImageHint,
		PickupDays: req.PickupDays,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created", zap.String("category_id", category.ID.String()), zap.String("name", category.Name))

	resp := response.CategoryToResponse(category, nil)
	return &resp, nil
}

func (s *productService) UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Image = req.Image
	category.ImageHint = req.ImageHint
	category.PickupDays = req.PickupDays
	category.UpdatedAt = time.Now()

	if err := s.repo.Category.Update(ctx, category); err != nil {
		s.log.Error("Failed to update category", zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("update category: %w", err)
	}

	products, err := s.repo.Product.FindByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	resp := response.CategoryToResponse(category, products)
	return &resp, nil
}

func (s *productService) DeleteCategory(ctx context.Context, categoryID string) error {
	category, err := s.findCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	// Products cascade with the category
	if err := s.repo.Category.Delete(ctx, category.ID); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("category_id", categoryID))
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.Info("Category deleted", zap.String("category_id", categoryID))
	return nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	category, err := s.findCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryID:   category.ID,
		Name:         req.Name,
		Image:        req.Image,
		ImageHint:    req.ImageHint,
		OrderOptions: toOrderOptions(req.OrderOptions),
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created", zap.String("product_id", product.ID.String()), zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", utils.ErrValidation)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product not found", utils.ErrNotFound)
	}

	category, err := s.findCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	product.CategoryID = category.ID
	product.Name = req.Name
	product.Image = req.Image
	product.ImageHint = req.ImageHint
	product.OrderOptions = toOrderOptions(req.OrderOptions)
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("update product: %w", err)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("%w: invalid product ID", utils.ErrValidation)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("%w: product not found", utils.ErrNotFound)
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.Info("Product deleted", zap.String("product_id", productID))
	return nil
}

func (s *productService) findCategory(ctx context.Context, categoryID string) (*entity.Category, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category ID", utils.ErrValidation)
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category not found", utils.ErrNotFound)
	}

	return category, nil
}

func toOrderOptions(reqs []request.OrderOptionRequest) []entity.OrderOption {
	options := make([]entity.OrderOption, 0, len(reqs))
	for _, req := range reqs {
		options = append(options, entity.OrderOption{
			Type:        entity.OptionType(req.Type),
			Label:       req.Label,
			Description: req.Description,
		})
	}
	return options
}
