package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"arlab_backend/internal/models"
	"arlab_backend/internal/repositories"
)

// --- Custom Service Errors for Product ---
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductValidation = errors.New("product data validation error")
	ErrProductInUse      = errors.New("product cannot be deleted because it appears in sales")
)

// --- Product DTOs ---

type CreateProductRequest struct {
	Code        *string `json:"code"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  *int64  `json:"category_id"`
}

type UpdateProductRequest struct {
	Code        *string `json:"code"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  *int64  `json:"category_id"`
}

// --- ProductService Interface ---
type ProductService interface {
	CreateProduct(req CreateProductRequest) (*models.Product, error)
	GetProductByID(productID int64) (*models.Product, error)
	GetProducts(searchTerm *string) ([]models.Product, error)
	UpdateProduct(productID int64, req UpdateProductRequest) (*models.Product, error)
	DeleteProduct(productID int64) error
}

// --- productService Implementation ---
type productService struct {
	productRepo repositories.ProductRepository
	db          *sql.DB
}

// NewProductService creates a new instance of ProductService.
func NewProductService(repo repositories.ProductRepository, db *sql.DB) ProductService {
	return &productService{productRepo: repo, db: db}
}

func (s *productService) validate(description string, price float64) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrProductValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrProductValidation)
	}
	return nil
}

func (s *productService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	if err := s.validate(req.Description, req.Price); err != nil {
		return nil, err
	}

	product := &models.Product{
		Code:        req.Code,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}

	id, err := s.productRepo.CreateProduct(s.db, product)
	if err != nil {
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: unknown category", ErrProductValidation)
		}
		return nil, fmt.Errorf("failed to create product in repository: %w", err)
	}
	return s.productRepo.GetProductByID(id)
}

func (s *productService) GetProductByID(productID int64) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return product, nil
}

func (s *productService) GetProducts(searchTerm *string) ([]models.Product, error) {
	products, err := s.productRepo.GetProducts(searchTerm)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(productID int64, req UpdateProductRequest) (*models.Product, error) {
	if err := s.validate(req.Description, req.Price); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}

	product.Code = req.Code
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.CategoryID = req.CategoryID

	if err := s.productRepo.UpdateProduct(s.db, product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: unknown category", ErrProductValidation)
		}
		return nil, fmt.Errorf("failed to update product in repository: %w", err)
	}
	return s.productRepo.GetProductByID(productID)
}

func (s *productService) DeleteProduct(productID int64) error {
	err := s.productRepo.DeleteProduct(s.db, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrProductInUse
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
