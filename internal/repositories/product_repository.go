package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"arlab_backend/internal/models"
)

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	CreateProduct(executor SQLExecutor, product *models.Product) (int64, error)
	GetProductByID(id int64) (*models.Product, error)
	GetProducts(searchTerm *string) ([]models.Product, error)
	UpdateProduct(executor SQLExecutor, product *models.Product) error
	DeleteProduct(executor SQLExecutor, id int64) error
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct inserts a new product into the database.
func (r *productRepository) CreateProduct(executor SQLExecutor, product *models.Product) (int64, error) {
	query := `INSERT INTO products (code, description, price, stock, category_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	var categoryID sql.NullInt64
	if product.CategoryID != nil {
		categoryID = sql.NullInt64{Int64: *product.CategoryID, Valid: true}
	}

	err := executor.QueryRow(query,
		product.Code, product.Description, product.Price, product.Stock, categoryID,
	).Scan(&product.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: creating product with unknown category: %v", ErrForeignKeyViolation, err)
		}
		return 0, fmt.Errorf("%w: creating product: %v", ErrDatabaseError, err)
	}
	return product.ID, nil
}

// GetProductByID retrieves a product with its category name.
func (r *productRepository) GetProductByID(id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT p.id, p.code, p.description, p.price, p.stock, p.category_id, c.name
	          FROM products p
	          LEFT JOIN categories c ON p.category_id = c.id
	          WHERE p.id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&product.ID, &product.Code, &product.Description, &product.Price,
		&product.Stock, &product.CategoryID, &product.CategoryName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting product by ID %d: %v", ErrDatabaseError, id, err)
	}
	return product, nil
}

// GetProducts retrieves the catalog with category names, optionally filtered
// by a case-insensitive substring match over code and description.
func (r *productRepository) GetProducts(searchTerm *string) ([]models.Product, error) {
	products := []models.Product{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT p.id, p.code, p.description, p.price, p.stock, p.category_id, c.name
	                          FROM products p
	                          LEFT JOIN categories c ON p.category_id = c.id`)

	var args []interface{}
	if searchTerm != nil && *searchTerm != "" {
		queryBuilder.WriteString(` WHERE p.description ILIKE $1 OR p.code ILIKE $1`)
		args = append(args, "%"+*searchTerm+"%")
	}
	queryBuilder.WriteString(` ORDER BY p.description ASC`)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var product models.Product
		if err := rows.Scan(
			&product.ID, &product.Code, &product.Description, &product.Price,
			&product.Stock, &product.CategoryID, &product.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning product: %v", ErrDatabaseError, err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating product rows: %v", ErrDatabaseError, err)
	}
	return products, nil
}

// UpdateProduct updates an existing product in the database.
func (r *productRepository) UpdateProduct(executor SQLExecutor, product *models.Product) error {
	query := `UPDATE products SET code = $1, description = $2, price = $3, stock = $4, category_id = $5
	          WHERE id = $6`

	var categoryID sql.NullInt64
	if product.CategoryID != nil {
		categoryID = sql.NullInt64{Int64: *product.CategoryID, Valid: true}
	}

	result, err := executor.Exec(query,
		product.Code, product.Description, product.Price, product.Stock, categoryID, product.ID,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: updating product with unknown category: %v", ErrForeignKeyViolation, err)
		}
		return fmt.Errorf("%w: updating product ID %d: %v", ErrDatabaseError, product.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating product ID %d: %v", ErrDatabaseError, product.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. Products referenced by sale line items
// cannot be deleted; that surfaces as ErrForeignKeyViolation.
func (r *productRepository) DeleteProduct(executor SQLExecutor, id int64) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: product ID %d is referenced by sale items", ErrForeignKeyViolation, id)
		}
		return fmt.Errorf("%w: deleting product ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting product ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
