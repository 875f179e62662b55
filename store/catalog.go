package store

import (
	"errors"
	"fmt"

	"github.com/DAQEM/fakestore/models"
	"github.com/DAQEM/fakestore/views"
	"gorm.io/gorm"
)

// Catalog owns Product rows and the category projection derived from them.
// Categories are not stored anywhere: any string is a valid category the
// moment a product references it.
//
// Every successful mutation invalidates the catalog list view, and for
// update/delete the single-product view as well.
type Catalog struct {
	db    *gorm.DB
	views views.Invalidator
}

func NewCatalog(db *gorm.DB, inv views.Invalidator) *Catalog {
	return &Catalog{db: db, views: inv}
}

func (s *Catalog) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *Catalog) Get(id uint) (models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return product, nil
}

// ListByCategory matches the exact category string, case-sensitive. An
// unknown category is an empty result, not an error.
func (s *Catalog) ListByCategory(category string) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Where("category = ?", category).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products in %q: %w", category, err)
	}
	return products, nil
}

func (s *Catalog) ListCategories() ([]string, error) {
	names := []string{}
	err := s.db.Model(&models.Product{}).
		Distinct("category").
		Order("category").
		Pluck("category", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return names, nil
}

// Create inserts a new product. Title, description, category, image and a
// non-negative price are all required; new products always start unrated.
func (s *Catalog) Create(p models.Product) (models.Product, error) {
	if p.Title == "" || p.Description == "" || p.Category == "" || p.Image == "" {
		return models.Product{}, fmt.Errorf("%w: title, description, category and image are required", ErrValidation)
	}
	if p.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	p.ID = 0
	p.RatingRate = 0
	p.RatingCount = 0
	if err := s.db.Create(&p).Error; err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	s.views.Invalidate(views.Products)
	return p, nil
}

// ProductFields carries a partial update: nil means "not submitted", anything
// else overwrites. There is no deeper merge semantics.
type ProductFields struct {
	Title       *string
	Price       *float64
	Description *string
	Category    *string
	Image       *string
}

func (s *Catalog) Update(id uint, fields ProductFields) (models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("fetch product %d: %w", id, err)
	}

	if fields.Title != nil {
		product.Title = *fields.Title
	}
	if fields.Price != nil {
		product.Price = *fields.Price
	}
	if fields.Description != nil {
		product.Description = *fields.Description
	}
	if fields.Category != nil {
		product.Category = *fields.Category
	}
	if fields.Image != nil {
		product.Image = *fields.Image
	}

	if err := s.db.Save(&product).Error; err != nil {
		return models.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	s.views.Invalidate(views.Products)
	s.views.Invalidate(views.ProductPage(id))
	return product, nil
}

func (s *Catalog) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	s.views.Invalidate(views.Products)
	s.views.Invalidate(views.ProductPage(id))
	return nil
}
