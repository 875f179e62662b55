package actions

import (
	"errors"
	"strconv"
	"strings"

	"github.com/DAQEM/fakestore/models"
	"github.com/DAQEM/fakestore/store"
	"github.com/DAQEM/fakestore/views"
)

// ProductForm carries raw form fields; price arrives as text and must parse
// to a number before the store sees it.
type ProductForm struct {
	Title       string `json:"title" form:"title"`
	Price       string `json:"price" form:"price"`
	Description string `json:"description" form:"description"`
	Category    string `json:"category" form:"category"`
	Image       string `json:"image" form:"image"`
}

// CreateProduct validates the form and inserts a new catalog entry. New
// products always get a zero rating regardless of what was submitted.
func (a *Actions) CreateProduct(form ProductForm) Result {
	if form.Title == "" || form.Price == "" || form.Description == "" || form.Category == "" || form.Image == "" {
		return failed("title, price, description, category and image are required")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil {
		return failed("price must be a number")
	}

	_, err = a.catalog.Create(models.Product{
		Title:       form.Title,
		Price:       price,
		Description: form.Description,
		Category:    form.Category,
		Image:       form.Image,
	})
	if err != nil {
		a.log.Error("create product failed", "error", err)
		return failed("could not create the product")
	}

	// The store already invalidated the catalog views; the management page
	// is this layer's own surface.
	a.views.Invalidate(views.Admin)
	return ok()
}

// UpdateProduct overwrites the submitted fields of an existing product.
// Fields left empty are not touched; the rating is never overridden here.
func (a *Actions) UpdateProduct(id uint, form ProductForm) Result {
	var fields store.ProductFields
	if form.Title != "" {
		fields.Title = &form.Title
	}
	if form.Price != "" {
		price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
		if err != nil {
			return failed("price must be a number")
		}
		fields.Price = &price
	}
	if form.Description != "" {
		fields.Description = &form.Description
	}
	if form.Category != "" {
		fields.Category = &form.Category
	}
	if form.Image != "" {
		fields.Image = &form.Image
	}

	if _, err := a.catalog.Update(id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return failed("product not found")
		}
		a.log.Error("update product failed", "id", id, "error", err)
		return failed("could not update the product")
	}

	a.views.Invalidate(views.Admin)
	return ok()
}

// DeleteProduct removes a product. The caller has no feedback channel:
// failures are logged server-side and nothing is returned.
func (a *Actions) DeleteProduct(id uint) {
	if err := a.catalog.Delete(id); err != nil {
		a.log.Error("delete product failed", "id", id, "error", err)
		return
	}
	a.views.Invalidate(views.Admin)
}
