package store

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/DAQEM/fakestore/models"
	"github.com/DAQEM/fakestore/views"
)

func seedProduct(t *testing.T, catalog *Catalog, title, category string, price float64) models.Product {
	t.Helper()
	p, err := catalog.Create(models.Product{
		Title:       title,
		Description: "...",
		Category:    category,
		Image:       "http://x/y.png",
		Price:       price,
	})
	if err != nil {
		t.Fatalf("seed product %q: %v", title, err)
	}
	return p
}

func TestCreateProductStartsUnrated(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	before, err := catalog.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	created, err := catalog.Create(models.Product{
		Title:       "Shirt",
		Price:       19.99,
		Description: "...",
		Category:    "clothing",
		Image:       "http://x/y.png",
		RatingRate:  4.5, // must be ignored
		RatingCount: 12,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.RatingRate != 0 || created.RatingCount != 0 {
		t.Fatalf("new product must be unrated, got %+v", created)
	}

	after, err := catalog.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("catalog grew by %d, want 1", len(after)-len(before))
	}
}

func TestCreateProductValidation(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	if _, err := catalog.Create(models.Product{Title: "Shirt"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing fields: err = %v, want ErrValidation", err)
	}

	p := models.Product{
		Title:       "Shirt",
		Description: "...",
		Category:    "clothing",
		Image:       "http://x/y.png",
		Price:       -1,
	}
	if _, err := catalog.Create(p); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative price: err = %v, want ErrValidation", err)
	}
}

func TestGetUnknownProduct(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	if _, err := catalog.Get(99999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateOverwritesOnlySubmittedFields(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	p := seedProduct(t, catalog, "Shirt", "clothing", 19.99)

	price := 29.99
	updated, err := catalog.Update(p.ID, ProductFields{Price: &price})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Price != 29.99 {
		t.Fatalf("price = %v, want 29.99", updated.Price)
	}
	if updated.Title != "Shirt" || updated.Category != "clothing" {
		t.Fatalf("unsubmitted fields changed: %+v", updated)
	}
}

func TestUpdateUnknownProductLeavesCatalogUnchanged(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	seedProduct(t, catalog, "Shirt", "clothing", 19.99)

	price := 29.99
	if _, err := catalog.Update(99999, ProductFields{Price: &price}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update unknown id: err = %v, want ErrNotFound", err)
	}

	products, err := catalog.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(products) != 1 || products[0].Price != 19.99 {
		t.Fatalf("catalog changed: %+v", products)
	}
}

func TestDeleteProduct(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	p := seedProduct(t, catalog, "Shirt", "clothing", 19.99)

	if err := catalog.Delete(p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := catalog.Get(p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("product still present after delete")
	}
	if err := catalog.Delete(p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestListByCategoryMatchesDecodedInput(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	seedProduct(t, catalog, "Jacket", "men's clothing", 59.99)
	seedProduct(t, catalog, "Shirt", "men's clothing", 19.99)
	seedProduct(t, catalog, "Ring", "jewelery", 99.99)

	decoded, err := url.PathUnescape("men%27s%20clothing")
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}

	got, err := catalog.ListByCategory(decoded)
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	exact, err := catalog.ListByCategory("men's clothing")
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if !reflect.DeepEqual(got, exact) || len(got) != 2 {
		t.Fatalf("decoded query returned %d products, exact returned %d", len(got), len(exact))
	}

	// Case-sensitive: a different casing is a different (unknown) category.
	upper, err := catalog.ListByCategory("Men's Clothing")
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if len(upper) != 0 {
		t.Fatalf("case-insensitive match leaked %d products", len(upper))
	}
}

func TestListByCategoryUnknownIsEmptyNotError(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	got, err := catalog.ListByCategory("no-such-category")
	if err != nil {
		t.Fatalf("unknown category must not error, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestListCategoriesIsDeduplicatedProjection(t *testing.T) {
	db := testDB(t)
	catalog := NewCatalog(db, views.Noop{})

	seedProduct(t, catalog, "Jacket", "men's clothing", 59.99)
	seedProduct(t, catalog, "Shirt", "men's clothing", 19.99)
	seedProduct(t, catalog, "Ring", "jewelery", 99.99)

	names, err := catalog.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	want := []string{"jewelery", "men's clothing"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("categories = %v, want %v", names, want)
	}
}

func TestCatalogMutationsInvalidateViews(t *testing.T) {
	db := testDB(t)
	reg := views.NewRegistry()
	catalog := NewCatalog(db, reg)

	p := seedProduct(t, catalog, "Shirt", "clothing", 19.99)
	if reg.Revision(views.Products) != 1 {
		t.Fatal("create must invalidate the catalog list view")
	}

	price := 29.99
	if _, err := catalog.Update(p.ID, ProductFields{Price: &price}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if reg.Revision(views.Products) != 2 || reg.Revision(views.ProductPage(p.ID)) != 1 {
		t.Fatal("update must invalidate the list and single-product views")
	}

	if err := catalog.Delete(p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if reg.Revision(views.Products) != 3 || reg.Revision(views.ProductPage(p.ID)) != 2 {
		t.Fatal("delete must invalidate the list and single-product views")
	}
}
