// Package actions holds the entry points the UI invokes to perform a write.
// Every operation wraps a store call, reports a tagged Result instead of
// letting an error escape, and invalidates each view whose displayed data
// could have changed.
package actions

import (
	"log/slog"

	"github.com/DAQEM/fakestore/auth"
	"github.com/DAQEM/fakestore/models"
	"github.com/DAQEM/fakestore/store"
	"github.com/DAQEM/fakestore/views"
)

// Catalog is the slice of the catalog store the action layer mutates.
type Catalog interface {
	Create(p models.Product) (models.Product, error)
	Update(id uint, fields store.ProductFields) (models.Product, error)
	Delete(id uint) error
}

// Carts is the slice of the cart service the action layer drives.
type Carts interface {
	AddItem(userID string, productID uint) (models.CartItem, error)
	SetQuantity(itemID uint, quantity int) error
	RemoveItem(itemID uint) error
}

// Identity is the external collaborator that verifies who the visitor is.
type Identity interface {
	Login(email, password string) (auth.Session, error)
	Signup(email, name, password string) (auth.Session, error)
	Logout(token string) error
}

// Result is the uniform outcome of an action: OK, or a human-readable
// message for inline display. Nothing else crosses this boundary.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func ok() Result {
	return Result{OK: true}
}

func failed(message string) Result {
	return Result{Message: message}
}

type Actions struct {
	catalog Catalog
	carts   Carts
	id      Identity
	views   views.Invalidator
	log     *slog.Logger
}

func New(catalog Catalog, carts Carts, id Identity, inv views.Invalidator, log *slog.Logger) *Actions {
	return &Actions{catalog: catalog, carts: carts, id: id, views: inv, log: log}
}
