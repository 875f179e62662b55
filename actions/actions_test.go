package actions

import (
	"errors"
	"io"
	"log/slog"

	"github.com/DAQEM/fakestore/auth"
	"github.com/DAQEM/fakestore/models"
	"github.com/DAQEM/fakestore/store"
	"github.com/DAQEM/fakestore/views"
)

type fakeCatalog struct {
	created   []models.Product
	updated   map[uint]store.ProductFields
	deleted   []uint
	updateErr error
	deleteErr error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{updated: make(map[uint]store.ProductFields)}
}

func (f *fakeCatalog) Create(p models.Product) (models.Product, error) {
	p.ID = uint(len(f.created) + 1)
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeCatalog) Update(id uint, fields store.ProductFields) (models.Product, error) {
	if f.updateErr != nil {
		return models.Product{}, f.updateErr
	}
	f.updated[id] = fields
	return models.Product{ID: id}, nil
}

func (f *fakeCatalog) Delete(id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCarts struct {
	added   []uint
	set     map[uint]int
	removed []uint
	err     error
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{set: make(map[uint]int)}
}

func (f *fakeCarts) AddItem(userID string, productID uint) (models.CartItem, error) {
	if userID == "" {
		return models.CartItem{}, store.ErrUnauthenticated
	}
	if f.err != nil {
		return models.CartItem{}, f.err
	}
	f.added = append(f.added, productID)
	return models.CartItem{ProductID: productID, Quantity: 1}, nil
}

func (f *fakeCarts) SetQuantity(itemID uint, quantity int) error {
	if f.err != nil {
		return f.err
	}
	f.set[itemID] = quantity
	return nil
}

func (f *fakeCarts) RemoveItem(itemID uint) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, itemID)
	return nil
}

type fakeIdentity struct {
	err error
}

func (f *fakeIdentity) Login(email, password string) (auth.Session, error) {
	if f.err != nil {
		return auth.Session{}, f.err
	}
	return auth.Session{Token: "tok", User: models.User{Email: email}}, nil
}

func (f *fakeIdentity) Signup(email, name, password string) (auth.Session, error) {
	if f.err != nil {
		return auth.Session{}, f.err
	}
	return auth.Session{Token: "tok", User: models.User{Email: email, Name: name}}, nil
}

func (f *fakeIdentity) Logout(token string) error {
	return f.err
}

var errStore = errors.New("store blew up")

type fixture struct {
	catalog *fakeCatalog
	carts   *fakeCarts
	id      *fakeIdentity
	reg     *views.Registry
	acts    *Actions
}

func newFixture() *fixture {
	catalog := newFakeCatalog()
	carts := newFakeCarts()
	id := &fakeIdentity{}
	reg := views.NewRegistry()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		catalog: catalog,
		carts:   carts,
		id:      id,
		reg:     reg,
		acts:    New(catalog, carts, id, reg, log),
	}
}
