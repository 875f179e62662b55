package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/DAQEM/fakestore/models"
	"github.com/DAQEM/fakestore/views"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Carts owns per-user Cart and CartItem state. Each user has at most one
// cart, created lazily on the first cart-mutating call and never deleted.
// Every successful item mutation invalidates the cart view.
type Carts struct {
	db    *gorm.DB
	views views.Invalidator
}

func NewCarts(db *gorm.DB, inv views.Invalidator) *Carts {
	return &Carts{db: db, views: inv}
}

// FindOrCreate returns the user's cart, inserting one if none exists yet.
// The insert runs as ON CONFLICT (user_id) DO NOTHING against the unique
// index, so two concurrent first-time callers both land on the same row: a
// conflict means someone else just created it and we re-read theirs.
func (s *Carts) FindOrCreate(userID string) (models.Cart, error) {
	if userID == "" {
		return models.Cart{}, ErrUnauthenticated
	}

	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, fmt.Errorf("fetch cart for user %s: %w", userID, err)
	}

	fresh := models.Cart{UserID: userID}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fresh).Error
	if err != nil {
		return models.Cart{}, fmt.Errorf("create cart for user %s: %w", userID, err)
	}

	// Re-read: on conflict the insert wrote nothing and fresh.ID is stale.
	if err := s.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return models.Cart{}, fmt.Errorf("reread cart for user %s: %w", userID, err)
	}
	return cart, nil
}

// AddItem puts one unit of a product into the user's cart. A repeated add
// bumps the existing row's quantity instead of inserting a duplicate. The
// product id is not checked against the catalog.
//
// The increment is read-modify-write: two adds racing on the same row can
// land as last-write-wins. Known weak point, accepted as best-effort.
func (s *Carts) AddItem(userID string, productID uint) (models.CartItem, error) {
	cart, err := s.FindOrCreate(userID)
	if err != nil {
		return models.CartItem{}, err
	}

	var item models.CartItem
	err = s.db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CartItem{}, fmt.Errorf("fetch cart item: %w", err)
		}
		item = models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  1,
			AddedAt:   time.Now(),
		}
		if err := s.db.Omit("Product").Create(&item).Error; err != nil {
			return models.CartItem{}, fmt.Errorf("add cart item: %w", err)
		}
		s.views.Invalidate(views.Cart)
		return item, nil
	}

	item.Quantity++
	if err := s.db.Omit("Product").Save(&item).Error; err != nil {
		return models.CartItem{}, fmt.Errorf("increment cart item %d: %w", item.ID, err)
	}
	s.views.Invalidate(views.Cart)
	return item, nil
}

// SetQuantity updates an item's quantity in place. Anything below 1 removes
// the row instead; quantities of zero or less are never persisted. Updating
// an unknown item id touches zero rows and reports success.
func (s *Carts) SetQuantity(itemID uint, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(itemID)
	}
	err := s.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity).Error
	if err != nil {
		return fmt.Errorf("set quantity on cart item %d: %w", itemID, err)
	}
	s.views.Invalidate(views.Cart)
	return nil
}

// RemoveItem deletes the item unconditionally; an unknown id is a no-op.
func (s *Carts) RemoveItem(itemID uint) error {
	if err := s.db.Delete(&models.CartItem{}, itemID).Error; err != nil {
		return fmt.Errorf("remove cart item %d: %w", itemID, err)
	}
	s.views.Invalidate(views.Cart)
	return nil
}

// Get returns the user's cart with items and their product details. A user
// with no cart yet gets an empty cart value rather than an error.
func (s *Carts) Get(userID string) (models.Cart, error) {
	if userID == "" {
		return models.Cart{}, ErrUnauthenticated
	}

	var cart models.Cart
	err := s.db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
		}
		return models.Cart{}, fmt.Errorf("fetch cart for user %s: %w", userID, err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// Count sums the quantities across the user's cart, for the header badge.
func (s *Carts) Count(userID string) (int, error) {
	cart, err := s.Get(userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, item := range cart.Items {
		total += item.Quantity
	}
	return total, nil
}
