package actions

import (
	"errors"

	"github.com/DAQEM/fakestore/store"
	"github.com/DAQEM/fakestore/views"
)

// AddItem puts one unit of a product into the current user's cart, creating
// the cart on first use.
func (a *Actions) AddItem(userID string, productID uint) Result {
	if _, err := a.carts.AddItem(userID, productID); err != nil {
		if errors.Is(err, store.ErrUnauthenticated) {
			return failed("you must be signed in to add items to your cart")
		}
		a.log.Error("add cart item failed", "user", userID, "product", productID, "error", err)
		return failed("could not add the item to your cart")
	}
	a.invalidateCartViews()
	return ok()
}

// SetQuantity changes an item's quantity; anything below 1 removes it.
func (a *Actions) SetQuantity(userID string, itemID uint, quantity int) Result {
	if userID == "" {
		return failed("you must be signed in to change your cart")
	}
	if err := a.carts.SetQuantity(itemID, quantity); err != nil {
		a.log.Error("set cart quantity failed", "item", itemID, "quantity", quantity, "error", err)
		return failed("could not update the item quantity")
	}
	a.invalidateCartViews()
	return ok()
}

// RemoveItem deletes an item from the cart; an unknown item id is a no-op.
func (a *Actions) RemoveItem(userID string, itemID uint) Result {
	if userID == "" {
		return failed("you must be signed in to change your cart")
	}
	if err := a.carts.RemoveItem(itemID); err != nil {
		a.log.Error("remove cart item failed", "item", itemID, "error", err)
		return failed("could not remove the item from your cart")
	}
	a.invalidateCartViews()
	return ok()
}

// The cart service already invalidated the cart page; the header badge is
// this layer's own surface.
func (a *Actions) invalidateCartViews() {
	a.views.Invalidate(views.CartBadge)
}
