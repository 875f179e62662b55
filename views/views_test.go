package views

import "testing"

func TestRegistryRevisions(t *testing.T) {
	reg := NewRegistry()

	if got := reg.Revision(Products); got != 0 {
		t.Fatalf("fresh key revision = %d, want 0", got)
	}

	reg.Invalidate(Products)
	reg.Invalidate(Products)
	reg.Invalidate(Cart)

	if got := reg.Revision(Products); got != 2 {
		t.Fatalf("products revision = %d, want 2", got)
	}
	if got := reg.Revision(Cart); got != 1 {
		t.Fatalf("cart revision = %d, want 1", got)
	}
	if got := reg.Revision(CartBadge); got != 0 {
		t.Fatalf("untouched key revision = %d, want 0", got)
	}
}

func TestProductPageKey(t *testing.T) {
	if got := ProductPage(7); got != "/products/7" {
		t.Fatalf("ProductPage(7) = %q", got)
	}
}
