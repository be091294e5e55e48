package stores

import (
	"testing"
)

func TestToggle_AddsWhenAbsent(t *testing.T) {
	s := NewWishlistStore()

	added := s.Toggle(1, product(10, 12.99))

	if !added {
		t.Error("expected toggle to report the product was added")
	}
	if !s.Contains(1, 10) {
		t.Error("expected product in wishlist after toggle")
	}
}

func TestToggle_Involution(t *testing.T) {
	s := NewWishlistStore()
	p := product(10, 12.99)

	s.Toggle(1, p)
	s.Toggle(1, p)

	if s.Contains(1, 10) {
		t.Error("expected double toggle to restore original membership")
	}
	if s.Count(1) != 0 {
		t.Errorf("expected empty wishlist, got %d entries", s.Count(1))
	}
}

func TestToggle_ParitySemantics(t *testing.T) {
	s := NewWishlistStore()
	p := product(10, 12.99)

	for i := 0; i < 5; i++ {
		s.Toggle(1, p)
	}

	if !s.Contains(1, 10) {
		t.Error("expected product present after odd number of toggles")
	}
}

func TestRemove_Idempotent_Wishlist(t *testing.T) {
	s := NewWishlistStore()
	s.Toggle(1, product(10, 12.99))

	s.Remove(1, 10)
	s.Remove(1, 10)

	if s.Contains(1, 10) {
		t.Error("expected product removed")
	}
}

func TestEntries_PreservesInsertionOrder(t *testing.T) {
	s := NewWishlistStore()
	s.Toggle(1, product(30, 1.00))
	s.Toggle(1, product(10, 1.00))
	s.Toggle(1, product(20, 1.00))

	entries := s.Entries(1)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []int{30, 10, 20} {
		if entries[i].ID != want {
			t.Errorf("entry %d: expected product %d, got %d", i, want, entries[i].ID)
		}
	}
}

func TestWishlist_IsolatedPerUser(t *testing.T) {
	s := NewWishlistStore()
	s.Toggle(1, product(10, 1.00))

	if s.Contains(2, 10) {
		t.Error("user 2 should not see user 1's wishlist")
	}
}
