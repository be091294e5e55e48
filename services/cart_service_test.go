package services

import (
	"context"
	"errors"
	"testing"

	"pharmacy-shop/models"
	"pharmacy-shop/stores"
)

type stubProductFinder struct {
	products map[int]models.Product
}

func (f *stubProductFinder) GetProductByID(id int) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return &p, nil
}

type stubOrderPersister struct {
	created []*models.Order
	fail    error
}

func (p *stubOrderPersister) Create(ctx context.Context, order *models.Order) error {
	if p.fail != nil {
		return p.fail
	}
	p.created = append(p.created, order)
	return nil
}

func newTestCartService(persister *stubOrderPersister) (*CartService, *stores.CartStore) {
	cart := stores.NewCartStore()
	wishlist := stores.NewWishlistStore()
	finder := &stubProductFinder{products: map[int]models.Product{
		10: {ID: 10, Name: "Pain Relief Tablets", Price: 12.99, IsActive: true},
		20: {ID: 20, Name: "Antibiotic Ointment", Price: 8.99, IsActive: true, RequiresPrescription: true},
		30: {ID: 30, Name: "Discontinued Syrup", Price: 4.99, IsActive: false},
	}}
	return NewCartService(cart, wishlist, finder, persister, nil, nil), cart
}

func signedIn(id int) models.Session {
	return models.AuthenticatedSession(&models.User{ID: id, Email: "user@example.com", Role: models.RoleUser}, "tok")
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderPersister{})

	if _, err := svc.AddToCart(1, 999); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddToCart_InactiveProduct(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderPersister{})

	if _, err := svc.AddToCart(1, 30); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for inactive product, got %v", err)
	}
}

func TestAddToCart_IncrementsExistingLine(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderPersister{})

	svc.AddToCart(1, 10)
	view, err := svc.AddToCart(1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Items) != 1 || view.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", view.Items)
	}
	if want := 2 * 12.99; view.Total != want {
		t.Errorf("expected total %.2f, got %.2f", want, view.Total)
	}
}

func TestCheckout_AnonymousIsNoOp(t *testing.T) {
	persister := &stubOrderPersister{}
	svc, cart := newTestCartService(persister)

	svc.AddToCart(1, 10)
	before := cart.View(1)

	_, err := svc.Checkout(context.Background(), models.Anonymous(), "")
	if !errors.Is(err, ErrSignInRequired) {
		t.Fatalf("expected ErrSignInRequired, got %v", err)
	}

	after := cart.View(1)
	if len(after.Items) != len(before.Items) || after.Total != before.Total {
		t.Error("anonymous checkout must leave the cart unchanged")
	}
	if len(persister.created) != 0 {
		t.Error("anonymous checkout must not create an order")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderPersister{})

	if _, err := svc.Checkout(context.Background(), signedIn(1), ""); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_PersistsOrderAndClearsCart(t *testing.T) {
	persister := &stubOrderPersister{}
	svc, cart := newTestCartService(persister)

	svc.AddToCart(1, 10)
	svc.AddToCart(1, 10)
	svc.AddToCart(1, 20)

	order, err := svc.Checkout(context.Background(), signedIn(1), "leave at door")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.OrderNumber == "" {
		t.Error("expected an order number")
	}
	if want := 2*12.99 + 8.99; order.TotalAmount != want {
		t.Errorf("expected total %.2f, got %.2f", want, order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.Items))
	}
	if order.Notes == nil || *order.Notes != "leave at door" {
		t.Error("expected notes to be carried onto the order")
	}
	if len(persister.created) != 1 {
		t.Fatalf("expected 1 persisted order, got %d", len(persister.created))
	}

	view := cart.View(1)
	if len(view.Items) != 0 || view.Total != 0 {
		t.Error("expected cart cleared after checkout completion")
	}
}

func TestCheckout_PersistFailureLeavesCartIntact(t *testing.T) {
	persister := &stubOrderPersister{fail: errors.New("connection refused")}
	svc, cart := newTestCartService(persister)

	svc.AddToCart(1, 10)

	if _, err := svc.Checkout(context.Background(), signedIn(1), ""); err == nil {
		t.Fatal("expected checkout to fail")
	}

	view := cart.View(1)
	if len(view.Items) != 1 {
		t.Error("failed checkout must not clear the cart")
	}
}

func TestToggleWishlist_UnknownProduct(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderPersister{})

	if _, err := svc.ToggleWishlist(1, 999); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestToggleWishlist_RoundTrip(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderPersister{})

	added, err := svc.ToggleWishlist(1, 10)
	if err != nil || !added {
		t.Fatalf("expected first toggle to add, got added=%v err=%v", added, err)
	}

	added, err = svc.ToggleWishlist(1, 10)
	if err != nil || added {
		t.Fatalf("expected second toggle to remove, got added=%v err=%v", added, err)
	}

	if len(svc.Wishlist(1)) != 0 {
		t.Error("expected empty wishlist after double toggle")
	}
}

func TestAddWishlistItemToCart_KeepsWishlistEntry(t *testing.T) {
	svc, cart := newTestCartService(&stubOrderPersister{})

	svc.ToggleWishlist(1, 10)

	view, err := svc.AddWishlistItemToCart(1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Items) != 1 || view.Items[0].Product.ID != 10 {
		t.Fatalf("expected product 10 in cart, got %+v", view.Items)
	}
	if len(svc.Wishlist(1)) != 1 {
		t.Error("expected wishlist entry to survive add-to-cart")
	}
	if cart.ItemCount(1) != 1 {
		t.Errorf("expected cart item count 1, got %d", cart.ItemCount(1))
	}
}

func TestAddWishlistItemToCart_NotSaved(t *testing.T) {
	svc, _ := newTestCartService(&stubOrderPersister{})

	if _, err := svc.AddWishlistItemToCart(1, 10); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for unsaved product, got %v", err)
	}
}
