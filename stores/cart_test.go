package stores

import (
	"testing"

	"pharmacy-shop/models"
)

func product(id int, price float64) models.Product {
	return models.Product{ID: id, Name: "Drug", Price: price, IsActive: true}
}

func TestAddOrIncrement_NewProduct(t *testing.T) {
	s := NewCartStore()
	s.AddOrIncrement(1, product(10, 12.99))

	lines := s.Lines(1)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 1 {
		t.Errorf("expected quantity 1, got %d", lines[0].Quantity)
	}
}

func TestAddOrIncrement_RepeatedCalls(t *testing.T) {
	s := NewCartStore()
	p1 := product(10, 12.99)
	p2 := product(20, 5.50)

	s.AddOrIncrement(1, p1)
	s.AddOrIncrement(1, p1)
	s.AddOrIncrement(1, p2)
	s.AddOrIncrement(1, p1)

	lines := s.Lines(1)
	if len(lines) != 2 {
		t.Fatalf("expected one line per distinct product, got %d lines", len(lines))
	}
	if lines[0].Product.ID != 10 || lines[0].Quantity != 3 {
		t.Errorf("expected product 10 with quantity 3, got product %d quantity %d", lines[0].Product.ID, lines[0].Quantity)
	}
	if lines[1].Product.ID != 20 || lines[1].Quantity != 1 {
		t.Errorf("expected product 20 with quantity 1, got product %d quantity %d", lines[1].Product.ID, lines[1].Quantity)
	}
}

func TestAddOrIncrement_Total(t *testing.T) {
	s := NewCartStore()
	p := product(10, 12.99)

	s.AddOrIncrement(1, p)
	s.AddOrIncrement(1, p)

	if got, want := s.Total(1), 2*12.99; got != want {
		t.Errorf("expected total %.2f, got %.2f", want, got)
	}
}

func TestSetQuantity_Replaces(t *testing.T) {
	s := NewCartStore()
	s.AddOrIncrement(1, product(10, 2.00))

	s.SetQuantity(1, 10, 5)

	lines := s.Lines(1)
	if lines[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", lines[0].Quantity)
	}
	if got := s.Total(1); got != 10.00 {
		t.Errorf("expected total 10.00, got %.2f", got)
	}
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	s := NewCartStore()
	s.AddOrIncrement(1, product(10, 2.00))
	s.AddOrIncrement(1, product(10, 2.00))

	s.SetQuantity(1, 10, 0)

	if len(s.Lines(1)) != 0 {
		t.Error("expected line removed when quantity set to 0")
	}
}

func TestSetQuantity_NegativeRemovesLine(t *testing.T) {
	s := NewCartStore()
	s.AddOrIncrement(1, product(10, 2.00))

	s.SetQuantity(1, 10, -3)

	if len(s.Lines(1)) != 0 {
		t.Error("expected negative quantity to remove the line")
	}
}

func TestSetQuantity_AbsentProductIsNoOp(t *testing.T) {
	s := NewCartStore()
	s.SetQuantity(1, 99, 4)

	if len(s.Lines(1)) != 0 {
		t.Error("expected no line for an absent product")
	}
}

func TestRemove_Idempotent(t *testing.T) {
	s := NewCartStore()
	s.AddOrIncrement(1, product(10, 2.00))

	s.Remove(1, 10)
	s.Remove(1, 10)

	if len(s.Lines(1)) != 0 {
		t.Error("expected empty cart after remove")
	}
}

func TestClear(t *testing.T) {
	s := NewCartStore()
	s.AddOrIncrement(1, product(10, 2.00))
	s.AddOrIncrement(1, product(20, 3.00))

	s.Clear(1)

	if len(s.Lines(1)) != 0 {
		t.Error("expected empty cart after clear")
	}
	if s.Total(1) != 0 {
		t.Errorf("expected zero total after clear, got %.2f", s.Total(1))
	}
}

func TestTotal_EmptyCart(t *testing.T) {
	s := NewCartStore()
	if s.Total(1) != 0 {
		t.Errorf("expected zero total for empty cart, got %.2f", s.Total(1))
	}
}

func TestItemCount_SumsQuantities(t *testing.T) {
	s := NewCartStore()
	p1 := product(10, 1.00)
	p2 := product(20, 1.00)

	s.AddOrIncrement(1, p1)
	s.AddOrIncrement(1, p1)
	s.AddOrIncrement(1, p2)

	if got := s.ItemCount(1); got != 3 {
		t.Errorf("expected item count 3, got %d", got)
	}
}

func TestCarts_IsolatedPerUser(t *testing.T) {
	s := NewCartStore()
	s.AddOrIncrement(1, product(10, 2.00))
	s.AddOrIncrement(2, product(20, 3.00))

	if len(s.Lines(1)) != 1 || s.Lines(1)[0].Product.ID != 10 {
		t.Error("user 1 cart should only hold product 10")
	}
	if len(s.Lines(2)) != 1 || s.Lines(2)[0].Product.ID != 20 {
		t.Error("user 2 cart should only hold product 20")
	}
}
