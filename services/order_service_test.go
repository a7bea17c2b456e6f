package services

import (
	"errors"
	"testing"

	"gofood/configs"
	"gofood/repository"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	err = configs.SeedCatalog(db, &configs.Catalog{Foods: []configs.CatalogFood{
		{
			Name: "Ao molho", Price: "19.90",
			Extras: []configs.CatalogExtra{{Name: "Bacon", Value: "1.50"}, {Name: "Frango", Value: "2.00"}},
		},
		{Name: "Veggie", Price: "21.90"},
	}})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(repository.NewOrderRepository(db), repository.NewFoodRepository(db))
}

func TestCreateOrderTotals(t *testing.T) {
	svc := newOrderService(newTestDB(t))

	o, err := svc.Create(7, &CreateOrderIn{
		ProductID: 1,
		Quantity:  3,
		Extras: []OrderExtraIn{
			{ID: 1, Quantity: 2},
			{ID: 2, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3×19.90 + 2×1.50 + 1×2.00
	if o.Subtotal != 59.7 || o.ExtrasTotal != 5 || o.Total != 64.7 {
		t.Errorf("unexpected totals: %+v", o)
	}
	if o.FormattedTotal != "R$ 64,70" {
		t.Errorf("unexpected formatted total %q", o.FormattedTotal)
	}
	if o.Name != "Ao molho" || o.ProductID != 1 {
		t.Errorf("food snapshot missing: %+v", o)
	}
}

func TestCreateOrderRejects(t *testing.T) {
	svc := newOrderService(newTestDB(t))

	cases := []struct {
		name string
		in   CreateOrderIn
		want error
	}{
		{"zero quantity", CreateOrderIn{ProductID: 1}, ErrInvalidQuantity},
		{"negative extra", CreateOrderIn{ProductID: 1, Quantity: 1, Extras: []OrderExtraIn{{ID: 1, Quantity: -2}}}, ErrInvalidQuantity},
		{"extra of other food", CreateOrderIn{ProductID: 2, Quantity: 1, Extras: []OrderExtraIn{{ID: 1, Quantity: 1}}}, ErrUnknownExtra},
		{"unknown food", CreateOrderIn{ProductID: 99, Quantity: 1}, ErrFoodNotFound},
	}
	for _, tc := range cases {
		if _, err := svc.Create(7, &tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestOrdersAreScopedToUser(t *testing.T) {
	svc := newOrderService(newTestDB(t))

	o, err := svc.Create(7, &CreateOrderIn{ProductID: 2, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}

	if list, _ := svc.ListForUser(8); len(list) != 0 {
		t.Errorf("user 8 must not see user 7 orders")
	}
	if _, err := svc.Get(8, o.Code); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
	got, err := svc.Get(7, o.Code)
	if err != nil || got.Total != 21.9 {
		t.Errorf("unexpected order %+v (%v)", got, err)
	}
}
