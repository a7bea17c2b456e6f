package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gofood/configs"
	"gofood/pkg/api"
	"gofood/routes"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := configs.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	catalog := &configs.Catalog{Foods: []configs.CatalogFood{
		{
			Name: "Ao molho", Description: "Macarrão ao molho branco", Price: "10.00", Category: "pasta",
			Extras: []configs.CatalogExtra{{Name: "Bacon", Value: "2.50"}, {Name: "Frango", Value: "2.00"}},
		},
		{Name: "Veggie Burger", Price: "18.00", Category: "burger"},
	}}
	if err := configs.SeedCatalog(db, catalog); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func loggedIn(t *testing.T, srv *httptest.Server) *api.Client {
	t.Helper()
	ctx := context.Background()
	c := api.New(srv.URL, api.WithHTTPClient(srv.Client()))

	_, err := c.Register(ctx, &api.Registration{
		Email: "test@example.com", Password: "Password@123", FirstName: "Test",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := c.Login(ctx, "test@example.com", "Password@123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return c
}

func TestGetFood(t *testing.T) {
	srv := newTestServer(t)
	c := api.New(srv.URL)

	f, err := c.GetFood(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "Ao molho" || f.Price != 10 || f.FormattedPrice != "R$ 10,00" {
		t.Errorf("unexpected food %+v", f)
	}
	if len(f.Extras) != 2 || f.Extras[0].Name != "Bacon" || f.Extras[0].Value != 2.5 {
		t.Errorf("unexpected extras %+v", f.Extras)
	}
}

func TestGetFoodNotFound(t *testing.T) {
	srv := newTestServer(t)
	c := api.New(srv.URL)

	_, err := c.GetFood(context.Background(), 999)
	if !api.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListFoodsFilters(t *testing.T) {
	srv := newTestServer(t)
	c := api.New(srv.URL)
	ctx := context.Background()

	all, err := c.ListFoods(ctx, "", "")
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 foods, got %d (%v)", len(all), err)
	}

	byName, _ := c.ListFoods(ctx, "MOLHO", "")
	if len(byName) != 1 || byName[0].Name != "Ao molho" {
		t.Errorf("name filter: unexpected %+v", byName)
	}

	byCategory, _ := c.ListFoods(ctx, "", "burger")
	if len(byCategory) != 1 || byCategory[0].Name != "Veggie Burger" {
		t.Errorf("category filter: unexpected %+v", byCategory)
	}
}

func TestFavoritesRequireToken(t *testing.T) {
	srv := newTestServer(t)
	c := api.New(srv.URL)

	_, err := c.GetFavorite(context.Background(), 1)
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestFavoriteLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := loggedIn(t, srv)
	ctx := context.Background()

	if _, err := c.GetFavorite(ctx, 1); !api.IsNotFound(err) {
		t.Fatalf("expected no favorite yet, got %v", err)
	}

	food, _ := c.GetFood(ctx, 1)
	if err := c.AddFavorite(ctx, food); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	// second add is a no-op
	if err := c.AddFavorite(ctx, food); err != nil {
		t.Fatalf("add favorite again: %v", err)
	}

	fav, err := c.GetFavorite(ctx, 1)
	if err != nil || fav.ID != 1 {
		t.Fatalf("expected favorite 1, got %+v (%v)", fav, err)
	}
	favs, _ := c.ListFavorites(ctx)
	if len(favs) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favs))
	}

	if err := c.RemoveFavorite(ctx, 1); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	if err := c.RemoveFavorite(ctx, 1); err != nil {
		t.Fatalf("remove missing favorite must succeed: %v", err)
	}
	if _, err := c.GetFavorite(ctx, 1); !api.IsNotFound(err) {
		t.Fatalf("expected favorite gone, got %v", err)
	}

	// can favorite again after removal
	if err := c.AddFavorite(ctx, food); err != nil {
		t.Fatalf("re-add favorite: %v", err)
	}
}

func TestCreateOrderIsPricedByServer(t *testing.T) {
	srv := newTestServer(t)
	c := loggedIn(t, srv)
	ctx := context.Background()

	r, err := c.CreateOrder(ctx, &api.OrderRequest{
		ProductID: 1,
		Name:      "Ao molho",
		Price:     1, // ignored
		Quantity:  2,
		Extras: []api.OrderExtra{
			{ID: 1, Name: "Bacon", Value: 2.5, Quantity: 3},
			{ID: 2, Name: "Frango", Value: 2, Quantity: 0},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if r.Code == "" || r.ProductID != 1 {
		t.Errorf("unexpected receipt %+v", r)
	}
	if r.Total != 27.5 || r.FormattedTotal != "R$ 27,50" {
		t.Errorf("expected total 27.50, got %v (%s)", r.Total, r.FormattedTotal)
	}
	if len(r.Extras) != 1 || r.Extras[0].Quantity != 3 {
		t.Errorf("only extras with quantity > 0 are stored, got %+v", r.Extras)
	}

	got, err := c.GetOrder(ctx, r.Code)
	if err != nil || got.Total != 27.5 {
		t.Fatalf("get order: %+v (%v)", got, err)
	}
	list, _ := c.ListOrders(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 order, got %d", len(list))
	}
}

func TestCreateOrderValidation(t *testing.T) {
	srv := newTestServer(t)
	c := loggedIn(t, srv)
	ctx := context.Background()

	cases := map[string]*api.OrderRequest{
		"zero quantity":  {ProductID: 1, Quantity: 0},
		"negative extra": {ProductID: 1, Quantity: 1, Extras: []api.OrderExtra{{ID: 1, Quantity: -1}}},
		"foreign extra":  {ProductID: 2, Quantity: 1, Extras: []api.OrderExtra{{ID: 1, Quantity: 1}}},
		"missing id":     {Quantity: 1},
	}
	for name, req := range cases {
		_, err := c.CreateOrder(ctx, req)
		var apiErr *api.Error
		if !errorsAs(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %v", name, err)
		}
	}

	if _, err := c.CreateOrder(ctx, &api.OrderRequest{ProductID: 999, Quantity: 1}); !api.IsNotFound(err) {
		t.Errorf("unknown product: expected 404, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newTestServer(t)
	loggedIn(t, srv)

	c := api.New(srv.URL)
	_, err := c.Login(context.Background(), "test@example.com", "nope")
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected 401, got %v", err)
	}
	if c.Token() != "" {
		t.Error("failed login must not set a token")
	}
}

func TestGetFavoriteWithoutData(t *testing.T) {
	for name, body := range map[string]string{
		"null data":    `{"ok":true,"data":null}`,
		"missing data": `{"ok":true}`,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		}))

		f, err := api.New(srv.URL).GetFavorite(context.Background(), 1)
		srv.Close()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if f != nil {
			t.Errorf("%s: expected no record, got %+v", name, f)
		}
	}
}
