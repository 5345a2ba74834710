package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kioskworks/kiosk-backend/internal/images"
	"github.com/kioskworks/kiosk-backend/internal/menu"
	"github.com/kioskworks/kiosk-backend/internal/order"
	"github.com/kioskworks/kiosk-backend/internal/storage"
	"github.com/kioskworks/kiosk-backend/internal/validation"
)

//
// ---------- STUBS & FAKES ----------
//

// stubMenu implements the menuService interface in memory.
type stubMenu struct {
	categories []menu.Category
	items      []menu.Item
	err        error
}

func (s *stubMenu) Categories(ctx context.Context) ([]menu.Category, error) {
	return s.categories, s.err
}

func (s *stubMenu) CategoryItems(ctx context.Context, categoryID int) ([]menu.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []menu.Item
	for _, it := range s.items {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubMenu) Item(ctx context.Context, itemID int) (*menu.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, it := range s.items {
		if it.ID == itemID {
			cp := it
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubMenu) FilteredItems(ctx context.Context, filter *menu.ItemFilter) ([]menu.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	if filter != nil {
		if err := filter.Validate(); err != nil {
			return nil, err
		}
	}
	return s.items, nil
}

func (s *stubMenu) CountItems(ctx context.Context) (int64, error) {
	return int64(len(s.items)), s.err
}

func (s *stubMenu) CountCategories(ctx context.Context) (int64, error) {
	return int64(len(s.categories)), s.err
}

// stubOrders implements the orderService interface in memory.
type stubOrders struct {
	orders map[string]order.Order
	seq    []string
	err    error
}

func newStubOrders() *stubOrders {
	return &stubOrders{orders: map[string]order.Order{}}
}

func (s *stubOrders) Create(ctx context.Context, o *order.Order) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	o.Normalize()
	if err := o.Validate(); err != nil {
		return "", err
	}
	id := primitive.NewObjectID().Hex()
	s.orders[id] = *o
	s.seq = append(s.seq, id)
	return id, nil
}

func (s *stubOrders) Orders(ctx context.Context) ([]order.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]order.Order, 0, len(s.seq))
	for _, id := range s.seq {
		out = append(out, s.orders[id])
	}
	return out, nil
}

func (s *stubOrders) Order(ctx context.Context, id string) (*order.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, validation.Error{Field: "order_id", Message: "not a valid order identifier"}
	}
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func testMenu() *stubMenu {
	return &stubMenu{
		categories: []menu.Category{
			{ID: 1, Name: "Burgers", ImageID: "burgers.jpg"},
			{ID: 2, Name: "Drinks", ImageID: "drinks.jpg"},
		},
		items: []menu.Item{
			{ID: 1, CategoryID: 1, Name: "Classic Burger", ImageID: "classic.jpg", Price: 8.9},
			{ID: 2, CategoryID: 2, Name: "Cola", ImageID: "cola.jpg", Price: 3},
		},
	}
}

func testRouter(t *testing.T, ms menuService, os orderService, ir imageResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if ir == nil {
		ir = images.NewResolver(t.TempDir())
	}
	return newRouter(ms, os, ir)
}

func doRequest(t *testing.T, r *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

//
// ---------- TESTS ----------
//

func TestReadMenu(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/menu", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got MenuSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.MenuItems != 2 || got.Categories != 2 {
		t.Fatalf("summary = %+v", got)
	}
}

func TestReadMenu_StorageError(t *testing.T) {
	ms := testMenu()
	ms.err = &storage.Error{Op: "count", Collection: "menu_items", Err: errors.New("down")}
	r := testRouter(t, ms, newStubOrders(), nil)

	w := doRequest(t, r, http.MethodGet, "/menu", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestListCategories(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/menu/categories", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got struct {
		Data []menu.Category `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Data) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got.Data))
	}
}

func TestListCategories_CorruptStoredDataIs500(t *testing.T) {
	ms := testMenu()
	ms.err = &storage.Error{
		Op:         "decode",
		Collection: "categories",
		Err:        validation.Error{Field: "name", Message: "category name is required"},
	}
	r := testRouter(t, ms, newStubOrders(), nil)

	w := doRequest(t, r, http.MethodGet, "/menu/categories", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: corrupt stored data is not the client's fault", w.Code)
	}
}

func TestCategoryItems_BadID(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/menu/categories/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFilteredItems_InvalidRange(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/menu/item?price_from=20&price_to=10", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}
}

func TestGetItem_NotFound(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/menu/item/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateOrder_HappyPath(t *testing.T) {
	os := newStubOrders()
	r := testRouter(t, testMenu(), os, nil)

	body := []byte(`{
		"total": 17.8,
		"created_at": "2024-05-01T12:00:00Z",
		"items": [
			{"item": {"id": 1, "category_id": 1, "name": "Classic Burger", "image_id": "classic.jpg", "price": 8.9}, "quantity": 2}
		],
		"payment": {
			"type": "card",
			"amount": 17.8,
			"card_number": "4111111111111111",
			"card_holder": "MARIA SILVA",
			"expiration_date": "12/27",
			"cvv": "123"
		}
	}`)
	w := doRequest(t, r, http.MethodPost, "/order", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Status  string `json:"status"`
		OrderID string `json:"order_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "success" || resp.OrderID == "" {
		t.Fatalf("response = %+v", resp)
	}

	// Round trip: the created order comes back with the same contents.
	w = doRequest(t, r, http.MethodGet, "/order/"+resp.OrderID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", w.Code, w.Body.String())
	}
	var got struct {
		Data order.Order `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Data.Total != 17.8 || len(got.Data.Items) != 1 || got.Data.Payment.CVV != "123" {
		t.Fatalf("round trip mismatch: %+v", got.Data)
	}
	if got.Data.Items[0].PriceAtOrder != 8.9 {
		t.Fatalf("price snapshot = %v, want 8.9", got.Data.Items[0].PriceAtOrder)
	}
}

func TestCreateOrder_MissingCVV(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)

	body := []byte(`{
		"total": 17.8,
		"created_at": "2024-05-01T12:00:00Z",
		"items": [
			{"item": {"id": 1, "category_id": 1, "name": "Classic Burger", "image_id": "classic.jpg", "price": 8.9}, "quantity": 2}
		],
		"payment": {
			"type": "card",
			"amount": 17.8,
			"card_number": "4111111111111111",
			"card_holder": "MARIA SILVA",
			"expiration_date": "12/27"
		}
	}`)
	w := doRequest(t, r, http.MethodPost, "/order", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}
}

func TestCreateOrder_BadJSON(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodPost, "/order", []byte("{not json"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/order/"+primitive.NewObjectID().Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetOrder_MalformedID(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/order/zzz", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListOrders_EmptyIsAnEmptyArray(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/order", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := w.Body.String(); body != `{"data":[]}` {
		t.Fatalf("body = %s", body)
	}
}

func TestGetImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "burger.jpg"), []byte("jpgdata"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := testRouter(t, testMenu(), newStubOrders(), images.NewResolver(dir))

	cases := []struct {
		target string
		want   int
	}{
		{"/image?image=burger.jpg", http.StatusOK},
		{"/image?image=missing.jpg", http.StatusNotFound},
		{"/image?image=burger.png", http.StatusBadRequest},
		{"/image", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := doRequest(t, r, http.MethodGet, tc.target, nil)
		if w.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.target, w.Code, tc.want)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := testRouter(t, testMenu(), newStubOrders(), nil)
	w := doRequest(t, r, http.MethodGet, "/healthz", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected an X-Request-ID header on every response")
	}
}
