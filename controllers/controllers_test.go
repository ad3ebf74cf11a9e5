package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-order/models"
	"smart-order/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestStore swaps in a fresh seeded memory store for one test.
func newTestStore(t *testing.T) *memory.Memory {
	t.Helper()
	m := memory.New()
	SetStore(m)
	t.Cleanup(func() { SetStore(nil) })
	return m
}

func doJSON(t *testing.T, handler gin.HandlerFunc, method, path, route string, body any) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Handle(method, route, handler)
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func cartLine(name string, category models.Category, price float64, qty int) models.CartItem {
	return models.CartItem{
		MenuItem: models.MenuItem{Name: name, Category: category, Price: price},
		Quantity: qty,
	}
}

func TestCreateOrderRejectsBadSubmissions(t *testing.T) {
	newTestStore(t)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{
			name: "empty cart",
			body: map[string]any{"table_id": "3", "customer_name": "Ana", "items": []any{}},
			want: http.StatusBadRequest,
		},
		{
			name: "blank customer name",
			body: map[string]any{
				"table_id":      "3",
				"customer_name": "   ",
				"items":         []models.CartItem{cartLine("Italian Soda", models.CategoryDrinks, 6, 1)},
			},
			want: http.StatusBadRequest,
		},
		{
			name: "zero quantity",
			body: map[string]any{
				"table_id":      "3",
				"customer_name": "Ana",
				"items":         []models.CartItem{cartLine("Italian Soda", models.CategoryDrinks, 6, 0)},
			},
			want: http.StatusBadRequest,
		},
		{
			name: "missing table",
			body: map[string]any{
				"customer_name": "Ana",
				"items":         []models.CartItem{cartLine("Italian Soda", models.CategoryDrinks, 6, 1)},
			},
			want: http.StatusBadRequest,
		},
		{
			name: "valid",
			body: map[string]any{
				"table_id":      "3",
				"customer_name": "Ana",
				"items":         []models.CartItem{cartLine("Italian Soda", models.CategoryDrinks, 6, 1)},
			},
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, CreateOrder(), http.MethodPost, "/orders", "/orders", tt.body)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
			if tt.want == http.StatusOK {
				if id, ok := decodeBody(t, w)["order_id"].(string); !ok || id == "" {
					t.Fatal("response missing order_id")
				}
			}
		})
	}
}

func TestAdvanceOrderStatus(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	id, err := m.CreateOrder(ctx, "4", []models.CartItem{cartLine("Funghi Risotto", models.CategoryMains, 18, 1)}, "Bruno")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	w := doJSON(t, AdvanceOrderStatus(), http.MethodPatch, "/orders/"+id+"/advance", "/orders/:order_id/advance", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["status"]; got != string(models.StatusPreparing) {
		t.Fatalf("status after advance = %v, want %s", got, models.StatusPreparing)
	}

	w = doJSON(t, AdvanceOrderStatus(), http.MethodPatch, "/orders/nope/advance", "/orders/:order_id/advance", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown order status = %d, want 404", w.Code)
	}

	if err := m.UpdateOrderStatus(ctx, id, models.StatusClosed); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	w = doJSON(t, AdvanceOrderStatus(), http.MethodPatch, "/orders/"+id+"/advance", "/orders/:order_id/advance", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("advance past Closed status = %d, want 400", w.Code)
	}
}

func TestGetBillServiceFeeToggle(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	if _, err := m.CreateOrder(ctx, "7", []models.CartItem{cartLine("Grilled Salmon", models.CategoryMains, 20, 1)}, "Carla"); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	w := doJSON(t, GetBill(), http.MethodGet, "/tables/7/bill", "/tables/:table_id/bill", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	bill := decodeBody(t, w)["bill"].(map[string]any)
	if bill["total"].(float64) != 22 {
		t.Fatalf("total with fee = %v, want 22", bill["total"])
	}

	w = doJSON(t, GetBill(), http.MethodGet, "/tables/7/bill?service_fee=false", "/tables/:table_id/bill", nil)
	bill = decodeBody(t, w)["bill"].(map[string]any)
	if bill["total"].(float64) != 20 {
		t.Fatalf("total without fee = %v, want 20", bill["total"])
	}
	if bill["service_fee"].(float64) != 0 {
		t.Fatalf("service fee = %v, want 0", bill["service_fee"])
	}
}

func TestCloseTable(t *testing.T) {
	m := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := m.CreateOrder(ctx, "9", []models.CartItem{cartLine("Craft IPA", models.CategoryDrinks, 10, 1)}, fmt.Sprintf("Guest %d", i)); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	// Subtotal 20, fee 2, total 22. Paying 20 in cash is short.
	w := doJSON(t, CloseTable(), http.MethodPost, "/tables/9/close", "/tables/:table_id/close", map[string]any{
		"include_service_fee": true,
		"payment_method":      "cash",
		"amount_paid":         20,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("underpaid close status = %d, want 400", w.Code)
	}

	w = doJSON(t, CloseTable(), http.MethodPost, "/tables/9/close", "/tables/:table_id/close", map[string]any{
		"include_service_fee": true,
		"payment_method":      "cash",
		"amount_paid":         25,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("close status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if got := len(body["closed_ids"].([]any)); got != 2 {
		t.Fatalf("closed %d orders, want 2", got)
	}
	receipt := body["receipt"].(map[string]any)
	if receipt["change"].(float64) != 3 {
		t.Fatalf("change = %v, want 3", receipt["change"])
	}

	orders, err := m.GetOrders(ctx)
	if err != nil {
		t.Fatalf("GetOrders: %v", err)
	}
	for _, o := range orders {
		if o.TableID == "9" && o.Status != models.StatusClosed {
			t.Fatalf("order %s left in status %s", o.ID, o.Status)
		}
	}

	// A second close finds nothing open.
	w = doJSON(t, CloseTable(), http.MethodPost, "/tables/9/close", "/tables/:table_id/close", map[string]any{
		"payment_method": "credit",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("re-close status = %d, want 409", w.Code)
	}
}

func TestCloseTableRejectsUnknownPaymentMethod(t *testing.T) {
	m := newTestStore(t)
	if _, err := m.CreateOrder(context.Background(), "2", []models.CartItem{cartLine("Craft IPA", models.CategoryDrinks, 10, 1)}, "Davi"); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	w := doJSON(t, CloseTable(), http.MethodPost, "/tables/2/close", "/tables/:table_id/close", map[string]any{
		"payment_method": "barter",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	newTestStore(t)

	w := doJSON(t, Login(), http.MethodPost, "/users/login", "/users/login", map[string]any{
		"email":    "admin@smartorder",
		"password": "1234",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	for _, key := range []string{"token", "refresh_token"} {
		if v, ok := body[key].(string); !ok || v == "" {
			t.Fatalf("response missing %s", key)
		}
	}
	caps := body["capabilities"].([]any)
	if len(caps) == 0 {
		t.Fatal("admin login returned no capabilities")
	}
	user := body["user"].(map[string]any)
	if _, leaked := user["password"]; leaked {
		t.Fatal("login response leaked the password hash")
	}

	w = doJSON(t, Login(), http.MethodPost, "/users/login", "/users/login", map[string]any{
		"email":    "admin@smartorder",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d, want 401", w.Code)
	}
}

func TestGetTableQRUsesBaseOverride(t *testing.T) {
	newTestStore(t)

	w := doJSON(t, GetTableQR(), http.MethodGet, "/tables/5/qr?base=https%3A%2F%2Fexample.com", "/tables/:table_id/qr", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["url"] != "https://example.com/#/table/5" {
		t.Fatalf("url = %v", body["url"])
	}
	image, _ := body["image"].(string)
	if !strings.Contains(image, url.QueryEscape("https://example.com/#/table/5")) {
		t.Fatalf("image url does not embed the escaped target: %v", image)
	}
}
