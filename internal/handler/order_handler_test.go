package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urban-bites/internal/model"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Place(t *testing.T) {
	st := newTestStore(t)
	st.AddToCart(model.MenuItem{ID: "1", Name: "Urban Legend Burger", Price: 249})
	st.AddToCart(model.MenuItem{ID: "1", Name: "Urban Legend Burger", Price: 249})
	st.AddToCart(model.MenuItem{ID: "3", Name: "Peri-Peri Fries", Price: 129})

	h := NewOrderHandler(st, zerolog.Nop())

	body := `{"customerName":"Asha","phone":"+91 90000 00000","type":"Pickup"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Place(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	// The total must equal the sum of price×quantity over the snapshot.
	assert.Equal(t, 2*249+129, order.Total)
	require.Len(t, order.Items, 2)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, model.OrderPending, order.Status)

	// Placing the order empties the cart and prepends the order.
	assert.Empty(t, st.Cart())
	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderHandler_PlaceValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		fillCart  bool
		wantError string
	}{
		{
			name:      "Empty cart",
			body:      `{"customerName":"Asha","phone":"123","type":"Pickup"}`,
			wantError: model.ErrCodeEmptyCart,
		},
		{
			name:      "Missing customer name",
			body:      `{"phone":"123","type":"Pickup"}`,
			fillCart:  true,
			wantError: "customerName is required",
		},
		{
			name:      "Missing phone",
			body:      `{"customerName":"Asha","type":"Pickup"}`,
			fillCart:  true,
			wantError: "phone is required",
		},
		{
			name:      "Unknown order type",
			body:      `{"customerName":"Asha","phone":"123","type":"Teleport"}`,
			fillCart:  true,
			wantError: "unknown order type",
		},
		{
			name:      "Delivery without address",
			body:      `{"customerName":"Asha","phone":"123","type":"Delivery"}`,
			fillCart:  true,
			wantError: "address is required",
		},
		{
			name:      "Malformed JSON",
			body:      `{"customerName"`,
			fillCart:  true,
			wantError: model.ErrCodeInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			if tt.fillCart {
				st.AddToCart(model.MenuItem{ID: "1", Price: 249})
			}
			h := NewOrderHandler(st, zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Place(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantError)
			assert.Empty(t, st.Orders())
		})
	}
}

func TestOrderHandler_PlacedOrderSurvivesCartChanges(t *testing.T) {
	st := newTestStore(t)
	st.AddToCart(model.MenuItem{ID: "1", Name: "Urban Legend Burger", Price: 249})
	h := NewOrderHandler(st, zerolog.Nop())

	body := `{"customerName":"Asha","phone":"123","type":"Dine-in"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Place(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// Menu edits after placement must not alter the order snapshot.
	st.UpdateMenuItem(model.MenuItem{ID: "1", Name: "Renamed", Price: 999, Category: model.CategoryBurgers})

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, 249, orders[0].Items[0].Price)
	assert.Equal(t, 249, orders[0].Total)
}

func TestOrderHandler_List(t *testing.T) {
	st := newTestStore(t)
	st.PlaceOrder(model.Order{ID: "o1"})
	st.PlaceOrder(model.Order{ID: "o2"})

	h := NewOrderHandler(st, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var orders []model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)
}

func TestOrderHandler_Get(t *testing.T) {
	st := newTestStore(t)
	st.PlaceOrder(model.Order{ID: "o1", CustomerName: "Asha"})

	h := NewOrderHandler(st, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/o1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "o1"})
	w := httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/orders/ghost", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "ghost"})
	w = httptest.NewRecorder()
	h.Get(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		expectedStatus int
	}{
		{
			name:           "Valid transition",
			id:             "o1",
			body:           `{"status":"Preparing"}`,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Unknown status value",
			id:             "o1",
			body:           `{"status":"Vanished"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown order",
			id:             "ghost",
			body:           `{"status":"Preparing"}`,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			st.PlaceOrder(model.Order{ID: "o1", Status: model.OrderPending})
			h := NewOrderHandler(st, zerolog.Nop())

			req := httptest.NewRequest(http.MethodPatch, "/api/admin/orders/"+tt.id+"/status", strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			w := httptest.NewRecorder()
			h.UpdateStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Equal(t, model.OrderPreparing, st.Orders()[0].Status)
			}
		})
	}
}
