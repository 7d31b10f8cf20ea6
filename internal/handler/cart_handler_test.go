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

func TestCartHandler_AddItem(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Known menu item",
			body:           `{"itemId":"1"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown menu item",
			body:           `{"itemId":"ghost"}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing itemId",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"itemId"`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCartHandler(newTestStore(t), zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.AddItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCartHandler_AddUnknownItemErrorCode(t *testing.T) {
	h := NewCartHandler(newTestStore(t), zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"itemId":"ghost"}`))
	w := httptest.NewRecorder()
	h.AddItem(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "ITEM_NOT_FOUND", "message": "Menu item not found"}`, w.Body.String())
}

func TestCartHandler_AddItemTwiceIncrements(t *testing.T) {
	st := newTestStore(t)
	h := NewCartHandler(st, zerolog.Nop())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"itemId":"1"}`))
		w := httptest.NewRecorder()
		h.AddItem(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 249, cart[0].Price)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	st := newTestStore(t)
	h := NewCartHandler(st, zerolog.Nop())

	addReq := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"itemId":"1"}`))
	h.AddItem(httptest.NewRecorder(), addReq)

	req := httptest.NewRequest(http.MethodPatch, "/api/cart/items/1", strings.NewReader(`{"delta":-1}`))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	h.UpdateQuantity(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cart []model.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart)
	assert.Empty(t, st.Cart())
}

func TestCartHandler_UpdateQuantityZeroDelta(t *testing.T) {
	h := NewCartHandler(newTestStore(t), zerolog.Nop())

	req := httptest.NewRequest(http.MethodPatch, "/api/cart/items/1", strings.NewReader(`{"delta":0}`))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	h.UpdateQuantity(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	st := newTestStore(t)
	h := NewCartHandler(st, zerolog.Nop())

	addReq := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"itemId":"1"}`))
	h.AddItem(httptest.NewRecorder(), addReq)
	addReq = httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"itemId":"1"}`))
	h.AddItem(httptest.NewRecorder(), addReq)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	h.RemoveItem(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, st.Cart())
}

func TestCartHandler_Clear(t *testing.T) {
	st := newTestStore(t)
	h := NewCartHandler(st, zerolog.Nop())

	addReq := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"itemId":"1"}`))
	h.AddItem(httptest.NewRecorder(), addReq)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	w := httptest.NewRecorder()
	h.Clear(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, st.Cart())
}

func TestCartHandler_Get(t *testing.T) {
	h := NewCartHandler(newTestStore(t), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	w := httptest.NewRecorder()
	h.Get(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
