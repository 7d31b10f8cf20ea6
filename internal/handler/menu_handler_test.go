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

func TestMenuHandler_List(t *testing.T) {
	h := NewMenuHandler(newTestStore(t), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var items []model.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 15)
}

func TestMenuHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{
			name:           "Existing item",
			id:             "1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown item",
			id:             "nope",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMenuHandler(newTestStore(t), zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, "/api/menu/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			w := httptest.NewRecorder()
			h.Get(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMenuHandler_GetUnknownItemErrorCode(t *testing.T) {
	h := NewMenuHandler(newTestStore(t), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/menu/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nope"})
	w := httptest.NewRecorder()
	h.Get(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "ITEM_NOT_FOUND", "message": "Menu item not found"}`, w.Body.String())
}

func TestMenuHandler_ListCategories(t *testing.T) {
	h := NewMenuHandler(newTestStore(t), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	h.ListCategories(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var categories []model.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, model.Categories(), categories)
}

func TestMenuHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "Valid item",
			body:           `{"name":"Mango Shake","price":149,"category":"Shakes","isAvailable":true}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing name",
			body:           `{"price":149,"category":"Shakes"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown category",
			body:           `{"name":"Mango Shake","price":149,"category":"Desserts"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative price",
			body:           `{"name":"Mango Shake","price":-1,"category":"Shakes"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			h := NewMenuHandler(st, zerolog.Nop())

			req := httptest.NewRequest(http.MethodPost, "/api/admin/menu", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var created model.MenuItem
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
				assert.NotEmpty(t, created.ID)
				assert.Len(t, st.MenuItems(), 16)
			} else {
				assert.Len(t, st.MenuItems(), 15)
			}
		})
	}
}

func TestMenuHandler_Update(t *testing.T) {
	st := newTestStore(t)
	h := NewMenuHandler(st, zerolog.Nop())

	body := `{"name":"Urban Legend Burger","price":299,"category":"Burgers","isAvailable":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/menu/1", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	h.Update(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 299, st.MenuItems()[0].Price)
}

func TestMenuHandler_UpdateUnknown(t *testing.T) {
	h := NewMenuHandler(newTestStore(t), zerolog.Nop())

	body := `{"name":"Ghost","price":1,"category":"Burgers"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/menu/ghost", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "ghost"})
	w := httptest.NewRecorder()
	h.Update(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuHandler_Delete(t *testing.T) {
	st := newTestStore(t)
	h := NewMenuHandler(st, zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/menu/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	h.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, st.MenuItems(), 14)
}
