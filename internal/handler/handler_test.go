package handler

import (
	"context"
	"net/http/httptest"
	"testing"

	"urban-bites/internal/model"
	"urban-bites/internal/storage"
	"urban-bites/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRelay is a mock implementation of notify.Relay.
type MockRelay struct {
	mock.Mock
}

func (m *MockRelay) Submit(ctx context.Context, subject string, fields map[string]string) error {
	args := m.Called(ctx, subject, fields)
	return args.Error(0)
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	slots, err := storage.NewSlots(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return store.New(slots, zerolog.Nop())
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, 418, "teapot", zerolog.Nop())

	assert.Equal(t, 418, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "teapot"}`, w.Body.String())
}

func TestWriteDomainError(t *testing.T) {
	w := httptest.NewRecorder()
	writeDomainError(w, 400, model.ErrEmptyCart, zerolog.Nop())

	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"error": "EMPTY_CART", "message": "Cart is empty"}`, w.Body.String())
}
