package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"damper-takip/internal/storage"
)

type MockDamperSaver struct {
	mock.Mock
}

func (m *MockDamperSaver) SaveDamper(ctx context.Context, d *storage.Damper) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func TestSaveDamper_Single(t *testing.T) {
	mockStorage := new(MockDamperSaver)
	mockStorage.On("SaveDamper", mock.Anything, mock.MatchedBy(func(d *storage.Damper) bool {
		return d.Musteri == "Acme"
	})).Return(int64(5), nil)

	handler := SaveDamper(slog.Default(), mockStorage)

	body := `{"musteri":"Acme","tip":"HAFRİYAT TİPİ","adet":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/dampers", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, []int64{5}, resp.IDs)

	mockStorage.AssertExpectations(t)
}

// Adet birden büyükse kayıtlar "Müşteri 1".."Müşteri N" olarak açılır.
func TestSaveDamper_MultiCreateNames(t *testing.T) {
	mockStorage := new(MockDamperSaver)

	var names []string
	mockStorage.On("SaveDamper", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			d := args.Get(1).(*storage.Damper)
			names = append(names, d.Musteri)
		}).
		Return(int64(1), nil).Times(3)

	handler := SaveDamper(slog.Default(), mockStorage)

	body := `{"musteri":"Acme","adet":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/dampers", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, []string{"Acme 1", "Acme 2", "Acme 3"}, names)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.IDs, 3)

	mockStorage.AssertExpectations(t)
}

func TestSaveDamper_MissingCustomer(t *testing.T) {
	mockStorage := new(MockDamperSaver)

	handler := SaveDamper(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/dampers", strings.NewReader(`{"adet":2}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveDamper")
}

func TestSaveDamper_DBError(t *testing.T) {
	mockStorage := new(MockDamperSaver)
	mockStorage.On("SaveDamper", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("connection timeout"))

	handler := SaveDamper(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/dampers", strings.NewReader(`{"musteri":"Acme"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "kayıt oluşturulamadı")

	mockStorage.AssertExpectations(t)
}
