package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type MockDamperProvider struct {
	mock.Mock
}

func (m *MockDamperProvider) GetDampers(ctx context.Context, filter mysql.DamperFilter) ([]*storage.Damper, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Damper), args.Error(1)
}

func (m *MockDamperProvider) GetDamper(ctx context.Context, id int64) (*storage.Damper, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Damper), args.Error(1)
}

func TestGetDampers_Success(t *testing.T) {
	mockStorage := new(MockDamperProvider)

	dampers := []*storage.Damper{
		{ID: 1, Musteri: "Acme", Tip: "HAFRİYAT TİPİ"},
		{ID: 2, Musteri: "Beta", Tip: "KAYA TİPİ"},
	}
	mockStorage.On("GetDampers", mock.Anything, mysql.DamperFilter{Search: "a"}).
		Return(dampers, nil)

	handler := GetDampers(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/dampers?search=a", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseDampers
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Dampers, 2)
	assert.Equal(t, "Acme", resp.Dampers[0].Musteri)
	assert.Empty(t, resp.Error)

	mockStorage.AssertExpectations(t)
}

func TestGetDampers_DBError(t *testing.T) {
	mockStorage := new(MockDamperProvider)
	mockStorage.On("GetDampers", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection timeout"))

	handler := GetDampers(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/dampers", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "kayıtlar alınamadı")

	mockStorage.AssertExpectations(t)
}

func TestGetDamper_Success(t *testing.T) {
	mockStorage := new(MockDamperProvider)
	mockStorage.On("GetDamper", mock.Anything, int64(7)).
		Return(&storage.Damper{ID: 7, Musteri: "Acme"}, nil)

	handler := GetDamper(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/dampers/7", nil), "id", "7")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp storage.Damper
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Acme", resp.Musteri)

	mockStorage.AssertExpectations(t)
}

func TestGetDamper_NotFound(t *testing.T) {
	mockStorage := new(MockDamperProvider)
	mockStorage.On("GetDamper", mock.Anything, int64(99)).
		Return(nil, mysql.ErrNotFound)

	handler := GetDamper(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/dampers/99", nil), "id", "99")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	mockStorage.AssertExpectations(t)
}

func TestGetDamper_BadID(t *testing.T) {
	mockStorage := new(MockDamperProvider)

	handler := GetDamper(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/dampers/abc", nil), "id", "abc")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "GetDamper")
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
