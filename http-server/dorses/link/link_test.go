package link

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"damper-takip/internal/storage/mysql"
)

type MockSasiLinker struct {
	mock.Mock
}

func (m *MockSasiLinker) LinkSasi(ctx context.Context, dorseID, sasiID int64) error {
	args := m.Called(ctx, dorseID, sasiID)
	return args.Error(0)
}

func TestLinkSasi_Success(t *testing.T) {
	mockStorage := new(MockSasiLinker)
	mockStorage.On("LinkSasi", mock.Anything, int64(3), int64(9)).Return(nil)

	handler := LinkSasi(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/dorses/3/sasi", strings.NewReader(`{"sasiId":9}`)), "id", "3")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

// Başka dorseye bağlanmış bir şasi ikinci kez bağlanamaz.
func TestLinkSasi_AlreadyLinked(t *testing.T) {
	mockStorage := new(MockSasiLinker)
	mockStorage.On("LinkSasi", mock.Anything, int64(3), int64(9)).
		Return(mysql.ErrNotFound)

	handler := LinkSasi(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/dorses/3/sasi", strings.NewReader(`{"sasiId":9}`)), "id", "3")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "zaten bağlı")

	mockStorage.AssertExpectations(t)
}

func TestLinkSasi_MissingSasiID(t *testing.T) {
	mockStorage := new(MockSasiLinker)

	handler := LinkSasi(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/dorses/3/sasi", strings.NewReader(`{}`)), "id", "3")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "LinkSasi")
}

func TestLinkSasi_DBError(t *testing.T) {
	mockStorage := new(MockSasiLinker)
	mockStorage.On("LinkSasi", mock.Anything, int64(3), int64(9)).
		Return(errors.New("connection timeout"))

	handler := LinkSasi(slog.Default(), mockStorage)

	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/dorses/3/sasi", strings.NewReader(`{"sasiId":9}`)), "id", "3")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	mockStorage.AssertExpectations(t)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
