package remove

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"damper-takip/internal/storage"
)

type MockCompanyM3Deleter struct {
	mock.Mock
}

func (m *MockCompanyM3Deleter) GetDampersByM3(ctx context.Context, m3 float64) ([]*storage.Damper, error) {
	args := m.Called(ctx, m3)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Damper), args.Error(1)
}

func (m *MockCompanyM3Deleter) DeleteDampersByID(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

// Silme, özet gruplamasıyla aynı normalizasyonu kullanır: "Acme 1" ve
// "Acme 2" ACME anahtarında buluşur, BETA dokunulmadan kalır.
func TestDeleteCompanyM3_NormalizedMatch(t *testing.T) {
	mockStorage := new(MockCompanyM3Deleter)

	dampers := []*storage.Damper{
		{ID: 1, Musteri: "Acme 1"},
		{ID: 2, Musteri: "Acme 2"},
		{ID: 3, Musteri: "Beta"},
	}
	mockStorage.On("GetDampersByM3", mock.Anything, 14.0).Return(dampers, nil)
	mockStorage.On("DeleteDampersByID", mock.Anything, []int64{1, 2}).Return(int64(2), nil)

	handler := DeleteCompanyM3(slog.Default(), mockStorage)

	body := `{"company":"acme","m3":14}`
	req := httptest.NewRequest(http.MethodDelete, "/api/company-m3", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), resp.Deleted)

	mockStorage.AssertExpectations(t)
}

func TestDeleteCompanyM3_NoMatch(t *testing.T) {
	mockStorage := new(MockCompanyM3Deleter)
	mockStorage.On("GetDampersByM3", mock.Anything, 14.0).
		Return([]*storage.Damper{{ID: 3, Musteri: "Beta"}}, nil)

	handler := DeleteCompanyM3(slog.Default(), mockStorage)

	body := `{"company":"acme","m3":14}`
	req := httptest.NewRequest(http.MethodDelete, "/api/company-m3", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Zero(t, resp.Deleted)

	mockStorage.AssertNotCalled(t, "DeleteDampersByID")
}

func TestDeleteCompanyM3_MissingCompany(t *testing.T) {
	mockStorage := new(MockCompanyM3Deleter)

	handler := DeleteCompanyM3(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodDelete, "/api/company-m3", strings.NewReader(`{"m3":14}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "GetDampersByM3")
}
