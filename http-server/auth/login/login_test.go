package login

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
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type MockUserProvider struct {
	mock.Mock
}

func (m *MockUserProvider) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.User), args.Error(1)
}

func (m *MockUserProvider) SaveLoginLog(ctx context.Context, l *storage.LoginLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func testUser(t *testing.T, password string) *storage.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &storage.User{
		ID:           1,
		Username:     "usta",
		PasswordHash: string(hash),
		FullName:     "Usta Başı",
	}
}

func TestLogin_Success(t *testing.T) {
	mockStorage := new(MockUserProvider)
	mockStorage.On("GetUserByUsername", mock.Anything, "usta").
		Return(testUser(t, "gizli123"), nil)
	mockStorage.On("SaveLoginLog", mock.Anything, mock.MatchedBy(func(l *storage.LoginLog) bool {
		return l.UserID == 1 && l.Username == "usta"
	})).Return(nil)

	handler := Login(slog.Default(), mockStorage)

	body := `{"username":"usta","password":"gizli123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "usta", resp.User.Username)
	// Şifre özeti yanıtta görünmemeli.
	assert.NotContains(t, rr.Body.String(), "passwordHash")

	mockStorage.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockStorage := new(MockUserProvider)
	mockStorage.On("GetUserByUsername", mock.Anything, "usta").
		Return(testUser(t, "gizli123"), nil)

	handler := Login(slog.Default(), mockStorage)

	body := `{"username":"usta","password":"yanlis"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveLoginLog")
}

func TestLogin_UnknownUser(t *testing.T) {
	mockStorage := new(MockUserProvider)
	mockStorage.On("GetUserByUsername", mock.Anything, "hayalet").
		Return(nil, mysql.ErrNotFound)

	handler := Login(slog.Default(), mockStorage)

	body := `{"username":"hayalet","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	// Bilinmeyen kullanıcı ile yanlış şifre aynı yanıtı alır.
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "kullanıcı adı veya şifre hatalı")
}

func TestLogin_MissingFields(t *testing.T) {
	mockStorage := new(MockUserProvider)

	handler := Login(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"usta"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "GetUserByUsername")
}

// Giriş kaydı yazılamasa bile giriş başarılı sayılır.
func TestLogin_LogWriteFailureIgnored(t *testing.T) {
	mockStorage := new(MockUserProvider)
	mockStorage.On("GetUserByUsername", mock.Anything, "usta").
		Return(testUser(t, "gizli123"), nil)
	mockStorage.On("SaveLoginLog", mock.Anything, mock.Anything).
		Return(assert.AnError)

	handler := Login(slog.Default(), mockStorage)

	body := `{"username":"usta","password":"gizli123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}
