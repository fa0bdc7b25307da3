package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type UserProvider interface {
	GetUserByUsername(ctx context.Context, username string) (*storage.User, error)
	SaveLoginLog(ctx context.Context, l *storage.LoginLog) error
}

type Request struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Response struct {
	User   *storage.User `json:"user,omitempty"`
	Status string        `json:"status"`
	Error  string        `json:"error"`
}

// Login checks the credentials against the users table and records the login.
// A failed log write does not fail the login.
func Login(log *slog.Logger, users UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.Login"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
			http.Error(w, "Geçersiz veri", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, err := users.GetUserByUsername(ctx, req.Username)
		if errors.Is(err, mysql.ErrNotFound) {
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, Response{Error: "kullanıcı adı veya şifre hatalı"})
			return
		}
		if err != nil {
			log.Error("Kullanıcı sorgulanamadı", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, Response{Error: "kullanıcı adı veya şifre hatalı"})
			return
		}

		ip := r.RemoteAddr
		if host, _, splitErr := net.SplitHostPort(ip); splitErr == nil {
			ip = host
		}
		logErr := users.SaveLoginLog(ctx, &storage.LoginLog{
			UserID:    user.ID,
			Username:  user.Username,
			FullName:  user.FullName,
			IPAddress: ip,
		})
		if logErr != nil {
			log.Error("Giriş kaydı yazılamadı", slog.String("error", logErr.Error()))
		}

		render.JSON(w, r, Response{
			User:   user,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
