package save

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type UserSaver interface {
	SaveUser(ctx context.Context, u *storage.User) (int64, error)
}

type Request struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	IsAdmin  bool   `json:"isAdmin"`
}

type Response struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

func SaveUser(log *slog.Logger, users UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.SaveUser"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
			http.Error(w, "Geçersiz veri", http.StatusBadRequest)
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Şifre özetlenemedi", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := users.SaveUser(ctx, &storage.User{
			Username:     req.Username,
			PasswordHash: string(hash),
			FullName:     req.FullName,
			IsAdmin:      req.IsAdmin,
		})
		if errors.Is(err, mysql.ErrUserExists) {
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, Response{Error: "kullanıcı adı kullanımda"})
			return
		}
		if err != nil {
			log.Error("Kullanıcı kaydedilemedi", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "kullanıcı oluşturulamadı"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{
			ID:     id,
			Status: strconv.Itoa(http.StatusCreated),
		})
	}
}
