package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, u storage.UserUpdate) error
}

type Request struct {
	FullName *string `json:"fullName"`
	IsAdmin  *bool   `json:"isAdmin"`
	Password *string `json:"password"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func UpdateUser(log *slog.Logger, users UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.UpdateUser"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Geçersiz id", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Geçersiz veri", http.StatusBadRequest)
			return
		}

		upd := storage.UserUpdate{
			FullName: req.FullName,
			IsAdmin:  req.IsAdmin,
		}
		if req.Password != nil && *req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Error("Şifre özetlenemedi", slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			hashStr := string(hash)
			upd.PasswordHash = &hashStr
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = users.UpdateUser(ctx, id, upd)
		if errors.Is(err, mysql.ErrNotFound) {
			http.Error(w, "Kullanıcı bulunamadı", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Kullanıcı güncellenemedi", slog.Int64("id", id), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "kullanıcı güncellenemedi"})
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
