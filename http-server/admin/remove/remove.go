package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"damper-takip/internal/storage/mysql"
)

type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func DeleteUser(log *slog.Logger, users UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.DeleteUser"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Geçersiz id", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = users.DeleteUser(ctx, id)
		if errors.Is(err, mysql.ErrNotFound) {
			http.Error(w, "Kullanıcı bulunamadı", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Kullanıcı silinemedi", slog.Int64("id", id), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "kullanıcı silinemedi"})
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
