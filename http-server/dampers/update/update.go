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

	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type DamperUpdater interface {
	UpdateDamper(ctx context.Context, id int64, u storage.DamperUpdate) error
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// UpdateDamper applies a partial update: only the fields present in the body
// are written.
func UpdateDamper(log *slog.Logger, updater DamperUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dampers.UpdateDamper"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Geçersiz id", http.StatusBadRequest)
			return
		}

		var req storage.DamperUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Geçersiz JSON", slog.String("error", err.Error()))
			http.Error(w, "Geçersiz veri", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = updater.UpdateDamper(ctx, id, req)
		if errors.Is(err, mysql.ErrNotFound) {
			http.Error(w, "Kayıt bulunamadı", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Damper güncellenemedi", slog.Int64("id", id), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "kayıt güncellenemedi"})
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
