package get

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

	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type ResponseDampers struct {
	Dampers []*storage.Damper `json:"dampers"`
	Status  string            `json:"status"`
	Error   string            `json:"error"`
}

type DamperProvider interface {
	GetDampers(ctx context.Context, filter mysql.DamperFilter) ([]*storage.Damper, error)
	GetDamper(ctx context.Context, id int64) (*storage.Damper, error)
}

func GetDampers(log *slog.Logger, provider DamperProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dampers.GetDampers"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		filter := mysql.DamperFilter{
			Search:       r.URL.Query().Get("search"),
			Tip:          r.URL.Query().Get("tip"),
			MalzemeCinsi: r.URL.Query().Get("malzemeCinsi"),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		dampers, err := provider.GetDampers(ctx, filter)
		if err != nil {
			log.Error("Damper listesi alınamadı", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseDampers{Error: "kayıtlar alınamadı"})
			return
		}

		render.JSON(w, r, ResponseDampers{
			Dampers: dampers,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}

func GetDamper(log *slog.Logger, provider DamperProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dampers.GetDamper"

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

		damper, err := provider.GetDamper(ctx, id)
		if errors.Is(err, mysql.ErrNotFound) {
			http.Error(w, "Kayıt bulunamadı", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Damper alınamadı", slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, damper)
	}
}
