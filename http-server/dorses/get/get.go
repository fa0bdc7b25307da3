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

type ResponseDorses struct {
	Dorses []*storage.Dorse `json:"dorses"`
	Status string           `json:"status"`
	Error  string           `json:"error"`
}

type DorseProvider interface {
	GetDorses(ctx context.Context, search string) ([]*storage.Dorse, error)
	GetDorse(ctx context.Context, id int64) (*storage.Dorse, error)
}

func GetDorses(log *slog.Logger, provider DorseProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dorses.GetDorses"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		dorses, err := provider.GetDorses(ctx, r.URL.Query().Get("search"))
		if err != nil {
			log.Error("Dorse listesi alınamadı", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseDorses{Error: "kayıtlar alınamadı"})
			return
		}

		render.JSON(w, r, ResponseDorses{
			Dorses: dorses,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}

func GetDorse(log *slog.Logger, provider DorseProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dorses.GetDorse"

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

		dorse, err := provider.GetDorse(ctx, id)
		if errors.Is(err, mysql.ErrNotFound) {
			http.Error(w, "Kayıt bulunamadı", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Dorse alınamadı", slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, dorse)
	}
}
