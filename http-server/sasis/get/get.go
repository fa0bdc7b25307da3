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

type ResponseSasis struct {
	Sasis  []*storage.Sasi `json:"sasis"`
	Status string          `json:"status"`
	Error  string          `json:"error"`
}

type SasiProvider interface {
	GetSasis(ctx context.Context, search string) ([]*storage.Sasi, error)
	GetUnlinkedSasis(ctx context.Context) ([]*storage.Sasi, error)
	GetSasi(ctx context.Context, id int64) (*storage.Sasi, error)
}

// GetSasis lists şasis; ?unlinked=true narrows to stock units still waiting
// for a dorse.
func GetSasis(log *slog.Logger, provider SasiProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sasis.GetSasis"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var (
			sasis []*storage.Sasi
			err   error
		)
		if r.URL.Query().Get("unlinked") == "true" {
			sasis, err = provider.GetUnlinkedSasis(ctx)
		} else {
			sasis, err = provider.GetSasis(ctx, r.URL.Query().Get("search"))
		}
		if err != nil {
			log.Error("Şasi listesi alınamadı", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseSasis{Error: "kayıtlar alınamadı"})
			return
		}

		render.JSON(w, r, ResponseSasis{
			Sasis:  sasis,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}

func GetSasi(log *slog.Logger, provider SasiProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sasis.GetSasi"

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

		sasi, err := provider.GetSasi(ctx, id)
		if errors.Is(err, mysql.ErrNotFound) {
			http.Error(w, "Kayıt bulunamadı", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("Şasi alınamadı", slog.Int64("id", id), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, sasi)
	}
}
