package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"damper-takip/internal/service/dashboard"
	"damper-takip/internal/service/stats"
	"damper-takip/internal/steps"
	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

type FleetProvider interface {
	GetDampers(ctx context.Context, filter mysql.DamperFilter) ([]*storage.Damper, error)
	GetDorses(ctx context.Context, search string) ([]*storage.Dorse, error)
	GetSasis(ctx context.Context, search string) ([]*storage.Sasi, error)
}

type OverviewProvider interface {
	Overview(ctx context.Context) (dashboard.Overview, error)
}

// GetStats returns the classifier bucket counts of one fleet, or of all three
// when no type is given.
func GetStats(log *slog.Logger, fleet FleetProvider, overview OverviewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.stats.GetStats"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		typeParam := r.URL.Query().Get("type")
		if typeParam == "" {
			all, err := overview.Overview(ctx)
			if err != nil {
				log.Error("Genel istatistikler alınamadı", slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			render.JSON(w, r, all)
			return
		}

		product, ok := steps.ParseProduct(typeParam)
		if !ok {
			http.Error(w, "Geçersiz tip", http.StatusBadRequest)
			return
		}

		var (
			summary stats.Summary
			err     error
		)
		switch product {
		case steps.Damper:
			var dampers []*storage.Damper
			if dampers, err = fleet.GetDampers(ctx, mysql.DamperFilter{}); err == nil {
				summary = stats.Buckets(dampers, product)
			}
		case steps.Dorse:
			var dorses []*storage.Dorse
			if dorses, err = fleet.GetDorses(ctx, ""); err == nil {
				summary = stats.Buckets(dorses, product)
			}
		case steps.Sasi:
			var sasis []*storage.Sasi
			if sasis, err = fleet.GetSasis(ctx, ""); err == nil {
				summary = stats.Buckets(sasis, product)
			}
		}
		if err != nil {
			log.Error("İstatistikler alınamadı", slog.String("type", typeParam), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, summary)
	}
}
