package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

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

// GetDampersSummary returns one stage-status row per damper for the summary
// table.
func GetDampersSummary(log *slog.Logger, fleet FleetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.summary.GetDampersSummary"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		dampers, err := fleet.GetDampers(ctx, mysql.DamperFilter{})
		if err != nil {
			log.Error("Damper özeti alınamadı", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, stats.Rows(dampers, steps.Damper))
	}
}

func GetDorsesSummary(log *slog.Logger, fleet FleetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.summary.GetDorsesSummary"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		dorses, err := fleet.GetDorses(ctx, "")
		if err != nil {
			log.Error("Dorse özeti alınamadı", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, stats.Rows(dorses, steps.Dorse))
	}
}

// GetCompanySummary groups one fleet by normalized company name, with
// variants, M³ groups and scoped stage stats per group.
func GetCompanySummary(log *slog.Logger, fleet FleetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.summary.GetCompanySummary"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		product, ok := steps.ParseProduct(r.URL.Query().Get("type"))
		if !ok {
			http.Error(w, "Geçersiz tip", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var groups []stats.CompanyGroup
		switch product {
		case steps.Damper:
			dampers, err := fleet.GetDampers(ctx, mysql.DamperFilter{})
			if err != nil {
				log.Error("Firma özeti alınamadı", slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			groups = stats.ByCompany(dampers, product)
		case steps.Dorse:
			dorses, err := fleet.GetDorses(ctx, "")
			if err != nil {
				log.Error("Firma özeti alınamadı", slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			groups = stats.ByCompany(dorses, product)
		case steps.Sasi:
			sasis, err := fleet.GetSasis(ctx, "")
			if err != nil {
				log.Error("Firma özeti alınamadı", slog.String("error", err.Error()))
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			groups = stats.ByCompany(sasis, product)
		}

		render.JSON(w, r, groups)
	}
}
