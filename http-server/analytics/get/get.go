package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"damper-takip/internal/service/progress"
	"damper-takip/internal/service/stats"
	"damper-takip/internal/steps"
	"damper-takip/internal/storage"
	"damper-takip/internal/storage/mysql"
)

const (
	distributionLimit = 8
	activityLimit     = 20
)

type FleetProvider interface {
	GetDampers(ctx context.Context, filter mysql.DamperFilter) ([]*storage.Damper, error)
	GetDorses(ctx context.Context, search string) ([]*storage.Dorse, error)
	GetSasis(ctx context.Context, search string) ([]*storage.Sasi, error)
}

type RecentProvider interface {
	GetRecentDampers(ctx context.Context, since time.Time, limit int) ([]*storage.Damper, error)
}

type StepStatsResponse struct {
	Total stats.StepStatsMap            `json:"total"`
	ByM3  map[string]stats.StepStatsMap `json:"byM3"`
}

// GetStepStats returns the per-stage status distribution of one fleet,
// overall and sliced by M³.
func GetStepStats(log *slog.Logger, fleet FleetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetStepStats"

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

		orders, err := fetchOrders(ctx, fleet, product)
		if err != nil {
			log.Error("Aşama istatistikleri alınamadı", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		total, byM3 := stats.StepStats(orders, product)
		render.JSON(w, r, StepStatsResponse{Total: total, ByM3: byM3})
	}
}

// GetCompanyDistribution returns the most frequent normalized company names.
func GetCompanyDistribution(log *slog.Logger, fleet FleetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetCompanyDistribution"

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

		orders, err := fetchOrders(ctx, fleet, product)
		if err != nil {
			log.Error("Firma dağılımı alınamadı", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, stats.CompanyDistribution(orders, distributionLimit))
	}
}

type ActivityItem struct {
	ID             int64        `json:"id"`
	ImalatNo       *int64       `json:"imalatNo"`
	Musteri        string       `json:"musteri"`
	Progress       int          `json:"progress"`
	Status         steps.Bucket `json:"status"`
	CompletedSteps []string     `json:"completedSteps"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// GetRecentActivity lists today's touched dampers, newest first, with the
// labels of their completed sub-steps.
func GetRecentActivity(log *slog.Logger, recent RecentProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.GetRecentActivity"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		dampers, err := recent.GetRecentDampers(ctx, startOfDay, activityLimit)
		if err != nil {
			log.Error("Son hareketler alınamadı", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		items := make([]ActivityItem, 0, len(dampers))
		for _, d := range dampers {
			items = append(items, ActivityItem{
				ID:             d.ID,
				ImalatNo:       d.ImalatNo,
				Musteri:        d.Musteri,
				Progress:       progress.Percent(d, steps.Damper),
				Status:         progress.Classify(d, steps.Damper),
				CompletedSteps: completedLabels(d, steps.Damper),
				UpdatedAt:      d.UpdatedAt,
			})
		}

		render.JSON(w, r, items)
	}
}

func fetchOrders(ctx context.Context, fleet FleetProvider, product steps.Product) ([]stats.Order, error) {
	switch product {
	case steps.Damper:
		dampers, err := fleet.GetDampers(ctx, mysql.DamperFilter{})
		if err != nil {
			return nil, err
		}
		orders := make([]stats.Order, len(dampers))
		for i, d := range dampers {
			orders[i] = d
		}
		return orders, nil
	case steps.Dorse:
		dorses, err := fleet.GetDorses(ctx, "")
		if err != nil {
			return nil, err
		}
		orders := make([]stats.Order, len(dorses))
		for i, d := range dorses {
			orders[i] = d
		}
		return orders, nil
	default:
		sasis, err := fleet.GetSasis(ctx, "")
		if err != nil {
			return nil, err
		}
		orders := make([]stats.Order, len(sasis))
		for i, s := range sasis {
			orders[i] = s
		}
		return orders, nil
	}
}

func completedLabels(rec steps.Record, product steps.Product) []string {
	var labels []string
	for _, def := range steps.Definitions(product) {
		if def.EnumKey != "" {
			if rec.EnumValue(def.EnumKey) == steps.EnumDone {
				labels = append(labels, def.Name)
			}
			continue
		}
		for _, s := range def.Steps {
			if rec.StepDone(s.Key) {
				labels = append(labels, s.Label)
			}
		}
	}
	return labels
}
