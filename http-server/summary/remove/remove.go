package remove

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"damper-takip/internal/service/stats"
	"damper-takip/internal/storage"
)

type CompanyM3Deleter interface {
	GetDampersByM3(ctx context.Context, m3 float64) ([]*storage.Damper, error)
	DeleteDampersByID(ctx context.Context, ids []int64) (int64, error)
}

type Request struct {
	Company string  `json:"company"`
	M3      float64 `json:"m3"`
}

type Response struct {
	Deleted int64  `json:"deleted"`
	Status  string `json:"status"`
	Error   string `json:"error"`
}

// DeleteCompanyM3 removes every damper of one company at one M³ value. The
// company matches on the normalized name, same as the summary grouping.
func DeleteCompanyM3(log *slog.Logger, deleter CompanyM3Deleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.summary.DeleteCompanyM3"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Company == "" {
			http.Error(w, "Geçersiz veri", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		dampers, err := deleter.GetDampersByM3(ctx, req.M3)
		if err != nil {
			log.Error("Silinecek kayıtlar alınamadı", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		key := stats.NormalizeCompany(req.Company)
		var ids []int64
		for _, d := range dampers {
			if stats.NormalizeCompany(d.Musteri) == key {
				ids = append(ids, d.ID)
			}
		}
		if len(ids) == 0 {
			render.JSON(w, r, Response{Deleted: 0, Status: strconv.Itoa(http.StatusOK)})
			return
		}

		deleted, err := deleter.DeleteDampersByID(ctx, ids)
		if err != nil {
			log.Error("Kayıtlar silinemedi", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "kayıtlar silinemedi"})
			return
		}

		render.JSON(w, r, Response{
			Deleted: deleted,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
