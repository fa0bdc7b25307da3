package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"damper-takip/internal/steps"
)

type SummaryGenerator interface {
	GenerateSummary(ctx context.Context, product steps.Product) ([]byte, error)
}

// GenerateReportExcel streams the summary table of one fleet as an xlsx
// download.
func GenerateReportExcel(log *slog.Logger, gen SummaryGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		product, ok := steps.ParseProduct(r.URL.Query().Get("type"))
		if !ok {
			http.Error(w, "Geçersiz tip", http.StatusBadRequest)
			return
		}

		// Excel üretimi listelemeden daha uzun sürebilir.
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateSummary(ctx, product)
		if err != nil {
			log.Error("Excel raporu üretilemedi", slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("takip_ozet_%s.xlsx", time.Now().Format("2006-01-02_150405"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
