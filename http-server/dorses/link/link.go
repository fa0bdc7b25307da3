package link

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

	"damper-takip/internal/storage/mysql"
)

type SasiLinker interface {
	LinkSasi(ctx context.Context, dorseID, sasiID int64) error
}

type Request struct {
	SasiID int64 `json:"sasiId"`
}

type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// LinkSasi attaches a stock şasi to the dorse in the URL. A şasi already on
// another dorse is rejected.
func LinkSasi(log *slog.Logger, linker SasiLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dorses.LinkSasi"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		dorseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "Geçersiz id", http.StatusBadRequest)
			return
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SasiID == 0 {
			http.Error(w, "Geçersiz veri", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = linker.LinkSasi(ctx, dorseID, req.SasiID)
		if errors.Is(err, mysql.ErrNotFound) {
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, Response{Error: "dorse veya şasi bulunamadı, ya da şasi zaten bağlı"})
			return
		}
		if err != nil {
			log.Error("Şasi bağlanamadı", slog.Int64("dorse_id", dorseID), slog.Int64("sasi_id", req.SasiID), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "şasi bağlanamadı"})
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
