package save

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"damper-takip/internal/storage"
)

type DorseSaver interface {
	SaveDorse(ctx context.Context, d *storage.Dorse) (int64, error)
}

type Response struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
	Error  string  `json:"error"`
}

func SaveDorse(log *slog.Logger, saver DorseSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dorses.SaveDorse"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.Dorse
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Geçersiz JSON", slog.String("error", err.Error()))
			http.Error(w, "Geçersiz veri", http.StatusBadRequest)
			return
		}
		if req.Musteri == "" {
			http.Error(w, "Müşteri adı zorunlu", http.StatusBadRequest)
			return
		}

		adet := req.Adet
		if adet < 1 {
			adet = 1
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		baseName := req.Musteri
		ids := make([]int64, 0, adet)
		for i := 1; i <= adet; i++ {
			d := req
			if adet > 1 {
				d.Musteri = fmt.Sprintf("%s %d", baseName, i)
			}
			id, err := saver.SaveDorse(ctx, &d)
			if err != nil {
				log.Error("Dorse kaydedilemedi", slog.String("error", err.Error()))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, Response{Error: "kayıt oluşturulamadı"})
				return
			}
			ids = append(ids, id)
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{
			IDs:    ids,
			Status: strconv.Itoa(http.StatusCreated),
		})
	}
}
