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

type SasiSaver interface {
	SaveSasi(ctx context.Context, s *storage.Sasi) (int64, error)
}

type Response struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
	Error  string  `json:"error"`
}

// SaveSasi creates one or more şasi records. An empty customer name means a
// stock build; those are named "Stok 1".."Stok N".
func SaveSasi(log *slog.Logger, saver SasiSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.sasis.SaveSasi"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.Sasi
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Geçersiz JSON", slog.String("error", err.Error()))
			http.Error(w, "Geçersiz veri", http.StatusBadRequest)
			return
		}

		adet := req.Adet
		if adet < 1 {
			adet = 1
		}

		baseName := req.Musteri
		if baseName == "" {
			baseName = "Stok"
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		ids := make([]int64, 0, adet)
		for i := 1; i <= adet; i++ {
			s := req
			s.Musteri = baseName
			if adet > 1 {
				s.Musteri = fmt.Sprintf("%s %d", baseName, i)
			}
			id, err := saver.SaveSasi(ctx, &s)
			if err != nil {
				log.Error("Şasi kaydedilemedi", slog.String("error", err.Error()))
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
