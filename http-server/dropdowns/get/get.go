package get

import (
	"net/http"

	"github.com/go-chi/render"

	"damper-takip/internal/constants"
)

// GetDropdowns serves the closed option sets the order forms are built from.
func GetDropdowns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, constants.Dropdowns)
	}
}
