package handler

import (
	"net/http"

	"github.com/osse101/ArcFarmia_Go/internal/catalog"
)

// HandleCatalog returns the crop, animal, product and quest definitions
func HandleCatalog(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cat.Document())
	}
}
