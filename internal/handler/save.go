package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
	"github.com/osse101/ArcFarmia_Go/internal/snapshot"
)

// MaxImportSize caps an imported save document
const MaxImportSize = 1 << 20

// ExportFilename is suggested to browsers downloading a save
const ExportFilename = "arcfarmia-save.json"

// ImportResponse reports the outcome of a save import
type ImportResponse struct {
	ActionResponse
	Warnings []string `json:"warnings,omitempty"`
}

// SaveHandler exports and imports versioned snapshots
type SaveHandler struct {
	farm farm.Service
}

// NewSaveHandler creates a new save handler
func NewSaveHandler(f farm.Service) *SaveHandler {
	return &SaveHandler{farm: f}
}

// Export handles GET /save/export
func (h *SaveHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := snapshot.Encode(h.farm.Snapshot())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgExportFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Error("Failed to write export", "error", err)
	}
}

// Import handles POST /save/import. The document must match the snapshot schema.
func (h *SaveHandler) Import(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxImportSize+1))
	if err != nil {
		log.Warn(ErrMsgReadBody, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgReadBody)
		return
	}
	if len(raw) > MaxImportSize {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgImportFailed)
		return
	}

	if err := snapshot.Validate(raw); err != nil {
		respondServiceError(w, r, domain.ActionRestore, err)
		return
	}
	patch, warnings, err := snapshot.Decode(raw)
	if err != nil {
		respondServiceError(w, r, domain.ActionRestore, err)
		return
	}
	for _, warning := range warnings {
		log.Warn(LogMsgImportWarning, "warning", warning)
	}

	res, err := h.farm.Restore(r.Context(), patch)
	if err != nil {
		respondServiceError(w, r, domain.ActionRestore, err)
		return
	}
	log.Info(LogMsgSaveImported, "revision", res.Revision)

	respondJSON(w, http.StatusOK, ImportResponse{
		ActionResponse: ActionResponse{Applied: res.Applied, Result: res, View: h.farm.View()},
		Warnings:       warnings,
	})
}
