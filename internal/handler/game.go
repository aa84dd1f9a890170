package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ArcFarmia_Go/internal/ambience"
	"github.com/osse101/ArcFarmia_Go/internal/bridge"
	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
)

// StateResponse is the full picture a client renders
type StateResponse struct {
	View     farm.View      `json:"view"`
	Session  domain.Session `json:"session"`
	Ambience ambience.State `json:"ambience"`
}

// PlantRequest optionally names the crop; the selected crop is used otherwise
type PlantRequest struct {
	Crop string `json:"crop" validate:"omitempty,max=64"`
}

// MoveRequest moves the player marker one step
type MoveRequest struct {
	Direction string `json:"direction" validate:"required,direction"`
}

// ModeRequest selects what a field click does
type ModeRequest struct {
	Mode string `json:"mode" validate:"required,mode"`
}

// CropRequest selects the crop planted by clicks
type CropRequest struct {
	Crop string `json:"crop" validate:"required,max=64"`
}

// GameHandler serves the field, the player marker and the state view
type GameHandler struct {
	farm    farm.Service
	catalog *catalog.Catalog
	sky     *ambience.Sky
	clock   clock.Clock
	bridge  bridge.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(f farm.Service, cat *catalog.Catalog, sky *ambience.Sky, clk clock.Clock, br bridge.Service) *GameHandler {
	return &GameHandler{farm: f, catalog: cat, sky: sky, clock: clk, bridge: br}
}

// State returns the current view with session and ambience
func (h *GameHandler) State(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.snapshotState())
}

func (h *GameHandler) snapshotState() StateResponse {
	return StateResponse{
		View:     h.farm.View(),
		Session:  h.bridge.Session(),
		Ambience: h.sky.Current(h.clock.Now()),
	}
}

// Plant handles POST /field/{index}/plant
func (h *GameHandler) Plant(w http.ResponseWriter, r *http.Request) {
	index, ok := GetIntPathParam(r, w, PathParamIndex)
	if !ok {
		return
	}
	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	cropID := h.farm.View().SelectedCrop
	if req.Crop != "" {
		resolved, err := h.catalog.Resolve(catalog.KindCrop, req.Crop)
		if err != nil {
			respondServiceError(w, r, domain.ActionPlant, err)
			return
		}
		cropID = resolved
	}

	res, err := h.farm.Plant(r.Context(), index, cropID)
	respondAction(w, r, h.farm, domain.ActionPlant, res, err)
}

// Water handles POST /field/{index}/water
func (h *GameHandler) Water(w http.ResponseWriter, r *http.Request) {
	index, ok := GetIntPathParam(r, w, PathParamIndex)
	if !ok {
		return
	}
	res, err := h.farm.Water(r.Context(), index)
	respondAction(w, r, h.farm, domain.ActionWater, res, err)
}

// Harvest handles POST /field/{index}/harvest
func (h *GameHandler) Harvest(w http.ResponseWriter, r *http.Request) {
	index, ok := GetIntPathParam(r, w, PathParamIndex)
	if !ok {
		return
	}
	res, err := h.farm.Harvest(r.Context(), index)
	respondAction(w, r, h.farm, domain.ActionHarvest, res, err)
}

// Click handles POST /field/{index}/click
func (h *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	index, ok := GetIntPathParam(r, w, PathParamIndex)
	if !ok {
		return
	}
	res, err := h.farm.Click(r.Context(), index)
	respondAction(w, r, h.farm, domain.ActionClick, res, err)
}

// Move handles POST /player/move
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move"); err != nil {
		return
	}
	dir := domain.Direction(strings.ToLower(req.Direction))
	res, err := h.farm.Move(r.Context(), dir)
	respondAction(w, r, h.farm, domain.ActionMove, res, err)
}

// SetMode handles POST /mode
func (h *GameHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req ModeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "SetMode"); err != nil {
		return
	}
	res, err := h.farm.SetMode(r.Context(), domain.Mode(strings.ToLower(req.Mode)))
	respondAction(w, r, h.farm, domain.ActionSetMode, res, err)
}

// SelectCrop handles POST /crop
func (h *GameHandler) SelectCrop(w http.ResponseWriter, r *http.Request) {
	var req CropRequest
	if err := DecodeAndValidateRequest(r, w, &req, "SelectCrop"); err != nil {
		return
	}
	cropID, err := h.catalog.Resolve(catalog.KindCrop, req.Crop)
	if err != nil {
		respondServiceError(w, r, domain.ActionSelectCrop, err)
		return
	}
	res, err := h.farm.SelectCrop(r.Context(), cropID)
	respondAction(w, r, h.farm, domain.ActionSelectCrop, res, err)
}

// DismissLevelUp handles POST /levelup/{noticeID}/dismiss
func (h *GameHandler) DismissLevelUp(w http.ResponseWriter, r *http.Request) {
	res, err := h.farm.DismissLevelUp(r.Context(), chi.URLParam(r, PathParamNotice))
	respondAction(w, r, h.farm, domain.ActionDismissLevelUp, res, err)
}
