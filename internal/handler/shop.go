package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ArcFarmia_Go/internal/bridge"
	"github.com/osse101/ArcFarmia_Go/internal/catalog"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
)

// SellHarvestRequest sells a whole harvested stack
type SellHarvestRequest struct {
	Crop string `json:"crop" validate:"required,max=64"`
}

// SellProduceRequest sells a whole produce stack
type SellProduceRequest struct {
	Product string `json:"product" validate:"required,max=64"`
}

// BuySeedsRequest buys a seed pack on chain
type BuySeedsRequest struct {
	Crop   string `json:"crop" validate:"required,max=64"`
	Amount int    `json:"amount" validate:"required,oneof=1 10"`
}

// BuyAnimalRequest buys an animal into a barn slot
type BuyAnimalRequest struct {
	Animal string `json:"animal" validate:"required,max=64"`
}

// ShopHandler serves the market, the barn and the quest board
type ShopHandler struct {
	farm    farm.Service
	catalog *catalog.Catalog
	bridge  bridge.Service
}

// NewShopHandler creates a new shop handler
func NewShopHandler(f farm.Service, cat *catalog.Catalog, br bridge.Service) *ShopHandler {
	return &ShopHandler{farm: f, catalog: cat, bridge: br}
}

// SellHarvest handles POST /shop/sell/harvest
func (h *ShopHandler) SellHarvest(w http.ResponseWriter, r *http.Request) {
	var req SellHarvestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "SellHarvest"); err != nil {
		return
	}
	cropID, err := h.catalog.Resolve(catalog.KindCrop, req.Crop)
	if err != nil {
		respondServiceError(w, r, domain.ActionSellHarvest, err)
		return
	}
	res, err := h.farm.SellHarvest(r.Context(), cropID)
	respondAction(w, r, h.farm, domain.ActionSellHarvest, res, err)
}

// SellProduce handles POST /shop/sell/produce
func (h *ShopHandler) SellProduce(w http.ResponseWriter, r *http.Request) {
	var req SellProduceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "SellProduce"); err != nil {
		return
	}
	productID, err := h.catalog.Resolve(catalog.KindProduct, req.Product)
	if err != nil {
		respondServiceError(w, r, domain.ActionSellProduce, err)
		return
	}
	res, err := h.farm.SellProduce(r.Context(), productID)
	respondAction(w, r, h.farm, domain.ActionSellProduce, res, err)
}

// BuySeeds handles POST /shop/buy. The purchase goes through the game contract.
func (h *ShopHandler) BuySeeds(w http.ResponseWriter, r *http.Request) {
	var req BuySeedsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "BuySeeds"); err != nil {
		return
	}
	cropID, err := h.catalog.Resolve(catalog.KindCrop, req.Crop)
	if err != nil {
		respondServiceError(w, r, domain.ActionPurchase, err)
		return
	}
	res, err := h.bridge.BuySeeds(r.Context(), cropID, req.Amount)
	respondAction(w, r, h.farm, domain.ActionPurchase, res, err)
}

// ClaimDaily handles POST /shop/daily
func (h *ShopHandler) ClaimDaily(w http.ResponseWriter, r *http.Request) {
	res, err := h.bridge.ClaimDaily(r.Context())
	respondAction(w, r, h.farm, domain.ActionCreditSeeds, res, err)
}

// BuyAnimal handles POST /barn/{slot}/buy
func (h *ShopHandler) BuyAnimal(w http.ResponseWriter, r *http.Request) {
	slot, ok := GetIntPathParam(r, w, PathParamSlot)
	if !ok {
		return
	}
	var req BuyAnimalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "BuyAnimal"); err != nil {
		return
	}
	animalID, err := h.catalog.Resolve(catalog.KindAnimal, req.Animal)
	if err != nil {
		respondServiceError(w, r, domain.ActionBuyAnimal, err)
		return
	}
	res, err := h.farm.BuyAnimal(r.Context(), slot, animalID)
	respondAction(w, r, h.farm, domain.ActionBuyAnimal, res, err)
}

// CollectProduce handles POST /barn/{slot}/collect
func (h *ShopHandler) CollectProduce(w http.ResponseWriter, r *http.Request) {
	slot, ok := GetIntPathParam(r, w, PathParamSlot)
	if !ok {
		return
	}
	res, err := h.farm.CollectProduce(r.Context(), slot)
	respondAction(w, r, h.farm, domain.ActionCollectProduce, res, err)
}

// ClaimQuest handles POST /quests/{questID}/claim
func (h *ShopHandler) ClaimQuest(w http.ResponseWriter, r *http.Request) {
	questID, err := h.catalog.Resolve(catalog.KindQuest, chi.URLParam(r, PathParamQuestID))
	if err != nil {
		respondServiceError(w, r, domain.ActionClaimQuest, err)
		return
	}
	res, err := h.farm.ClaimQuest(r.Context(), questID)
	respondAction(w, r, h.farm, domain.ActionClaimQuest, res, err)
}
