package handler

import (
	"net/http"

	"github.com/osse101/ArcFarmia_Go/internal/bridge"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// SessionResponse is returned by connect and disconnect
type SessionResponse struct {
	Session domain.Session `json:"session"`
	View    farm.View      `json:"view"`
}

// NoticeResponse carries a notice together with the fresh view
type NoticeResponse struct {
	Notice domain.NoticePayload `json:"notice"`
	View   farm.View            `json:"view"`
}

// WalletHandler serves the wallet session and chain persistence
type WalletHandler struct {
	farm   farm.Service
	bridge bridge.Service
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(f farm.Service, br bridge.Service) *WalletHandler {
	return &WalletHandler{farm: f, bridge: br}
}

// Connect handles POST /wallet/connect
func (h *WalletHandler) Connect(w http.ResponseWriter, r *http.Request) {
	session, err := h.bridge.Connect(r.Context())
	if err != nil {
		respondServiceError(w, r, "connect", err)
		return
	}
	logger.FromContext(r.Context()).Info("Wallet connected", "address", session.Address)
	respondJSON(w, http.StatusOK, SessionResponse{Session: session, View: h.farm.View()})
}

// Disconnect handles POST /wallet/disconnect
func (h *WalletHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	session, err := h.bridge.Disconnect(r.Context())
	if err != nil {
		respondServiceError(w, r, "disconnect", err)
		return
	}
	logger.FromContext(r.Context()).Info("Wallet disconnected")
	respondJSON(w, http.StatusOK, SessionResponse{Session: session, View: h.farm.View()})
}

// SaveToChain handles POST /chain/save
func (h *WalletHandler) SaveToChain(w http.ResponseWriter, r *http.Request) {
	notice, err := h.bridge.SaveToChain(r.Context())
	if err != nil {
		respondServiceError(w, r, domain.ChainActionSave, err)
		return
	}
	respondJSON(w, http.StatusOK, NoticeResponse{Notice: notice, View: h.farm.View()})
}

// LoadFromChain handles POST /chain/load
func (h *WalletHandler) LoadFromChain(w http.ResponseWriter, r *http.Request) {
	res, err := h.bridge.LoadFromChain(r.Context())
	respondAction(w, r, h.farm, domain.ActionApplyChain, res, err)
}
