package ws

import (
	"github.com/osse101/ArcFarmia_Go/internal/ambience"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
)

// Intent is a client message. Which fields are read depends on Type.
type Intent struct {
	Type      string `json:"type" validate:"required,max=32"`
	RequestID string `json:"requestId,omitempty" validate:"max=64"`
	Index     *int   `json:"index,omitempty" validate:"omitempty,min=0"`
	Slot      *int   `json:"slot,omitempty" validate:"omitempty,min=0"`
	CropID    string `json:"cropId,omitempty" validate:"max=64"`
	AnimalID  string `json:"animalId,omitempty" validate:"max=64"`
	ProductID string `json:"productId,omitempty" validate:"max=64"`
	QuestID   string `json:"questId,omitempty" validate:"max=64"`
	Direction string `json:"direction,omitempty" validate:"max=16"`
	Mode      string `json:"mode,omitempty" validate:"max=16"`
	Amount    int    `json:"amount,omitempty" validate:"omitempty,oneof=1 10"`
	NoticeID  string `json:"noticeId,omitempty" validate:"max=64"`
}

// ViewFrame pushes the current state
type ViewFrame struct {
	Type     string         `json:"type"`
	View     farm.View      `json:"view"`
	Session  domain.Session `json:"session"`
	Ambience ambience.State `json:"ambience"`
}

// ResultFrame answers one intent and carries the view after it
type ResultFrame struct {
	Type      string      `json:"type"`
	RequestID string      `json:"requestId,omitempty"`
	Intent    string      `json:"intent"`
	Applied   bool        `json:"applied"`
	Result    farm.Result `json:"result"`
	Error     string      `json:"error,omitempty"`
	Reason    string      `json:"reason,omitempty"`
	View      farm.View   `json:"view"`
}
