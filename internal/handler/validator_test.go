package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
)

type intentStruct struct {
	Mode      string `validate:"omitempty,mode"`
	Direction string `validate:"omitempty,direction"`
	Amount    int    `validate:"omitempty,oneof=1 10"`
}

func TestValidator_Mode(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{"plant", "plant", false},
		{"water", "water", false},
		{"harvest", "harvest", false},
		{"empty allowed", "", false},
		{"uppercase", "HARVEST", false},
		{"unknown", "fish", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(intentStruct{Mode: tt.mode})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, FormatValidationError(err), "mode")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Direction(t *testing.T) {
	InitValidator()
	v := GetValidator()

	for _, dir := range []string{"left", "right", "up", "DOWN"} {
		assert.NoError(t, v.ValidateStruct(intentStruct{Direction: dir}), dir)
	}
	err := v.ValidateStruct(intentStruct{Direction: "diagonal"})
	require.Error(t, err)
	assert.Equal(t, "Must be one of left, right, up, down", FormatValidationError(err)["direction"])
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))

	err := GetValidator().ValidateStruct(intentStruct{Amount: 3})
	require.Error(t, err)
	assert.Equal(t, "Must be one of 1 10", FormatValidationError(err)["amount"])
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{fmt.Errorf("%w: 99", domain.ErrInvalidTile), http.StatusBadRequest},
		{fmt.Errorf("%w: 9", domain.ErrInvalidSlot), http.StatusBadRequest},
		{fmt.Errorf("%w: crop %q", domain.ErrUnknownCatalogEntry, "kale"), http.StatusBadRequest},
		{domain.ErrInvalidSnapshot, http.StatusBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrSaveNotFound, http.StatusNotFound},
		{domain.ErrWalletNotConnected, http.StatusForbidden},
		{domain.ErrWalletUnavailable, http.StatusServiceUnavailable},
		{domain.ErrTransactionReverted, http.StatusBadGateway},
		{fmt.Errorf("%w: dial tcp", domain.ErrChainUnavailable), http.StatusBadGateway},
		{errors.New("disk on fire"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.wantStatus, status, "%v", tt.err)
		assert.NotEmpty(t, msg)
	}
}
