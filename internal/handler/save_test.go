package handler_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/handler"
)

func TestSaveHandler_ExportImport(t *testing.T) {
	app := newTestApp(t)

	_, err := app.farm.Plant(t.Context(), 4, domain.CropCorn)
	require.NoError(t, err)

	rec := app.do(t, http.MethodGet, "/save/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), handler.ExportFilename)
	exported, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(exported), `"version":1`)

	_, err = app.farm.Plant(t.Context(), 5, domain.CropWheat)
	require.NoError(t, err)
	require.Equal(t, domain.TilePlanted, app.farm.View().Field[5].State)

	rec = app.do(t, http.MethodPost, "/save/import", string(exported))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeAction(t, rec)
	assert.True(t, resp.Applied)
	assert.Equal(t, domain.TilePlanted, resp.View.Field[4].State)
	assert.Equal(t, domain.CropCorn, resp.View.Field[4].CropID)
	assert.Equal(t, domain.TileEmpty, resp.View.Field[5].State)
	assert.Equal(t, domain.StartingCornSeeds-1, resp.View.Seeds[domain.CropCorn])
	assert.Equal(t, domain.StartingWheatSeeds, resp.View.Seeds[domain.CropWheat])
}

func TestSaveHandler_ImportRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{oops"},
		{"missing fields", `{"arcCoins": 10}`},
		{"wrong type", `{"arcCoins": "lots", "xp": 0, "level": 1, "seeds": {}, "field": [], "barnSlots": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			before := app.farm.Revision()

			rec := app.do(t, http.MethodPost, "/save/import", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, before, app.farm.Revision())
		})
	}
}

func TestSaveHandler_ImportTooLarge(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(t, http.MethodPost, "/save/import", strings.Repeat(" ", handler.MaxImportSize+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleCatalog(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(t, http.MethodGet, "/catalog", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, id := range []string{domain.CropWheat, domain.AnimalCow, domain.ProductMilk, "harvest_5"} {
		assert.Contains(t, body, `"`+id+`"`)
	}
}
