package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSnapshot = `{
	"version": 1,
	"arcCoins": 50, "xp": 0, "level": 0, "nextLevelXp": 30,
	"seeds": {"wheat": 4, "corn": 3, "carrot": 2},
	"stats": {"planted": 1},
	"claimedQuests": {"plant_10": true},
	"field": [{"state": "growing", "plantedAt": 1714554000000, "cropId": "wheat"}, {"state": "empty", "plantedAt": null, "cropId": null}],
	"barnSlots": [{"animalId": null, "startedAt": null, "lastCollectedAt": null}]
}`

func TestSchemaValidator_Snapshot(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{name: "valid snapshot", data: validSnapshot},
		{name: "legacy snapshot without version", data: `{"arcCoins": 1, "xp": 2, "level": 0, "seeds": {}, "field": [], "barnSlots": []}`},
		{name: "missing required field", data: `{"xp": 2, "level": 0, "seeds": {}, "field": [], "barnSlots": []}`, errorMsg: "required"},
		{name: "negative coins", data: `{"arcCoins": -1, "xp": 2, "level": 0, "seeds": {}, "field": [], "barnSlots": []}`, errorMsg: "/arcCoins"},
		{name: "unknown tile state", data: `{"arcCoins": 1, "xp": 2, "level": 0, "seeds": {}, "field": [{"state": "withered"}], "barnSlots": []}`, errorMsg: "/field/0/state"},
		{name: "fractional seed count", data: `{"arcCoins": 1, "xp": 2, "level": 0, "seeds": {"wheat": 1.5}, "field": [], "barnSlots": []}`, errorMsg: "/seeds/wheat"},
		{name: "not an object", data: `[1, 2]`, errorMsg: "type"},
		{name: "invalid JSON", data: `{"arcCoins": }`, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaSnapshot)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	source := fstest.MapFS{
		"schemas/tiny.schema.json": {Data: []byte(`{"type": "object", "required": ["id"]}`)},
	}
	v := newValidator(source)

	require.NoError(t, v.ValidateBytes([]byte(`{"id": 1}`), "tiny.schema.json"))
	assert.Len(t, v.schemas, 1)

	delete(source, "schemas/tiny.schema.json")
	err := v.ValidateBytes([]byte(`{}`), "tiny.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required", "compiled schema is reused")
}
