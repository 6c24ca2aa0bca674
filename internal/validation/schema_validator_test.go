package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_FishDescriptors(t *testing.T) {
	v := NewSchemaValidator()

	require.NoError(t, v.ValidateBytes([]byte(`{"128": "Pufferfish/80/floater/1/37/1200 1600/summer/sunny/690 .4 685/4/.3/.5/0"}`), SchemaFishDescriptors))

	err := v.ValidateBytes([]byte(`{"128": 5}`), SchemaFishDescriptors)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgValidationFailed)
	assert.Contains(t, err.Error(), "/128")
}

func TestValidateBytes_LocationSpawns(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"valid", `{"Beach": [{"itemId": "(O)128"}, {"itemId": "131", "condition": "SEASON summer"}]}`, ""},
		{"null condition", `{"Town": [{"itemId": "137", "condition": null}]}`, ""},
		{"missing item id", `{"Beach": [{"condition": "SEASON summer"}]}`, "required"},
		{"not a list", `{"Beach": {"itemId": "128"}}`, "type"},
		{"invalid json", `{"Beach": [}`, ErrMsgParseJSONData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SchemaLocationSpawns)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateBytes_ContentPack(t *testing.T) {
	v := NewSchemaValidator()

	valid := `{
		"version": "1.0",
		"schema": "content-pack",
		"name": "treasure",
		"addTreasure": [
			{"id": "(O)166", "availability": {"baseChance": 0.01, "seasons": "all", "when": [{"condition": "WATER_DEPTH 4"}]}}
		],
		"setFishTraits": {"(O)900": {"difficulty": 110, "motionType": "smooth", "minSize": 10, "maxSize": 30, "isLegendary": true}}
	}`
	require.NoError(t, v.ValidateBytes([]byte(valid), SchemaContentPack))

	invalid := `{"version": "1.0", "schema": "content-pack", "name": "x", "addFish": [{"id": "1", "availability": {"baseChance": -1}}]}`
	err := v.ValidateBytes([]byte(invalid), SchemaContentPack)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum")
}

func TestValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()

	path := filepath.Join(dir, "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "1", "items": [{"id": "(O)128", "tags": ["fish_ocean"]}]}`), 0o644))
	assert.NoError(t, v.ValidateFile(path, SchemaItems))

	err := v.ValidateFile(filepath.Join(dir, "missing.json"), SchemaItems)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestUnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "nope.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema not found")
}

func TestSchemaCache(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	for range 3 {
		require.NoError(t, v.ValidateBytes([]byte(`{}`), SchemaFishDescriptors))
	}
	assert.Len(t, v.schemas, 1)
}
