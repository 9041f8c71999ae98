package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSizeBreakdownPreservesOrder(t *testing.T) {
	entries := DecodeSizeBreakdown(`{"S":6,"M":6,"L":6,"XL":4}`)
	require.Len(t, entries, 4)

	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Label)
	}
	assert.Equal(t, []string{"S", "M", "L", "XL"}, labels)
}

func TestDecodeSizeBreakdown(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty string", "", 0},
		{"whitespace only", "   ", 0},
		{"not json", "small and medium", 0},
		{"json array not object", `["S","M"]`, 0},
		{"truncated object", `{"S":6,"M":`, 0},
		{"empty object", `{}`, 0},
		{"single entry", `{"OSFA":12}`, 1},
		{"string quantities", `{"S":"6","M":"4"}`, 2},
		{"nested metadata values", `{"type":"cap","S":6}`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, DecodeSizeBreakdown(tt.raw), tt.want)
		})
	}
}

func TestDecodeQuantity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `6`, 6},
		{"float", `2.5`, 2.5},
		{"numeric string", `"12"`, 12},
		{"padded numeric string", `" 4 "`, 4},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"text", `"a few"`, 0},
		{"object", `{"qty":6}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeQuantity(json.RawMessage(tt.raw)))
		})
	}
}

func TestDecodeLogoSpecsOrEmpty(t *testing.T) {
	specs := DecodeLogoSpecsOrEmpty(`[{"pos":"Left Chest","stitch":8000},{"pos":"Cap Front","stitch":"5000"}]`)
	require.Len(t, specs, 2)
	assert.Equal(t, "Left Chest", specs[0].Position)
	assert.Equal(t, 8000.0, specs[0].StitchCount.Float64())
	assert.Equal(t, "Cap Front", specs[1].Position)
	assert.Equal(t, 5000.0, specs[1].StitchCount.Float64())

	assert.Nil(t, DecodeLogoSpecsOrEmpty(""))
	assert.Nil(t, DecodeLogoSpecsOrEmpty("left chest"))
	assert.Nil(t, DecodeLogoSpecsOrEmpty(`{"pos":"Left Chest"}`))
}

func TestDecodeStringListOrWrap(t *testing.T) {
	assert.Equal(t, []string{"D-100", "D-101"}, DecodeStringListOrWrap(`["D-100","D-101"]`))
	assert.Equal(t, []string{"rush order, ship Friday"}, DecodeStringListOrWrap("rush order, ship Friday"))
	assert.Nil(t, DecodeStringListOrWrap(""))
	assert.Nil(t, DecodeStringListOrWrap("   "))
}

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"number", `42.5`, 42.5},
		{"integer", `7`, 7},
		{"quoted number", `"42.5"`, 42.5},
		{"quoted integer", `"7"`, 7},
		{"quoted padded", `" 3 "`, 3},
		{"null", `null`, 0},
		{"empty quoted", `""`, 0},
		{"garbage", `"TBD"`, 0},
		{"bool", `true`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			require.NoError(t, f.UnmarshalJSON([]byte(tt.raw)))
			assert.Equal(t, tt.want, f.Float64())
		})
	}
}

func TestFlexFloatOr(t *testing.T) {
	assert.Equal(t, 1.0, FlexFloat(0).Or(1))
	assert.Equal(t, 12.0, FlexFloat(12).Or(1))
}
