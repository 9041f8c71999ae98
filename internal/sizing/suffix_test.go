package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSizeSuffix(t *testing.T) {
	tests := []struct {
		name string
		size string
		want string
	}{
		{"standard small", "S", ""},
		{"standard medium", "M", ""},
		{"standard large", "L", ""},
		{"standard extra large", "XL", ""},
		{"plus 2XL", "2XL", "_2X"},
		{"plus 3XL", "3XL", "_3X"},
		{"plus 10XL", "10XL", "_10X"},
		{"womens XXL", "XXL", "_XXL"},
		{"womens 2X", "2X", "_2XW"},
		{"extra small", "XS", "_XS"},
		{"combo S/M", "S/M", "_SM"},
		{"combo XL/2XL", "XL/2XL", "_XL2X"},
		{"one size fits all", "OSFA", ""},
		{"one size fits most", "OSFM", ""},
		{"tall large", "LT", "_LT"},
		{"tall 2XLT", "2XLT", "_2XT"},
		{"petite medium", "MP", "_MP"},
		{"big 3XB", "3XB", "_3XB"},
		{"youth medium", "YM", "_YM"},
		{"toddler 2T", "2T", "_2T"},
		{"infant newborn", "NB", "_NB"},
		{"infant 12 months", "12M", "_12M"},
		{"long inseam", "M-LONG", "_MLN"},
		{"short inseam", "L-SHORT", "_LSH"},
		{"lowercase input", "2xl", "_2X"},
		{"whitespace input", "  3XL  ", "_3X"},
		{"unknown size", "BANANA", ""},
		{"empty size", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSizeSuffix(tt.size))
		})
	}
}

// 2XL and XXL are separate catalog lines with distinct part suffixes. A
// regression that merges them corrupts orders silently, so pin it down.
func Test2XLAndXXLStayDistinct(t *testing.T) {
	assert.Equal(t, "_2X", GetSizeSuffix("2XL"))
	assert.Equal(t, "_XXL", GetSizeSuffix("XXL"))
	assert.NotEqual(t, GetSizeSuffix("2XL"), GetSizeSuffix("XXL"))
}

func TestNormalizeRegularFitSize(t *testing.T) {
	tests := []struct {
		size string
		want string
	}{
		{"SR", "S"},
		{"MR", "M"},
		{"LR", "L"},
		{"XLR", "XL"},
		{"2XLR", "2XL"},
		{"10XLR", "10XL"},
		{"xlr", "XL"},
		{"XL", "XL"},
		{"2XL", "2XL"},
		{"OSFA", "OSFA"},
		{"R", "R"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRegularFitSize(tt.size))
		})
	}
}

func TestGetPartNumber(t *testing.T) {
	tests := []struct {
		name  string
		style string
		size  string
		want  string
	}{
		{"standard size bare style", "PC61", "L", "PC61"},
		{"plus size suffixed", "PC61", "2XL", "PC61_2X"},
		{"womens plus suffixed", "LPC61", "XXL", "LPC61_XXL"},
		{"tall suffixed", "K500", "XLT", "K500_XLT"},
		{"osfa bare style", "C112", "OSFA", "C112"},
		{"unknown size bare style", "PC61", "WAT", "PC61"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPartNumber(tt.style, tt.size))
		})
	}

	// Regular-fit variants resolve through their base size.
	assert.Equal(t, GetPartNumber("PC61", "S"), GetPartNumber("PC61", "SR"))
	assert.Equal(t, GetPartNumber("PC61", "2XL"), GetPartNumber("PC61", "2XLR"))
}

func TestIsStandardSize(t *testing.T) {
	assert.True(t, IsStandardSize("S"))
	assert.True(t, IsStandardSize("xl"))
	assert.True(t, IsStandardSize("XLR"))
	assert.False(t, IsStandardSize("2XL"))
	assert.False(t, IsStandardSize("OSFA"))
	assert.False(t, IsStandardSize(""))
}
