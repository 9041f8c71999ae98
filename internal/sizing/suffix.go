// Package sizing maps garment size tokens to ShopWorks part-number suffixes
// and normalizes frontend size labels. Everything here is a pure lookup: no
// input ever produces an error, unknown sizes degrade to "no suffix".
package sizing

import (
	"regexp"
	"strings"
)

// sizeToSuffix maps a normalized size token to its ShopWorks part-number
// suffix. The four standard sizes carry no suffix. 2XL (standard plus-size
// line, _2X) and XXL (women's plus-size line, _XXL) are catalog-distinct and
// must never be merged; that split is a verified business rule.
var sizeToSuffix = map[string]string{
	// Standard
	"S":  "",
	"M":  "",
	"L":  "",
	"XL": "",

	// Plus
	"2XL":  "_2X",
	"3XL":  "_3X",
	"4XL":  "_4X",
	"5XL":  "_5X",
	"6XL":  "_6X",
	"7XL":  "_7X",
	"8XL":  "_8X",
	"9XL":  "_9X",
	"10XL": "_10X",

	// Women's plus line (distinct from 2XL/3XL)
	"XXL":  "_XXL",
	"XXXL": "_XXXL",
	"1X":   "_1X",
	"2X":   "_2XW",
	"3X":   "_3XW",
	"4X":   "_4XW",
	"5X":   "_5XW",
	"6X":   "_6XW",

	// Extra small
	"XS":  "_XS",
	"XXS": "_XXS",
	"4XS": "_4XS",
	"3XS": "_3XS",

	// Combo sizes
	"XS/S":    "_XSS",
	"S/M":     "_SM",
	"M/L":     "_ML",
	"L/XL":    "_LXL",
	"XL/2XL":  "_XL2X",
	"2XL/3XL": "_2X3X",
	"3XL/4XL": "_3X4X",

	// One size
	"OSFA": "",
	"OSFM": "",
	"OS":   "",

	// Tall
	"ST":   "_ST",
	"MT":   "_MT",
	"LT":   "_LT",
	"XLT":  "_XLT",
	"2XLT": "_2XT",
	"3XLT": "_3XT",
	"4XLT": "_4XT",
	"5XLT": "_5XT",
	"6XLT": "_6XT",

	// Regular fit (same suffix as base size; resolved via normalization
	// first, these entries cover callers that bypass it)
	"SR":   "",
	"MR":   "",
	"LR":   "",
	"XLR":  "",
	"2XLR": "_2X",
	"3XLR": "_3X",
	"4XLR": "_4X",

	// Long / short inseam
	"S-LONG":  "_SLN",
	"M-LONG":  "_MLN",
	"L-LONG":  "_LLN",
	"XL-LONG": "_XLLN",
	"S-SHORT": "_SSH",
	"M-SHORT": "_MSH",
	"L-SHORT": "_LSH",

	// Petite
	"SP":   "_SP",
	"MP":   "_MP",
	"LP":   "_LP",
	"XLP":  "_XLP",
	"2XLP": "_2XP",

	// Big
	"2XB": "_2XB",
	"3XB": "_3XB",
	"4XB": "_4XB",
	"5XB": "_5XB",
	"6XB": "_6XB",

	// Youth
	"YXS": "_YXS",
	"YS":  "_YS",
	"YM":  "_YM",
	"YL":  "_YL",
	"YXL": "_YXL",

	// Toddler
	"2T":   "_2T",
	"3T":   "_3T",
	"4T":   "_4T",
	"5T":   "_5T",
	"5/6T": "_56T",

	// Infant
	"NB":  "_NB",
	"3M":  "_3M",
	"6M":  "_6M",
	"9M":  "_9M",
	"12M": "_12M",
	"18M": "_18M",
	"24M": "_24M",
}

// regularFitRe matches regular-fit size variants: an optional numeric
// multiplier, "X", "L", trailing "R" (XLR, 2XLR, 10XLR), or the short forms
// SR/MR/LR captured by the alternation.
var regularFitRe = regexp.MustCompile(`(?i)^((?:\d*X)?L|S|M)R$`)

// NormalizeRegularFitSize collapses a regular-fit size variant to its base
// size (2XLR -> 2XL, SR -> S). Non-matching input is returned unchanged.
func NormalizeRegularFitSize(size string) string {
	m := regularFitRe.FindStringSubmatch(strings.TrimSpace(size))
	if m == nil {
		return size
	}
	return strings.ToUpper(m[1])
}

// GetSizeSuffix returns the ShopWorks part-number suffix for a size label.
// The regular-fit-normalized form is tried first so 2XLR resolves through
// 2XL; the raw token is the fallback; unknown sizes get no suffix.
func GetSizeSuffix(size string) string {
	key := strings.ToUpper(strings.TrimSpace(NormalizeRegularFitSize(size)))
	if suffix, ok := sizeToSuffix[key]; ok {
		return suffix
	}
	raw := strings.ToUpper(strings.TrimSpace(size))
	if suffix, ok := sizeToSuffix[raw]; ok {
		return suffix
	}
	return ""
}

// GetPartNumber builds the full vendor part number for a style and size. The
// suffix carries its own leading underscore; standard sizes yield the bare
// style.
func GetPartNumber(baseStyle, size string) string {
	return baseStyle + GetSizeSuffix(size)
}

// IsStandardSize reports whether the normalized size is one of S, M, L, XL.
func IsStandardSize(size string) bool {
	switch strings.ToUpper(strings.TrimSpace(NormalizeRegularFitSize(size))) {
	case "S", "M", "L", "XL":
		return true
	}
	return false
}
