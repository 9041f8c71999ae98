package sizing

import (
	"fmt"
	"strings"
)

// displayToToken maps long-form size labels the quote frontend emits to the
// short tokens ShopWorks expects. Tokens already in short form pass through.
var displayToToken = map[string]string{
	"X-SMALL":          "XS",
	"XSMALL":           "XS",
	"EXTRA SMALL":      "XS",
	"SMALL":            "S",
	"MEDIUM":           "M",
	"LARGE":            "L",
	"X-LARGE":          "XL",
	"XLARGE":           "XL",
	"EXTRA LARGE":      "XL",
	"2X-LARGE":         "2XL",
	"XX-LARGE":         "2XL",
	"3X-LARGE":         "3XL",
	"XXX-LARGE":        "3XL",
	"4X-LARGE":         "4XL",
	"5X-LARGE":         "5XL",
	"6X-LARGE":         "6XL",
	"ONE SIZE":         "OSFA",
	"ONE SIZE FITS ALL": "OSFA",
	"OS":               "OSFA",
}

// TranslateSize converts a frontend size label to a ShopWorks size token.
// Unrecognized labels are returned cleaned (trimmed, uppercased) rather than
// rejected; only an empty label is an error.
func TranslateSize(size string) (string, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(size))
	if cleaned == "" {
		return "", fmt.Errorf("empty size label")
	}
	if token, ok := displayToToken[cleaned]; ok {
		return token, nil
	}
	return cleaned, nil
}
