package config

// ShopWorks push defaults and code tables. These values are fixed properties
// of the receiving OnSite installation, not deployment configuration, so they
// live in code rather than the environment.

// ShopWorksDefaults are the constant field values every pushed order carries.
type ShopWorksDefaults struct {
	ExtSource          string
	CustomerPreference string
	ProductClass       string
	ServiceClass       string
	ArtistID           string
	DesignTypeID       string
	AutoHold           string
	ShipCountry        string
	ShipMethodPickup   string
	TermsName          string
	CurrencyCode       string
}

// DefaultShopWorks returns the push defaults for the production OnSite target.
func DefaultShopWorks() ShopWorksDefaults {
	return ShopWorksDefaults{
		ExtSource:          "NWCA-WEB",
		CustomerPreference: "4",
		ProductClass:       "1",  // decorated goods
		ServiceClass:       "13", // fees and services
		ArtistID:           "5",
		DesignTypeID:       "3", // embroidery
		AutoHold:           "1",
		ShipCountry:        "USA",
		ShipMethodPickup:   "Will Call",
		TermsName:          "Due on Receipt",
		CurrencyCode:       "USD",
	}
}

// Order-level fee part numbers. These accumulate into order header totals and
// must never appear in LinesOE.
const (
	FeeCodeShipping = "SHIP"
	FeeCodeDiscount = "DISCOUNT"
)

// KnownFeeCodes is the allow-list of billable fee part numbers. A fee item
// whose part number is not listed here is diverted to the order notes instead
// of being pushed as a priced line.
var KnownFeeCodes = map[string]bool{
	"DIGITIZING": true,
	"DG":         true,
	"SETUP":      true,
	"RUSH":       true,
	"SAMPLE":     true,
	"ART":        true,
	"NAMES":      true,
	"MONOGRAM":   true,
	"AL":         true,
	"AL-CAP":     true,
	"CB":         true,
	"CS":         true,
	"DECG":       true,
	"DECC":       true,
	"GRT-50":     true,
	"GRT-75":     true,
}

// CapServiceParts are additional-logo service part numbers that bill against
// the cap design rather than the garment design.
var CapServiceParts = map[string]bool{
	"AL-CAP": true,
	"CB":     true,
	"CS":     true,
}

// HeadwearSKUPrefixes are style-number prefixes of known headwear product
// lines, used by cap classification when the print location is inconclusive.
var HeadwearSKUPrefixes = []string{
	"C1", "CP", "STC", "NE1", "DT6", "CT104", "LC8",
}

// Note type tags of the external schema.
const (
	NoteTypeOrder      = "Notes To Order"
	NoteTypeArt        = "Notes To Art"
	NoteTypeProduction = "Notes To Production"
)

// Fallback decoration defaults used when a design would otherwise have no
// locations.
const (
	DefaultGarmentLocation = "Left Chest"
	DefaultGarmentStitches = "8000"
	DefaultCapLocation     = "Cap Front"
	DefaultCapStitches     = "5000"
)
