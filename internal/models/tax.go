package models

// TaxRate is one row of the Caspio tax_rates table, keyed by ZIP code. The
// table is a fallback for when the WA DOR rate API is unreachable.
type TaxRate struct {
	PK_ID        int       `json:"PK_ID,omitempty"`
	ZipCode      string    `json:"ZipCode"`
	City         string    `json:"City,omitempty"`
	County       string    `json:"County,omitempty"`
	LocationCode string    `json:"LocationCode,omitempty"`
	StateRate    FlexFloat `json:"StateRate,omitempty"`
	LocalRate    FlexFloat `json:"LocalRate,omitempty"`
	CombinedRate FlexFloat `json:"CombinedRate"`
	LastUpdated  string    `json:"LastUpdated,omitempty"`
}

// TaxRateResult is the response shape of the tax lookup endpoint. Source
// records which tier of the fallback chain produced the rate.
type TaxRateResult struct {
	ZipCode      string  `json:"zipCode"`
	Rate         float64 `json:"rate"`
	LocationCode string  `json:"locationCode,omitempty"`
	Source       string  `json:"source"` // "dor", "cache", "caspio", "default"
}
