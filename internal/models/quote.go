package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// EmbellishmentType discriminates the kinds of quote line items.
type EmbellishmentType string

const (
	EmbellishmentEmbroidery       EmbellishmentType = "embroidery"
	EmbellishmentAdditionalLogo   EmbellishmentType = "embroidery-additional"
	EmbellishmentCustomerSupplied EmbellishmentType = "customer-supplied"
	EmbellishmentFee              EmbellishmentType = "fee"
)

// QuoteSession is the header record for one customer quote as stored in the
// Caspio quote_sessions table. All fields except QuoteID are optional; the
// upstream store does not enforce types, so numeric-ish fields arrive as
// strings often enough that they are kept as strings here.
type QuoteSession struct {
	PK_ID          int    `json:"PK_ID,omitempty"`
	QuoteID        string `json:"QuoteID"`
	SessionID      string `json:"SessionID,omitempty"`
	CustomerNumber string `json:"CustomerNumber,omitempty"`
	CustomerName   string `json:"CustomerName,omitempty"`
	CustomerEmail  string `json:"CustomerEmail,omitempty"`
	CompanyName    string `json:"CompanyName,omitempty"`
	Phone          string `json:"Phone,omitempty"`

	DateOrderPlaced string `json:"DateOrderPlaced,omitempty"`
	ReqShipDate     string `json:"ReqShipDate,omitempty"`
	DropDeadDate    string `json:"DropDeadDate,omitempty"`

	PaymentTerms        string `json:"PaymentTerms,omitempty"`
	PurchaseOrderNumber string `json:"PurchaseOrderNumber,omitempty"`
	SalesRepEmail       string `json:"SalesRepEmail,omitempty"`
	PricingTier         string `json:"PricingTier,omitempty"`

	ShipCompany string `json:"ShipCompany,omitempty"`
	ShipTo      string `json:"ShipTo,omitempty"`
	ShipAddress string `json:"ShipAddress,omitempty"`
	ShipCity    string `json:"ShipCity,omitempty"`
	ShipState   string `json:"ShipState,omitempty"`
	ShipZip     string `json:"ShipZip,omitempty"`
	ShipMethod  string `json:"ShipMethod,omitempty"`
	Carrier     string `json:"Carrier,omitempty"`
	Tracking    string `json:"Tracking,omitempty"`

	OrderNotes      string `json:"OrderNotes,omitempty"`
	ImportNotes     string `json:"ImportNotes,omitempty"`  // JSON array or plain string
	DigitizingCodes string `json:"DigitizingCodes,omitempty"`
	DesignNumbers   string `json:"DesignNumbers,omitempty"` // JSON array

	GarmentDesignNumber string `json:"GarmentDesignNumber,omitempty"`
	CapDesignNumber     string `json:"CapDesignNumber,omitempty"`

	GarmentPrintLocation string `json:"GarmentPrintLocation,omitempty"`
	GarmentStitchCount   string `json:"GarmentStitchCount,omitempty"`
	CapPrintLocation     string `json:"CapPrintLocation,omitempty"`
	CapStitchCount       string `json:"CapStitchCount,omitempty"`

	TotalQuantity FlexFloat `json:"TotalQuantity,omitempty"`
	SubtotalAmount FlexFloat `json:"SubtotalAmount,omitempty"`
	TotalAmount    FlexFloat `json:"TotalAmount,omitempty"`
	Status         string    `json:"Status,omitempty"`
}

// QuoteItem is one product, service, or fee line within a quote.
type QuoteItem struct {
	PK_ID             int               `json:"PK_ID,omitempty"`
	QuoteID           string            `json:"QuoteID"`
	LineNumber        FlexFloat         `json:"LineNumber,omitempty"`
	EmbellishmentType EmbellishmentType `json:"EmbellishmentType"`

	StyleNumber   string `json:"StyleNumber,omitempty"`
	ProductName   string `json:"ProductName,omitempty"`
	Color         string `json:"Color,omitempty"`
	ColorCode     string `json:"ColorCode,omitempty"`
	PrintLocation string `json:"PrintLocation,omitempty"`

	// SizeBreakdown is a JSON-encoded map of size label -> quantity, possibly
	// carrying the non-size metadata keys type/serviceType/logoPosition/
	// stitchCount that size expansion must skip.
	SizeBreakdown string `json:"SizeBreakdown,omitempty"`

	// LogoSpecs is a JSON-encoded array of {pos, stitch} placements, present
	// on at least the first embroidery item of a quote.
	LogoSpecs string `json:"LogoSpecs,omitempty"`

	Quantity       FlexFloat `json:"Quantity,omitempty"`
	FinalUnitPrice FlexFloat `json:"FinalUnitPrice,omitempty"`
	LineTotal      FlexFloat `json:"LineTotal,omitempty"`
}

// LogoSpec is one decoded logo placement from a QuoteItem's LogoSpecs field.
type LogoSpec struct {
	Position    string    `json:"pos"`
	StitchCount FlexFloat `json:"stitch"`
}

// FlexFloat is a float64 that also accepts JSON strings ("12", "12.5"), null,
// and the empty string. Anything unparseable decodes to zero rather than
// failing the surrounding record.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// Or returns the value, or def when the value is zero. Used where zero is
// meaningless (quantities default to 1, not 0).
func (f FlexFloat) Or(def float64) float64 {
	if f == 0 {
		return def
	}
	return float64(f)
}
