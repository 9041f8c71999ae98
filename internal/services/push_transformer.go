package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/config"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/models"
	"github.com/ErikM1974/caspio-pricing-proxy-sub004/internal/sizing"
)

// PushTransformer converts a persisted quote (session header + line items)
// into a ShopWorks push-order document. The transformation is pure and
// deterministic: identical inputs always produce an identical payload, so a
// push can be retried safely and deduplicated downstream by ExtOrderID.
type PushTransformer struct {
	defaults config.ShopWorksDefaults
}

// NewPushTransformer creates a transformer using the given push defaults.
func NewPushTransformer(defaults config.ShopWorksDefaults) *PushTransformer {
	return &PushTransformer{defaults: defaults}
}

// TransformOptions tweaks a single transformation.
type TransformOptions struct {
	// IsTest prefixes the external order ID with TEST- so test submissions
	// are filterable on the receiving system.
	IsTest bool
}

// sizeBreakdownMetaKeys are the non-size keys a SizeBreakdown map may carry;
// size expansion must skip them.
var sizeBreakdownMetaKeys = map[string]bool{
	"type":         true,
	"serviceType":  true,
	"logoPosition": true,
	"stitchCount":  true,
}

// TransformQuoteToOrder builds the ShopWorks order for one quote. Malformed
// optional fields (bad JSON, stringly numbers) degrade to defaults and never
// fail the call; the session is only required to carry a QuoteID.
func (t *PushTransformer) TransformQuoteToOrder(session models.QuoteSession, items []models.QuoteItem, opts TransformOptions) *models.PushOrder {
	extOrderID := session.QuoteID
	if opts.IsTest {
		extOrderID = "TEST-" + extOrderID
	}

	firstName, lastName := SplitName(session.CustomerName)
	shippingTotal, discountTotal := t.orderLevelFees(items)

	links := t.resolveDesignLinks(session, items)

	lines, skippedFees := t.buildLines(items, links)
	designs := t.buildDesigns(session, items, links)
	notes := t.buildNotes(session, items, skippedFees)

	order := &models.PushOrder{
		ExtOrderID:               extOrderID,
		ExtSource:                t.defaults.ExtSource,
		DateOrderPlaced:          session.DateOrderPlaced,
		DateOrderRequestedToShip: session.ReqShipDate,
		DateOrderDropDead:        session.DropDeadDate,

		CustomerID:            session.CustomerNumber,
		ContactFirstName:      firstName,
		ContactLastName:       lastName,
		ContactEmail:          session.CustomerEmail,
		ContactPhone:          session.Phone,
		CustomerPurchaseOrder: session.PurchaseOrderNumber,
		TermsName:             firstNonEmpty(session.PaymentTerms, t.defaults.TermsName),
		CustomerServiceRep:    session.SalesRepEmail,
		CustomerPreference:    t.defaults.CustomerPreference,
		HoldOrder:             t.defaults.AutoHold,

		CurrencyCode:  t.defaults.CurrencyCode,
		ShippingTotal: shippingTotal,
		DiscountTotal: discountTotal,

		LinesOE:           lines,
		Designs:           designs,
		ShippingAddresses: []models.ShippingAddress{t.buildShippingAddress(session)},
		Notes:             notes,
	}
	return order
}

// SplitName splits a full name on its last space: everything before it is the
// first name, everything after it the last name. Multi-word first names and
// hyphenated or multi-word surnames both survive this; a name with no space
// becomes first name only.
func SplitName(fullName string) (firstName, lastName string) {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "", ""
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return name, ""
	}
	return strings.TrimSpace(name[:idx]), strings.TrimSpace(name[idx+1:])
}

// orderLevelFees accumulates SHIP and DISCOUNT fee items into order header
// totals. Discounts are stored negative on the quote but the external schema
// wants a positive magnitude, so the sign flips.
func (t *PushTransformer) orderLevelFees(items []models.QuoteItem) (shippingTotal, discountTotal float64) {
	for _, item := range items {
		if item.EmbellishmentType != models.EmbellishmentFee {
			continue
		}
		switch partNumber(item) {
		case config.FeeCodeShipping:
			shippingTotal += item.LineTotal.Float64()
		case config.FeeCodeDiscount:
			discountTotal += -item.LineTotal.Float64()
		}
	}
	return shippingTotal, discountTotal
}

// designLinks carries the resolved design identifiers for one transformation.
type designLinks struct {
	garmentID     string
	capID         string
	garmentExists bool
	capExists     bool
}

// linkFor picks the design ID for a line, honoring the "link to whichever
// design exists" fallback used by customer-supplied lines.
func (l designLinks) linkFor(cap bool, withFallback bool) string {
	if cap {
		if withFallback && !l.capExists && l.garmentExists {
			return l.garmentID
		}
		return l.capID
	}
	if withFallback && !l.garmentExists && l.capExists {
		return l.capID
	}
	return l.garmentID
}

// resolveDesignLinks decides which designs this order will carry and under
// which external IDs. The cap design also materializes when any line item is
// cap-classified even without a session cap design number.
func (t *PushTransformer) resolveDesignLinks(session models.QuoteSession, items []models.QuoteItem) designLinks {
	links := designLinks{
		garmentID:     firstNonEmpty(session.GarmentDesignNumber, "1"),
		capID:         firstNonEmpty(session.CapDesignNumber, "2"),
		garmentExists: session.GarmentDesignNumber != "",
		capExists:     session.CapDesignNumber != "",
	}
	if !links.capExists {
		for _, item := range items {
			if t.isCapLinked(item) {
				links.capExists = true
				break
			}
		}
	}
	return links
}

// isCapLinked reports whether a line item bills against the cap design,
// applying the per-type routing rules.
func (t *PushTransformer) isCapLinked(item models.QuoteItem) bool {
	switch item.EmbellishmentType {
	case models.EmbellishmentEmbroidery:
		return IsCapItem(item)
	case models.EmbellishmentAdditionalLogo:
		return config.CapServiceParts[partNumber(item)]
	case models.EmbellishmentCustomerSupplied:
		return strings.HasPrefix(partNumber(item), "DECC")
	}
	return false
}

// buildLines walks the quote items in order and emits the LinesOE array plus
// the human-readable descriptions of fees that were diverted to notes.
func (t *PushTransformer) buildLines(items []models.QuoteItem, links designLinks) ([]models.LineOE, []string) {
	lines := make([]models.LineOE, 0, len(items))
	var skippedFees []string
	customerSuppliedParts := map[string]bool{}

	for _, item := range items {
		switch item.EmbellishmentType {
		case models.EmbellishmentEmbroidery:
			lines = append(lines, t.expandEmbroideryItem(item, links)...)

		case models.EmbellishmentAdditionalLogo:
			designID := links.linkFor(config.CapServiceParts[partNumber(item)], false)
			lines = append(lines, t.serviceLine(item, designID))

		case models.EmbellishmentCustomerSupplied:
			part := partNumber(item)
			customerSuppliedParts[part] = true
			designID := links.linkFor(strings.HasPrefix(part, "DECC"), true)
			lines = append(lines, t.serviceLine(item, designID))

		case models.EmbellishmentFee:
			part := partNumber(item)
			if part == config.FeeCodeShipping || part == config.FeeCodeDiscount {
				// Consumed into the order header totals.
				continue
			}
			if customerSuppliedParts[part] {
				// Already billed as a customer-supplied line; a duplicate fee
				// row must not double-charge it.
				continue
			}
			if !config.KnownFeeCodes[part] {
				skippedFees = append(skippedFees, describeFee(item))
				continue
			}
			lines = append(lines, t.serviceLine(item, ""))
		}
	}
	return lines, skippedFees
}

// expandEmbroideryItem flattens a size-quantity breakdown into one line per
// size. An unparsable or empty breakdown falls back to one OSFA line so a
// genuinely sizeless product still reaches the order.
func (t *PushTransformer) expandEmbroideryItem(item models.QuoteItem, links designLinks) []models.LineOE {
	designID := links.linkFor(IsCapItem(item), false)

	var lines []models.LineOE
	for _, entry := range models.DecodeSizeBreakdown(item.SizeBreakdown) {
		if sizeBreakdownMetaKeys[entry.Label] {
			continue
		}
		qty := models.DecodeQuantity(entry.Raw)
		if qty <= 0 {
			continue
		}
		size, err := sizing.TranslateSize(entry.Label)
		if err != nil {
			size = entry.Label
		}
		lines = append(lines, t.productLine(item, size, qty, designID))
	}

	if len(lines) == 0 {
		return []models.LineOE{t.productLine(item, "OSFA", item.Quantity.Or(1), designID)}
	}
	return lines
}

// productLine builds one flattened product-size line.
func (t *PushTransformer) productLine(item models.QuoteItem, size string, qty float64, designID string) models.LineOE {
	return models.LineOE{
		PartNumber:      sizing.GetPartNumber(item.StyleNumber, size),
		PartDescription: firstNonEmpty(item.ProductName, item.StyleNumber),
		PartColor:       item.Color,
		Size:            size,
		Qty:             formatQty(qty),
		Price:           formatPrice(item.FinalUnitPrice.Float64()),
		ProductClass:    t.defaults.ProductClass,
		ExtDesignID:     designID,
		ExtShipID:       "1",
	}
}

// serviceLine builds one service or fee line. Fees carry no design link.
func (t *PushTransformer) serviceLine(item models.QuoteItem, designID string) models.LineOE {
	return models.LineOE{
		PartNumber:      partNumber(item),
		PartDescription: firstNonEmpty(item.ProductName, partNumber(item)),
		Qty:             formatQty(item.Quantity.Or(1)),
		Price:           formatPrice(item.FinalUnitPrice.Float64()),
		ProductClass:    t.defaults.ServiceClass,
		ExtDesignID:     designID,
		ExtShipID:       "1",
	}
}

// buildDesigns emits at most two designs. Logo placements come from the first
// embroidery item carrying LogoSpecs; all embroidery items of a quote share
// one logo specification, so later items are not re-checked. Every emitted
// design gets at least one location, synthesized from session fallbacks when
// the logo specs contributed none.
func (t *PushTransformer) buildDesigns(session models.QuoteSession, items []models.QuoteItem, links designLinks) []models.Design {
	var garmentLocations, capLocations []models.DesignLocation
	for _, spec := range firstLogoSpecs(items) {
		loc := models.DesignLocation{
			Location:    spec.Position,
			StitchCount: formatQty(spec.StitchCount.Float64()),
		}
		pos := strings.ToLower(spec.Position)
		if strings.Contains(pos, "cap") || strings.Contains(pos, "hat") {
			capLocations = append(capLocations, loc)
		} else {
			garmentLocations = append(garmentLocations, loc)
		}
	}

	designs := make([]models.Design, 0, 2)
	if links.garmentExists {
		if len(garmentLocations) == 0 {
			garmentLocations = []models.DesignLocation{{
				Location:    firstNonEmpty(session.GarmentPrintLocation, config.DefaultGarmentLocation),
				StitchCount: firstNonEmpty(session.GarmentStitchCount, config.DefaultGarmentStitches),
			}}
		}
		designs = append(designs, models.Design{
			ExtDesignID:  links.garmentID,
			DesignName:   "Garment Embroidery",
			DesignTypeID: t.defaults.DesignTypeID,
			ArtistID:     t.defaults.ArtistID,
			Locations:    garmentLocations,
		})
	}
	if links.capExists {
		if len(capLocations) == 0 {
			capLocations = []models.DesignLocation{{
				Location:    firstNonEmpty(session.CapPrintLocation, config.DefaultCapLocation),
				StitchCount: firstNonEmpty(session.CapStitchCount, config.DefaultCapStitches),
			}}
		}
		designs = append(designs, models.Design{
			ExtDesignID:  links.capID,
			DesignName:   "Cap Embroidery",
			DesignTypeID: t.defaults.DesignTypeID,
			ArtistID:     t.defaults.ArtistID,
			Locations:    capLocations,
		})
	}
	return designs
}

// buildNotes assembles the order/art/production notes. The art note is
// omitted entirely when no art content exists; the other two always ship.
func (t *PushTransformer) buildNotes(session models.QuoteSession, items []models.QuoteItem, skippedFees []string) []models.Note {
	var orderParts []string
	if session.OrderNotes != "" {
		orderParts = append(orderParts, session.OrderNotes)
	}
	orderParts = append(orderParts, models.DecodeStringListOrWrap(session.ImportNotes)...)
	if session.PurchaseOrderNumber != "" {
		orderParts = append(orderParts, "PO: "+session.PurchaseOrderNumber)
	}
	orderParts = append(orderParts, "Quote: "+session.QuoteID)
	if session.Carrier != "" {
		orderParts = append(orderParts, "Carrier: "+session.Carrier)
	}
	if session.Tracking != "" {
		orderParts = append(orderParts, "Tracking: "+session.Tracking)
	}
	if len(skippedFees) > 0 {
		orderParts = append(orderParts, "Unbilled fees, verify before invoicing:")
		orderParts = append(orderParts, skippedFees...)
	}

	var artParts []string
	if session.GarmentDesignNumber != "" {
		artParts = append(artParts, "Garment design: "+session.GarmentDesignNumber)
	}
	if session.CapDesignNumber != "" {
		artParts = append(artParts, "Cap design: "+session.CapDesignNumber)
	}
	if session.DigitizingCodes != "" {
		artParts = append(artParts, "Digitizing: "+session.DigitizingCodes)
	}
	for i, spec := range firstLogoSpecs(items) {
		artParts = append(artParts, fmt.Sprintf("Logo %d: %s, %s stitches", i+1, spec.Position, formatQty(spec.StitchCount.Float64())))
	}
	if extra := models.DecodeStringListOrWrap(session.DesignNumbers); len(extra) > 0 {
		artParts = append(artParts, "Design numbers: "+strings.Join(extra, ", "))
	}

	prodParts := []string{"Quote: " + session.QuoteID}
	if session.PricingTier != "" {
		prodParts = append(prodParts, "Pricing tier: "+session.PricingTier)
	}
	prodParts = append(prodParts, "Total quantity: "+formatQty(totalQuantity(session, items)))

	notes := []models.Note{{Type: config.NoteTypeOrder, Note: strings.Join(orderParts, "\n")}}
	if len(artParts) > 0 {
		notes = append(notes, models.Note{Type: config.NoteTypeArt, Note: strings.Join(artParts, "\n")})
	}
	notes = append(notes, models.Note{Type: config.NoteTypeProduction, Note: strings.Join(prodParts, "\n")})
	return notes
}

// buildShippingAddress emits the single required ship-to record. An order
// with no street address and no city is a will-call pickup; the external
// schema still wants an address record for it.
func (t *PushTransformer) buildShippingAddress(session models.QuoteSession) models.ShippingAddress {
	company := firstNonEmpty(session.ShipCompany, session.CompanyName, session.CustomerName)
	if session.ShipAddress == "" && session.ShipCity == "" {
		return models.ShippingAddress{
			ExtShipID:   "1",
			ShipCompany: company,
			ShipMethod:  t.defaults.ShipMethodPickup,
			ShipCountry: t.defaults.ShipCountry,
		}
	}
	return models.ShippingAddress{
		ExtShipID:   "1",
		ShipCompany: company,
		ShipTo:      firstNonEmpty(session.ShipTo, session.CustomerName),
		ShipAddress: session.ShipAddress,
		ShipCity:    session.ShipCity,
		ShipState:   session.ShipState,
		ShipZip:     session.ShipZip,
		ShipMethod:  firstNonEmpty(session.ShipMethod, "UPS Ground"),
		ShipCountry: t.defaults.ShipCountry,
	}
}

// IsCapItem classifies a quote item as cap-type when its print location names
// a cap or hat, or its style number matches a known headwear product line.
func IsCapItem(item models.QuoteItem) bool {
	loc := strings.ToLower(item.PrintLocation)
	if strings.Contains(loc, "cap") || strings.Contains(loc, "hat") {
		return true
	}
	style := strings.ToUpper(strings.TrimSpace(item.StyleNumber))
	for _, prefix := range config.HeadwearSKUPrefixes {
		if strings.HasPrefix(style, prefix) {
			return true
		}
	}
	if nameSuggestsCap(item.ProductName) {
		// Flat knit headwear is billed at garment pricing, so a cap-sounding
		// product name without a cap print location or headwear SKU stays
		// garment-linked.
		return false
	}
	return false
}

// nameSuggestsCap checks product-name keywords, guarding against the
// "capsule" and "escape" false positives.
func nameSuggestsCap(productName string) bool {
	name := strings.ToLower(productName)
	if strings.Contains(name, "capsule") || strings.Contains(name, "escape") {
		return false
	}
	for _, kw := range []string{"cap", "hat", "beanie", "visor", "snapback"} {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// firstLogoSpecs returns the decoded LogoSpecs of the first embroidery item
// that carries any.
func firstLogoSpecs(items []models.QuoteItem) []models.LogoSpec {
	for _, item := range items {
		if item.EmbellishmentType != models.EmbellishmentEmbroidery {
			continue
		}
		if specs := models.DecodeLogoSpecsOrEmpty(item.LogoSpecs); len(specs) > 0 {
			return specs
		}
	}
	return nil
}

// totalQuantity prefers the session's own total and falls back to summing
// product item quantities.
func totalQuantity(session models.QuoteSession, items []models.QuoteItem) float64 {
	if session.TotalQuantity > 0 {
		return session.TotalQuantity.Float64()
	}
	var total float64
	for _, item := range items {
		if item.EmbellishmentType == models.EmbellishmentFee {
			continue
		}
		total += item.Quantity.Float64()
	}
	return total
}

// partNumber is the canonical uppercase part number of an item.
func partNumber(item models.QuoteItem) string {
	return strings.ToUpper(strings.TrimSpace(item.StyleNumber))
}

// describeFee renders a skipped fee for the order note.
func describeFee(item models.QuoteItem) string {
	desc := firstNonEmpty(item.ProductName, partNumber(item))
	return fmt.Sprintf("%s ($%s)", desc, formatPrice(item.LineTotal.Float64()))
}

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
