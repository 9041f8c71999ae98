package models

// PushOrder is the root document submitted to the ShopWorks order-management
// API. Field names follow the external schema exactly; every order carries at
// least one shipping address and two or three notes.
type PushOrder struct {
	ExtOrderID        string `json:"ExtOrderID"`
	ExtSource         string `json:"ExtSource"`
	DateOrderPlaced   string `json:"date_OrderPlaced,omitempty"`
	DateOrderRequestedToShip string `json:"date_OrderRequestedToShip,omitempty"`
	DateOrderDropDead string `json:"date_OrderDropDead,omitempty"`

	CustomerID            string `json:"id_Customer,omitempty"`
	ContactFirstName      string `json:"ContactFirstName"`
	ContactLastName       string `json:"ContactLastName"`
	ContactEmail          string `json:"ContactEmail,omitempty"`
	ContactPhone          string `json:"ContactPhone,omitempty"`
	CustomerPurchaseOrder string `json:"CustomerPurchaseOrder,omitempty"`
	TermsName             string `json:"TermsName,omitempty"`
	CustomerServiceRep    string `json:"CustomerServiceRep,omitempty"`
	CustomerPreference    string `json:"id_CustomerPreference,omitempty"`
	HoldOrder             string `json:"sts_Order_AutoHold,omitempty"`

	CurrencyCode  string  `json:"CurrencyCode,omitempty"`
	ShippingTotal float64 `json:"cur_Shipping"`
	DiscountTotal float64 `json:"cur_Discount"`

	LinesOE           []LineOE          `json:"LinesOE"`
	Designs           []Design          `json:"Designs"`
	ShippingAddresses []ShippingAddress `json:"ShippingAddresses"`
	Notes             []Note            `json:"Notes"`
}

// LineOE is one order-entry line: a flattened product-size combination or a
// single service/fee charge. The Custom fields are required by the external
// schema even when blank.
type LineOE struct {
	PartNumber      string `json:"PartNumber"`
	PartDescription string `json:"PartDescription"`
	PartColor       string `json:"PartColor,omitempty"`
	Size            string `json:"Size,omitempty"`
	Qty             string `json:"cn_Qty"`
	Price           string `json:"cur_UnitPriceUserEntered"`
	ProductClass    string `json:"id_ProductClass"`
	ExtDesignID     string `json:"ExtDesignID,omitempty"`
	ExtShipID       string `json:"ExtShipID,omitempty"`

	CustomField01 string `json:"CustomField01"`
	CustomField02 string `json:"CustomField02"`
	CustomField03 string `json:"CustomField03"`
	CustomField04 string `json:"CustomField04"`
	CustomField05 string `json:"CustomField05"`
	CustomField06 string `json:"CustomField06"`
	CustomField07 string `json:"CustomField07"`
	CustomField08 string `json:"CustomField08"`
	CustomField09 string `json:"CustomField09"`
	CustomField10 string `json:"CustomField10"`
	CustomField11 string `json:"CustomField11"`
	CustomField12 string `json:"CustomField12"`
}

// Design is one physical decoration location group. At most two designs ever
// exist on an order: one for garments and one for caps.
type Design struct {
	ExtDesignID  string           `json:"ExtDesignID"`
	DesignName   string           `json:"DesignName,omitempty"`
	DesignTypeID string           `json:"id_DesignType,omitempty"`
	ArtistID     string           `json:"id_Artist,omitempty"`
	Locations    []DesignLocation `json:"Locations"`
}

// DesignLocation is one decoration placement within a design.
type DesignLocation struct {
	Location    string `json:"Location"`
	StitchCount string `json:"cn_StitchCount,omitempty"`
}

// ShippingAddress is the single ship-to record required on every order. For
// pickup orders only company, method, and country are populated.
type ShippingAddress struct {
	ExtShipID   string `json:"ExtShipID"`
	ShipCompany string `json:"ShipCompany,omitempty"`
	ShipTo      string `json:"ShipTo,omitempty"`
	ShipAddress string `json:"ShipAddress01,omitempty"`
	ShipCity    string `json:"ShipCity,omitempty"`
	ShipState   string `json:"ShipState,omitempty"`
	ShipZip     string `json:"ShipZip,omitempty"`
	ShipCountry string `json:"ShipCountry"`
	ShipMethod  string `json:"ShipMethod,omitempty"`
}

// Note is one typed note on the order.
type Note struct {
	Type string `json:"cb_Type"`
	Note string `json:"Note"`
}
