package models

// Product is one row of the Caspio non_sanmar_products table: goods sourced
// outside the primary catalog vendor, maintained by hand through the proxy's
// CRUD endpoints.
type Product struct {
	PK_ID        int       `json:"PK_ID,omitempty"`
	StyleNumber  string    `json:"StyleNumber"`
	ProductName  string    `json:"ProductName,omitempty"`
	Brand        string    `json:"Brand,omitempty"`
	Category     string    `json:"Category,omitempty"`
	Color        string    `json:"Color,omitempty"`
	SizeRange    string    `json:"SizeRange,omitempty"`
	CasePrice    FlexFloat `json:"CasePrice,omitempty"`
	PiecePrice   FlexFloat `json:"PiecePrice,omitempty"`
	Vendor       string    `json:"Vendor,omitempty"`
	Discontinued bool      `json:"Discontinued,omitempty"`
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	StyleNumber  string    `json:"StyleNumber" binding:"required"`
	ProductName  string    `json:"ProductName,omitempty"`
	Brand        string    `json:"Brand,omitempty"`
	Category     string    `json:"Category,omitempty"`
	Color        string    `json:"Color,omitempty"`
	SizeRange    string    `json:"SizeRange,omitempty"`
	CasePrice    FlexFloat `json:"CasePrice,omitempty"`
	PiecePrice   FlexFloat `json:"PiecePrice,omitempty"`
	Vendor       string    `json:"Vendor,omitempty"`
	Discontinued bool      `json:"Discontinued,omitempty"`
}
