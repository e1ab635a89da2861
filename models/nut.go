package models

import (
	"github.com/volatiletech/null"
)

// Nut mirrors PoojaItem with an additional image key. S3ImageKey is an
// override field: an empty value on submit means "keep the stored image".
type Nut struct {
	ID              null.Int     `json:"id"`
	ItemCode        null.String  `json:"itemCode"`
	ItemName        string       `json:"itemName"`
	Description     null.String  `json:"description"`
	TotalQuantity   null.Int     `json:"totalQuantity"`
	Price           null.Float32 `json:"price"`
	S3ImageKey      null.String  `json:"s3ImageKey"`
	QuantityUnit    null.String  `json:"quantityUnit"`
	IsInStock       null.Bool    `json:"isInStock"`
	StockInQuantity null.Int     `json:"stockInQuantity"`
	CreatedTsp      null.String  `json:"createdTsp"`
	UpdatedTsp      null.String  `json:"updatedTsp"`
	CreatedBy       null.String  `json:"createdBy"`
	UpdatedBy       null.String  `json:"updatedBy"`
}
