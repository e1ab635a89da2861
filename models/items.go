package models

import (
	"github.com/volatiletech/null"
)

// PoojaItem is the primary inventory record. The backend assigns ID and the
// audit fields on write; the client never sends them.
type PoojaItem struct {
	ID              null.Int     `json:"id"`
	ItemCode        null.String  `json:"itemCode"`
	ItemName        string       `json:"itemName"`
	Description     null.String  `json:"description"`
	TotalQuantity   null.Int     `json:"totalQuantity"`
	Price           null.Float32 `json:"price"`
	QuantityUnit    null.String  `json:"quantityUnit"`
	IsInStock       null.Bool    `json:"isInStock"`
	StockInQuantity null.Int     `json:"stockInQuantity"`
	CreatedTsp      null.String  `json:"createdTsp"`
	UpdatedTsp      null.String  `json:"updatedTsp"`
	CreatedBy       null.String  `json:"createdBy"`
	UpdatedBy       null.String  `json:"updatedBy"`
}
