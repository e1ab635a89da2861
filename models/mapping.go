package models

import (
	"github.com/volatiletech/null"
)

// PoojaItemOccasionMapping is the many-to-many join between items and
// occasions. The backend embeds the referenced records on read; creation goes
// through the two foreign identifiers instead.
type PoojaItemOccasionMapping struct {
	ID         null.Int    `json:"id"`
	PoojaItem  *PoojaItem  `json:"poojaItem"`
	Occasion   *Occasion   `json:"occasion"`
	Notes      null.String `json:"notes"`
	IsActive   null.Bool   `json:"isActive"`
	CreatedTsp null.String `json:"createdTsp"`
	UpdatedTsp null.String `json:"updatedTsp"`
	CreatedBy  null.String `json:"createdBy"`
	UpdatedBy  null.String `json:"updatedBy"`
}
