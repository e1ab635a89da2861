package models

import (
	"github.com/volatiletech/null"
)

type OccasionCategory string

const (
	CategoryFestive  OccasionCategory = "FESTIVE"
	CategoryMarriage OccasionCategory = "MARRIAGE"
)

type Occasion struct {
	ID           null.Int    `json:"id"`
	OccasionCode null.String `json:"occasionCode"`
	OccasionName string      `json:"occasionName"`
	Description  null.String `json:"description"`
	S3ImageKey   null.String `json:"s3ImageKey"`
	Category     null.String `json:"category"`
	IsActive     null.Bool   `json:"isActive"`
	CreatedTsp   null.String `json:"createdTsp"`
	UpdatedTsp   null.String `json:"updatedTsp"`
	CreatedBy    null.String `json:"createdBy"`
	UpdatedBy    null.String `json:"updatedBy"`
}
