package models

import (
	"github.com/volatiletech/null"
)

// Banner is a promotional asset shown on the storefront.
type Banner struct {
	ID          null.Int    `json:"id"`
	BannerName  string      `json:"bannerName"`
	BannerType  null.String `json:"bannerType"`
	Description null.String `json:"description"`
	S3ImageKey  null.String `json:"s3ImageKey"`
	CreatedTsp  null.String `json:"createdTsp"`
	UpdatedTsp  null.String `json:"updatedTsp"`
	CreatedBy   null.String `json:"createdBy"`
	UpdatedBy   null.String `json:"updatedBy"`
}
