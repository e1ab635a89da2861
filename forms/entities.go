package forms

import (
	"strconv"

	"github.com/volatiletech/null"

	"github.com/EshRan/pooja-admin-ui/models"
)

func catalogFields() []Field {
	return []Field{
		{Name: "itemCode", Label: "Code", Kind: Text},
		{Name: "itemName", Label: "Name", Kind: Text, Required: true},
		{Name: "description", Label: "Description", Kind: Text},
		{Name: "totalQuantity", Label: "Total quantity", Kind: Number, Min: 0, HasMin: true, Default: "0"},
		{Name: "price", Label: "Price", Kind: Number, Min: 0, HasMin: true, Default: "0"},
		{Name: "quantityUnit", Label: "Quantity unit", Kind: Text},
		{Name: "isInStock", Label: "In stock", Kind: Flag, Default: "true"},
		{Name: "stockInQuantity", Label: "Stock-in quantity", Kind: Number, Min: 0, HasMin: true, Default: "0"},
	}
}

func Item() Schema {
	return Schema{
		Fields:        catalogFields(),
		DisplayFields: []string{"itemName", "itemCode"},
	}
}

func Nut() Schema {
	fields := append(catalogFields(), Field{Name: "s3ImageKey", Label: "Image key", Kind: Text, OverrideOnly: true})
	return Schema{
		Fields:        fields,
		HasAttachment: true,
		DisplayFields: []string{"itemName", "itemCode"},
	}
}

func Occasion() Schema {
	return Schema{
		Fields: []Field{
			{Name: "occasionCode", Label: "Code", Kind: Text},
			{Name: "occasionName", Label: "Name", Kind: Text, Required: true},
			{Name: "description", Label: "Description", Kind: Text},
			{Name: "s3ImageKey", Label: "Image key", Kind: Text, OverrideOnly: true},
			{Name: "category", Label: "Category", Kind: Text, OneOf: []string{string(models.CategoryFestive), string(models.CategoryMarriage)}},
			{Name: "isActive", Label: "Active", Kind: Flag, Default: "true"},
		},
		HasAttachment: true,
		DisplayFields: []string{"occasionName", "occasionCode"},
	}
}

func Banner() Schema {
	return Schema{
		Fields: []Field{
			{Name: "bannerName", Label: "Name", Kind: Text, Required: true},
			{Name: "bannerType", Label: "Type", Kind: Text},
			{Name: "description", Label: "Description", Kind: Text},
			{Name: "s3ImageKey", Label: "Image key", Kind: Text, OverrideOnly: true},
		},
		HasAttachment: true,
		DisplayFields: []string{"bannerName", "bannerType"},
	}
}

// The XxxValues helpers pre-populate an edit buffer from a fetched record.
// Override-only fields are intentionally left out so an untouched image key
// means "keep the existing image".

func ItemValues(item models.PoojaItem) map[string]string {
	return map[string]string{
		"itemCode":        item.ItemCode.String,
		"itemName":        item.ItemName,
		"description":     item.Description.String,
		"totalQuantity":   nullIntString(item.TotalQuantity),
		"price":           nullFloatString(item.Price),
		"quantityUnit":    item.QuantityUnit.String,
		"isInStock":       nullBoolString(item.IsInStock),
		"stockInQuantity": nullIntString(item.StockInQuantity),
	}
}

func NutValues(nut models.Nut) map[string]string {
	return map[string]string{
		"itemCode":        nut.ItemCode.String,
		"itemName":        nut.ItemName,
		"description":     nut.Description.String,
		"totalQuantity":   nullIntString(nut.TotalQuantity),
		"price":           nullFloatString(nut.Price),
		"quantityUnit":    nut.QuantityUnit.String,
		"isInStock":       nullBoolString(nut.IsInStock),
		"stockInQuantity": nullIntString(nut.StockInQuantity),
	}
}

func OccasionValues(occasion models.Occasion) map[string]string {
	return map[string]string{
		"occasionCode": occasion.OccasionCode.String,
		"occasionName": occasion.OccasionName,
		"description":  occasion.Description.String,
		"category":     occasion.Category.String,
		"isActive":     nullBoolString(occasion.IsActive),
	}
}

func BannerValues(banner models.Banner) map[string]string {
	return map[string]string{
		"bannerName":  banner.BannerName,
		"bannerType":  banner.BannerType.String,
		"description": banner.Description.String,
	}
}

func nullIntString(value null.Int) string {
	if !value.Valid {
		return ""
	}
	return strconv.Itoa(value.Int)
}

func nullFloatString(value null.Float32) string {
	if !value.Valid {
		return ""
	}
	return strconv.FormatFloat(float64(value.Float32), 'f', -1, 32)
}

func nullBoolString(value null.Bool) string {
	if !value.Valid {
		return ""
	}
	return strconv.FormatBool(value.Bool)
}
