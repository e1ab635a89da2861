package client

import (
	"github.com/EshRan/pooja-admin-ui/models"
)

// Items never carry an image; the other three catalogs do.

func Items(c *Client) *Resource[models.PoojaItem] {
	return NewResource[models.PoojaItem](c, "item", "/api/items", false)
}

func Nuts(c *Client) *Resource[models.Nut] {
	return NewResource[models.Nut](c, "nut", "/api/nuts", true)
}

func Occasions(c *Client) *Resource[models.Occasion] {
	return NewResource[models.Occasion](c, "occasion", "/api/occasions", true)
}

func Banners(c *Client) *Resource[models.Banner] {
	return NewResource[models.Banner](c, "banner", "/api/banners", true)
}
