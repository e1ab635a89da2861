package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/EshRan/pooja-admin-ui/models"
)

// MappingClient covers the item-occasion join. Creation goes through query
// parameters carrying the two foreign identifiers rather than a JSON body.
type MappingClient struct {
	c *Client
}

func Mappings(c *Client) *MappingClient {
	return &MappingClient{c: c}
}

func (m *MappingClient) List(ctx context.Context) ([]models.PoojaItemOccasionMapping, error) {
	mappings := make([]models.PoojaItemOccasionMapping, 0)
	if err := m.c.do(ctx, http.MethodGet, "/api/mappings", nil, nil, "", &mappings); err != nil {
		return nil, errors.Wrap(err, "failed to list mappings")
	}
	return mappings, nil
}

func (m *MappingClient) Create(ctx context.Context, itemID, occasionID int, notes string) (models.PoojaItemOccasionMapping, error) {
	query := url.Values{}
	query.Set("itemId", strconv.Itoa(itemID))
	query.Set("occasionId", strconv.Itoa(occasionID))
	if notes != "" {
		query.Set("notes", notes)
	}

	var mapping models.PoojaItemOccasionMapping
	if err := m.c.do(ctx, http.MethodPost, "/api/mappings", query, nil, "", &mapping); err != nil {
		return mapping, errors.Wrapf(err, "failed to map item %d to occasion %d", itemID, occasionID)
	}
	return mapping, nil
}

func (m *MappingClient) Delete(ctx context.Context, id int) error {
	if err := m.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/mappings/%d", id), nil, nil, "", nil); err != nil {
		return errors.Wrapf(err, "failed to delete mapping %d", id)
	}
	return nil
}
