package controllers

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/EshRan/pooja-admin-ui/client"
	"github.com/EshRan/pooja-admin-ui/forms"
	"github.com/EshRan/pooja-admin-ui/models"
)

const (
	unknownItemLabel     = "Unknown Item"
	unknownOccasionLabel = "Unknown Occasion"
)

// MappingController coordinates the three collections the mappings page
// needs: the mappings themselves plus the item and occasion catalogs that
// feed the selection inputs and resolve display names.
type MappingController struct {
	mu            sync.Mutex
	mappings      *client.MappingClient
	items         *client.Resource[models.PoojaItem]
	occasions     *client.Resource[models.Occasion]
	data          []models.PoojaItemOccasionMapping
	itemList      []models.PoojaItem
	occasionList  []models.Occasion
	itemsByID     map[int]models.PoojaItem
	occasionsByID map[int]models.Occasion
	loading       bool
	confirm       Confirmer
	alert         Alerter
}

func NewMappingController(mappings *client.MappingClient, items *client.Resource[models.PoojaItem], occasions *client.Resource[models.Occasion], confirm Confirmer, alert Alerter) *MappingController {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	if alert == nil {
		alert = func(message string) { logrus.Warn(message) }
	}
	return &MappingController{
		mappings:      mappings,
		items:         items,
		occasions:     occasions,
		data:          make([]models.PoojaItemOccasionMapping, 0),
		itemList:      make([]models.PoojaItem, 0),
		occasionList:  make([]models.Occasion, 0),
		itemsByID:     make(map[int]models.PoojaItem),
		occasionsByID: make(map[int]models.Occasion),
		confirm:       confirm,
		alert:         alert,
	}
}

// Refresh loads the three collections concurrently. Each leg is allowed to
// fail on its own and degrades to an empty collection without aborting the
// others; a mapping whose catalogs failed to load still renders, with
// fallback labels.
func (c *MappingController) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	var (
		mappingRecords  []models.PoojaItemOccasionMapping
		itemRecords     []models.PoojaItem
		occasionRecords []models.Occasion
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		records, err := c.mappings.List(groupCtx)
		if err != nil {
			logrus.Errorf("failed to load mappings: %+v", err)
			return nil
		}
		mappingRecords = records
		return nil
	})
	group.Go(func() error {
		records, err := c.items.List(groupCtx)
		if err != nil {
			logrus.Errorf("failed to load items for mapping page: %+v", err)
			return nil
		}
		itemRecords = records
		return nil
	})
	group.Go(func() error {
		records, err := c.occasions.List(groupCtx)
		if err != nil {
			logrus.Errorf("failed to load occasions for mapping page: %+v", err)
			return nil
		}
		occasionRecords = records
		return nil
	})
	_ = group.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.data = mappingRecords
	if c.data == nil {
		c.data = make([]models.PoojaItemOccasionMapping, 0)
	}
	c.itemList = itemRecords
	if c.itemList == nil {
		c.itemList = make([]models.PoojaItem, 0)
	}
	c.occasionList = occasionRecords
	if c.occasionList == nil {
		c.occasionList = make([]models.Occasion, 0)
	}

	c.itemsByID = make(map[int]models.PoojaItem, len(c.itemList))
	for _, item := range c.itemList {
		if item.ID.Valid {
			c.itemsByID[item.ID.Int] = item
		}
	}
	c.occasionsByID = make(map[int]models.Occasion, len(c.occasionList))
	for _, occasion := range c.occasionList {
		if occasion.ID.Valid {
			c.occasionsByID[occasion.ID.Int] = occasion
		}
	}
}

func (c *MappingController) Mappings() []models.PoojaItemOccasionMapping {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(make([]models.PoojaItemOccasionMapping, 0, len(c.data)), c.data...)
}

// Items feeds the item selection input.
func (c *MappingController) Items() []models.PoojaItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(make([]models.PoojaItem, 0, len(c.itemList)), c.itemList...)
}

// Occasions feeds the occasion selection input.
func (c *MappingController) Occasions() []models.Occasion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(make([]models.Occasion, 0, len(c.occasionList)), c.occasionList...)
}

func (c *MappingController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// ItemLabel resolves the mapping's item reference against the loaded catalog.
func (c *MappingController) ItemLabel(mapping models.PoojaItemOccasionMapping) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if mapping.PoojaItem != nil && mapping.PoojaItem.ID.Valid {
		if item, ok := c.itemsByID[mapping.PoojaItem.ID.Int]; ok {
			return item.ItemName
		}
	}
	return unknownItemLabel
}

func (c *MappingController) OccasionLabel(mapping models.PoojaItemOccasionMapping) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if mapping.Occasion != nil && mapping.Occasion.ID.Valid {
		if occasion, ok := c.occasionsByID[mapping.Occasion.ID.Int]; ok {
			return occasion.OccasionName
		}
	}
	return unknownOccasionLabel
}

// Filter matches the query against the resolved item and occasion names.
func (c *MappingController) Filter(query string) []models.PoojaItemOccasionMapping {
	needle := strings.ToLower(strings.TrimSpace(query))
	records := c.Mappings()
	if needle == "" {
		return records
	}
	matched := make([]models.PoojaItemOccasionMapping, 0, len(records))
	for _, mapping := range records {
		itemLabel := strings.ToLower(c.ItemLabel(mapping))
		occasionLabel := strings.ToLower(c.OccasionLabel(mapping))
		if strings.Contains(itemLabel, needle) || strings.Contains(occasionLabel, needle) {
			matched = append(matched, mapping)
		}
	}
	return matched
}

// Submit creates a mapping from the two selected identifiers. Both must
// resolve to records in the already-loaded collections; a placeholder
// selection (id 0) or a stale id is rejected before any network call.
func (c *MappingController) Submit(ctx context.Context, itemID, occasionID int, notes string) error {
	errs := forms.ValidationErrors{}
	c.mu.Lock()
	if _, ok := c.itemsByID[itemID]; itemID == 0 || !ok {
		errs["poojaItemId"] = "Please select an Item"
	}
	if _, ok := c.occasionsByID[occasionID]; occasionID == 0 || !ok {
		errs["occasionId"] = "Please select an Occasion"
	}
	c.mu.Unlock()
	if len(errs) > 0 {
		return errs
	}

	if _, err := c.mappings.Create(ctx, itemID, occasionID, notes); err != nil {
		logrus.Errorf("failed to save mapping: %+v", err)
		c.alert("Failed to save record. Ensure the backend is running and valid references exist.")
		return err
	}
	c.Refresh(ctx)
	return nil
}

func (c *MappingController) Remove(ctx context.Context, id int) error {
	if !c.confirm("Are you sure you want to delete this mapping?") {
		return nil
	}
	if err := c.mappings.Delete(ctx, id); err != nil {
		if !client.IsNotFound(err) {
			logrus.Errorf("failed to delete mapping %d: %+v", id, err)
			return err
		}
	}
	c.Refresh(ctx)
	return nil
}
