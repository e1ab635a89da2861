// Package controllers holds the list/edit orchestration behind each admin
// page: one generic list controller per catalog plus a specialized resolver
// for the item-occasion mappings.
package controllers

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/EshRan/pooja-admin-ui/client"
	"github.com/EshRan/pooja-admin-ui/forms"
)

// Confirmer asks the user before a destructive action.
type Confirmer func(prompt string) bool

// Alerter surfaces a blocking save failure to the user.
type Alerter func(message string)

// ListController owns the in-memory collection for one entity type together
// with its edit session. Writes never patch the collection in place; every
// successful mutation triggers a full re-fetch so the table can not drift
// from the backend.
type ListController[T any] struct {
	mu         sync.Mutex
	res        *client.Resource[T]
	schema     forms.Schema
	searchText func(T) []string
	session    EditSession
	items      []T
	loading    bool
	lastErr    error
	confirm    Confirmer
	alert      Alerter
}

func NewListController[T any](res *client.Resource[T], schema forms.Schema, searchText func(T) []string, confirm Confirmer, alert Alerter) *ListController[T] {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	if alert == nil {
		alert = func(message string) { logrus.Warn(message) }
	}
	if searchText == nil {
		searchText = func(T) []string { return nil }
	}
	return &ListController[T]{
		res:        res,
		schema:     schema,
		searchText: searchText,
		items:      make([]T, 0),
		confirm:    confirm,
		alert:      alert,
	}
}

// Refresh replaces the collection with a fresh full fetch. A failed fetch
// degrades to an empty table; the error only reaches the log and LastError.
func (c *ListController[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	records, err := c.res.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		logrus.Errorf("failed to load %s list: %+v", c.res.Name(), err)
		c.lastErr = err
		c.items = make([]T, 0)
		return
	}
	c.lastErr = nil
	c.items = records
}

func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(make([]T, 0, len(c.items)), c.items...)
}

func (c *ListController[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// LastError reports the most recent list-fetch failure for diagnostics. The
// table itself shows zero records instead of an error banner.
func (c *ListController[T]) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Filter returns the records whose display fields contain the query,
// ignoring case. It never mutates the stored collection.
func (c *ListController[T]) Filter(query string) []T {
	needle := strings.ToLower(strings.TrimSpace(query))
	records := c.Items()
	if needle == "" {
		return records
	}
	matched := make([]T, 0, len(records))
	for _, record := range records {
		for _, text := range c.searchText(record) {
			if strings.Contains(strings.ToLower(text), needle) {
				matched = append(matched, record)
				break
			}
		}
	}
	return matched
}

func (c *ListController[T]) Session() *EditSession {
	return &c.session
}

func (c *ListController[T]) OpenForCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.OpenForCreate(c.schema.Defaults())
}

func (c *ListController[T]) OpenForEdit(id int, values map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.OpenForEdit(id, values)
}

// Submit validates the session buffer and routes it to create or update,
// depending on whether a record is under edit. On success the session closes
// and the list re-fetches; on failure the session stays open for a retry.
func (c *ListController[T]) Submit(ctx context.Context) error {
	c.mu.Lock()
	values := c.session.Values()
	attachment := c.session.Attachment()
	editingID, editing := c.session.EditingID()
	c.mu.Unlock()

	if errs := c.schema.Validate(values); errs != nil {
		return errs
	}
	payload := c.schema.Payload(values)

	var err error
	if editing {
		_, err = c.res.Update(ctx, editingID, payload, attachment)
	} else {
		_, err = c.res.Create(ctx, payload, attachment)
	}
	if err != nil {
		logrus.Errorf("failed to save %s: %+v", c.res.Name(), err)
		c.alert("Failed to save record. Ensure the backend is running.")
		return err
	}

	c.mu.Lock()
	c.session.Close()
	c.mu.Unlock()
	c.Refresh(ctx)
	return nil
}

// Remove asks for confirmation, deletes, and re-fetches. A 404 from the
// backend counts as success: the record is gone either way.
func (c *ListController[T]) Remove(ctx context.Context, id int) error {
	if !c.confirm(fmt.Sprintf("Are you sure you want to delete this %s?", c.res.Name())) {
		return nil
	}
	if err := c.res.Delete(ctx, id); err != nil {
		if !client.IsNotFound(err) {
			logrus.Errorf("failed to delete %s %d: %+v", c.res.Name(), id, err)
			return err
		}
	}
	c.Refresh(ctx)
	return nil
}
