// Package cronJobs keeps the console's collections warm: every registered
// controller is re-fetched on a schedule so the tables show recent data
// without a manual refresh.
package cronJobs

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Refreshable is anything that can replace its collection with a fresh fetch.
type Refreshable interface {
	Refresh(ctx context.Context)
}

var (
	mu           sync.Mutex
	refreshables []Refreshable
)

func Register(r Refreshable) {
	mu.Lock()
	defer mu.Unlock()
	refreshables = append(refreshables, r)
}

// RefreshAll runs one background refresh pass. Individual fetch failures
// follow the usual list policy (logged, table degrades to empty), so a dead
// backend never kills the sweep.
func RefreshAll() {
	mu.Lock()
	registered := append(make([]Refreshable, 0, len(refreshables)), refreshables...)
	mu.Unlock()

	ctx := context.Background()
	for _, r := range registered {
		r.Refresh(ctx)
	}
	logrus.Infof("background refresh pass completed for %d controllers", len(registered))
}
