package doctor

import (
	"context"
	"fmt"

	"github.com/hay-kot/efie/internal/efie"
)

// RecentStore reads and prunes the recent list.
type RecentStore interface {
	Recent(ctx context.Context) ([]efie.RecentEntry, error)
	PruneRecent(ctx context.Context) (int, error)
}

// RecentCheck detects recent entries whose file was moved or deleted.
type RecentCheck struct {
	store RecentStore
	fix   bool
}

// NewRecentCheck creates a new recent list check.
// If fix is true, missing entries are pruned.
func NewRecentCheck(store RecentStore, fix bool) *RecentCheck {
	return &RecentCheck{store: store, fix: fix}
}

func (c *RecentCheck) Name() string {
	return "Recent Posts"
}

func (c *RecentCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	entries, err := c.store.Recent(ctx)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Read recent list",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	var missing []string
	for _, e := range entries {
		if !e.Exists {
			missing = append(missing, e.Path)
		}
	}

	if len(missing) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "No missing files",
			Status: StatusPass,
			Detail: fmt.Sprintf("%d tracked", len(entries)),
		})
		return result
	}

	if c.fix {
		removed, err := c.store.PruneRecent(ctx)
		if err != nil {
			result.Items = append(result.Items, CheckItem{
				Label:  "Prune recent list",
				Status: StatusFail,
				Detail: err.Error(),
			})
			return result
		}
		result.Items = append(result.Items, CheckItem{
			Label:  "Prune recent list",
			Status: StatusPass,
			Detail: fmt.Sprintf("removed %d missing entries", removed),
		})
		return result
	}

	for _, path := range missing {
		result.Items = append(result.Items, CheckItem{
			Label:   path,
			Status:  StatusWarn,
			Detail:  "file no longer exists",
			Fixable: true,
		})
	}

	return result
}
