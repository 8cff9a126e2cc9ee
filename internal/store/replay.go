package store

import (
	"context"
	"fmt"

	"github.com/adamlaw669/Curio/internal/catalog"
)

// Replay loads every recorded assessment and engagement into cat in
// sequence order. Records the catalog rejects are returned, not fatal.
func Replay(ctx context.Context, events EventRepo, cat *catalog.Catalog) ([]error, error) {
	assessments, err := events.Assessments(ctx, QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("replay assessments: %w", err)
	}
	engagement, err := events.Engagements(ctx, QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("replay engagement: %w", err)
	}
	return cat.Replay(assessments, engagement), nil
}
