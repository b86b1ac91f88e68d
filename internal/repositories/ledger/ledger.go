package ledger

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=ledger.go -destination=mocks/mock.go
type Repository interface {
	// GetProcessedIDs returns the post ids stored by the last run, or an empty list.
	GetProcessedIDs(ctx context.Context) ([]string, error)

	// SetProcessedIDs replaces the stored list with ids.
	SetProcessedIDs(ctx context.Context, ids []string) error
}

// Equal reports whether two id lists are identical, order included.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
