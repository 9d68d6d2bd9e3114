package contracts

import "context"

// CounterRepository issues monotonically increasing values per counter
// name, used to build the human-readable SL/UN/AS record IDs.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
