package ports

import "context"

// GuideProvider serves the operations-manual text shown by external
// presentation layers when the guide verb fires.
type GuideProvider interface {
	Manual(ctx context.Context) ([]byte, error)
}
