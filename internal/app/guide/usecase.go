// Package guide serves the operations manual the guide verb points
// players at. The manual itself lives outside the core as static content.
package guide

import (
	"context"

	"phoenixcore/internal/app/ports"
)

type UseCase struct {
	Provider ports.GuideProvider
}

func (u UseCase) Manual(ctx context.Context) ([]byte, error) {
	return u.Provider.Manual(ctx)
}
