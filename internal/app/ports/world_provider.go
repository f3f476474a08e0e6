package ports

import "phoenixcore/internal/domain/world"

// WorldProvider hands out the immutable world definition.
type WorldProvider interface {
	Definition() world.Definition
}
