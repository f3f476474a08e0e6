// Package static serves a world definition loaded once at startup, either
// the built-in Phoenix Station catalog or a YAML file supplied by the
// operator.
package static

import (
	"fmt"

	"phoenixcore/internal/domain/world"
)

type Provider struct {
	def world.Definition
}

// NewBuiltin returns a provider backed by the compiled-in station catalog.
func NewBuiltin() Provider {
	return Provider{def: world.Phoenix()}
}

// NewFromFile loads and validates a YAML world file.
func NewFromFile(path string) (Provider, error) {
	def, err := world.LoadFile(path)
	if err != nil {
		return Provider{}, fmt.Errorf("load world file %s: %w", path, err)
	}
	return Provider{def: def}, nil
}

func (p Provider) Definition() world.Definition {
	return p.def
}
