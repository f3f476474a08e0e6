package static

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinDefinition(t *testing.T) {
	p := NewBuiltin()
	def := p.Definition()
	if def.StartRoom == "" {
		t.Fatal("builtin definition has no start room")
	}
	if _, ok := def.Rooms[def.StartRoom]; !ok {
		t.Fatalf("start room %q missing from rooms", def.StartRoom)
	}
}

func TestNewFromFileRejectsMissingPath(t *testing.T) {
	if _, err := NewFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing world file")
	}
}

func TestNewFromFileRejectsInvalidWorld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	bad := `
start_room: nowhere
rooms:
  - key: somewhere
    name: Somewhere
    description: A room.
    final_objective: true
`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFromFile(path); err == nil {
		t.Fatal("expected validation error for dangling start room")
	}
}
