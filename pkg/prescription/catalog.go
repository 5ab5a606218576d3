package prescription

import (
	_ "embed"
)

//go:embed drills.yaml
var defaultCatalog []byte

// DefaultCatalog returns the built-in drill catalog.
func DefaultCatalog() ([]Drill, error) {
	return DecodeCatalog(defaultCatalog, "yaml")
}
