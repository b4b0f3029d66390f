package containers

import "github.com/google/uuid"

// ID is a container's stable, process-wide unique identifier.
// Identifiers are allocated at creation and never reused (spec
// invariant 6).
type ID = uuid.UUID

// NewID allocates a fresh, random identifier for a new container.
func NewID() ID {
	return uuid.New()
}
