package component

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID generates a component id of the form "{type}-{timestamp}-{random}".
// Uniqueness is probabilistic but the timestamp component keeps ids from
// colliding across paste bursts; callers that need a hard guarantee should
// check the document first.
func NewID(componentType string) string {
	if componentType == "" {
		componentType = "component"
	}
	return fmt.Sprintf("%s-%d-%d", componentType, time.Now().UnixMilli(), rand.Intn(100000))
}

// FallbackID generates an id for elements found without one (e.g. at the end
// of a drag). UUIDs are used here instead of the timestamp-random form so a
// repaired element can never collide with a pasted one.
func FallbackID(componentType string) string {
	if componentType == "" {
		componentType = "component"
	}
	return componentType + "-" + uuid.NewString()
}
