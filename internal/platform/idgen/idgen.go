package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// Generator produces opaque, collision-resistant identifiers tagged with an entity prefix.
type Generator interface {
	NewID(prefix string) string
}

// UUIDGenerator builds ids as "<prefix>_<32 hex chars of a random UUID>".
type UUIDGenerator struct{}

// New returns the default generator.
func New() UUIDGenerator {
	return UUIDGenerator{}
}

// NewID implements Generator.
func (UUIDGenerator) NewID(prefix string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + token
}

var _ Generator = UUIDGenerator{}
