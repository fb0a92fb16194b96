package region

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/core"
)

// ErrIDSpaceExhausted is returned when no fresh id was found within the
// attempt limit. With 122 random bits this only happens with a broken source.
var ErrIDSpaceExhausted = errors.New("region id space exhausted")

const defaultIDAttempts = 64

// IDGenerator draws region ids from a caller supplied random source, so that
// a seeded *rand.Rand reproduces the same ids run after run.
type IDGenerator struct {
	src         io.Reader
	maxAttempts int
}

// NewIDGenerator creates a generator reading from src.
func NewIDGenerator(src io.Reader) *IDGenerator {
	return &IDGenerator{src: src, maxAttempts: defaultIDAttempts}
}

// Next returns an id for which inUse reports false. It never returns
// core.NoRegion.
func (g *IDGenerator) Next(inUse func(core.RegionID) bool) (core.RegionID, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		id, err := uuid.NewRandomFromReader(g.src)
		if err != nil {
			return core.NoRegion, fmt.Errorf("generate region id: %w", err)
		}
		if id == core.NoRegion || inUse(id) {
			continue
		}
		return id, nil
	}
	return core.NoRegion, ErrIDSpaceExhausted
}

// LessID orders region ids bytewise. Used wherever a stable tie-break is needed.
func LessID(a, b core.RegionID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
