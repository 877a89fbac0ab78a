package calculation

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc returns a high-entropy seed for runs that did not ask for one.
var seedFunc = func() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	// Zero means "pick a seed" to callers, so never hand it out.
	if s := int64(binary.LittleEndian.Uint64(b[:])); s != 0 {
		return s
	}
	return 1
}

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }
