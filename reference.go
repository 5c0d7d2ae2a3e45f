package flw

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultReferencePrefix is used when GenerateReference gets an empty prefix
const DefaultReferencePrefix = "flw"

var (
	refOnce    sync.Once
	refMu      sync.Mutex
	refEntropy *ulid.MonotonicEntropy
)

// GenerateReference returns a transaction reference of the form
// "<prefix>_<ULID>", e.g. flw_01HZX3J5Q8M2N0V7W9ABCDEFGH. References from one
// process never repeat; ULIDs minted in the same millisecond increment the
// random part instead of redrawing it. Uniqueness across processes relies on
// 80 bits of randomness only.
func (c *Client) GenerateReference(prefix string) string {
	return GenerateReference(prefix)
}

// GenerateReference is the package-level form of Client.GenerateReference
func GenerateReference(prefix string) string {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	return prefix + "_" + nextULID().String()
}

func nextULID() ulid.ULID {
	refOnce.Do(func() {
		refEntropy = ulid.Monotonic(rand.Reader, 0)
	})

	refMu.Lock()
	defer refMu.Unlock()
	// the timestamp is taken under the lock so ULIDs leave in order
	return ulid.MustNew(ulid.Timestamp(time.Now()), refEntropy)
}
