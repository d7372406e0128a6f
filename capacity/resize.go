package capacity

import (
	"context"
	"github.com/obolnetwork/charon/app/log"
	"github.com/obolnetwork/charon/app/z"
)

// Resize returns a newly allocated store of newCap slots holding elems[:live].
// The result never shares memory with elems.
func Resize[T any](elems []T, live, newCap int) []T {
	resized := make([]T, newCap)
	copy(resized, elems[:live])

	log.Debug(context.Background(), "backing store resized",
		z.Int("from", len(elems)), z.Int("to", newCap), z.Int("live", live))

	return resized
}
