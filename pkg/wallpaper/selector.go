package wallpaper

import (
	"math/rand/v2"

	"github.com/dixieflatline76/Wallfetch/pkg/wallhaven"
)

// SampleSize is the number of records returned to the caller per search.
const SampleSize = 5

// Rand is the random source used by Sample. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Sample draws k records uniformly at random with replacement, so a record may
// appear more than once. A nil rng uses the process-wide source.
func Sample(catalog wallhaven.Catalog, k int, rng Rand) ([]wallhaven.ImageRecord, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if rng == nil {
		rng = globalRand{}
	}
	if k < 0 {
		k = 0
	}

	picked := make([]wallhaven.ImageRecord, k)
	for i := range picked {
		picked[i] = catalog[rng.IntN(len(catalog))]
	}
	return picked, nil
}
