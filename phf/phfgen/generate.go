// Package phfgen builds minimal perfect hash tables for phf at generation
// time, using the CHD algorithm (hash, displace and compress).
package phfgen

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"fortio.org/safecast"
	"github.com/teranos/bakein/errors"
	"github.com/teranos/bakein/phf"
)

const (
	// Lambda is the average number of keys per bucket
	Lambda = 5

	// DefaultMaxAttempts is the number of seeds tried before giving up
	DefaultMaxAttempts = 64

	// fixedSeed makes seed selection deterministic: identical key sets
	// always produce identical tables
	fixedSeed = 1234567890
)

// HashState is a solved table layout.
// Map[slot] is the index of the key placed in that slot.
type HashState struct {
	Seed     uint64
	Disps    []phf.Disp
	Map      []int
	Attempts int
}

type bucket struct {
	idx  int
	keys []int
}

// Generate solves a perfect hash layout for keys. Duplicate keys and key
// sets for which no seed within maxAttempts yields a layout fail with
// errors.ErrHashConstruction.
func Generate[K phf.Key](keys []K, maxAttempts int) (*HashState, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	seen := make(map[K]int, len(keys))
	for i, k := range keys {
		if first, dup := seen[k]; dup {
			return nil, errors.WithDetailf(
				errors.NewHashConstructionError("duplicate key %v", k),
				"entries %d and %d share the key", first, i)
		}
		seen[k] = i
	}

	n, err := safecast.Conv[uint32](len(keys))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%d keys do not fit a table", len(keys)), errors.ErrHashConstruction)
	}

	rng := rand.New(rand.NewPCG(fixedSeed, fixedSeed))
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		seed := rng.Uint64()
		if st := tryGenerate(keys, seed, n); st != nil {
			st.Attempts = attempt
			return st, nil
		}
	}

	return nil, errors.WithHint(
		errors.NewHashConstructionError("no displacement found for %d keys after %d seeds", len(keys), maxAttempts),
		"raise hash.max_attempts")
}

func tryGenerate[K phf.Key](keys []K, seed uint64, n uint32) *HashState {
	if n == 0 {
		return &HashState{Seed: seed}
	}

	hashes := make([]phf.Hashes, len(keys))
	for i, k := range keys {
		hashes[i] = phf.Hash(k, seed)
	}

	bucketsLen := (n + Lambda - 1) / Lambda
	buckets := make([]bucket, bucketsLen)
	for i := range buckets {
		buckets[i].idx = i
	}
	for i, h := range hashes {
		b := h.G % bucketsLen
		buckets[b].keys = append(buckets[b].keys, i)
	}

	// Place the largest buckets first while the table is still empty
	slices.SortStableFunc(buckets, func(a, b bucket) int {
		return cmp.Compare(len(b.keys), len(a.keys))
	})

	table := make([]int, n)
	for i := range table {
		table[i] = -1
	}
	disps := make([]phf.Disp, bucketsLen)

	// tryMap[slot] == generation marks a slot taken by the bucket being
	// placed, without clearing the slice between tries
	tryMap := make([]uint64, n)
	var generation uint64
	type placement struct{ slot, key int }
	toAdd := make([]placement, 0, Lambda*2)

	for _, b := range buckets {
		placed := false
	search:
		for d1 := uint32(0); d1 < n; d1++ {
			for d2 := uint32(0); d2 < n; d2++ {
				toAdd = toAdd[:0]
				generation++
				d := phf.Disp{D1: d1, D2: d2}

				for _, key := range b.keys {
					slot := int(phf.Displace(hashes[key], d, n))
					if table[slot] != -1 || tryMap[slot] == generation {
						continue
					}
					tryMap[slot] = generation
					toAdd = append(toAdd, placement{slot, key})
				}
				if len(toAdd) != len(b.keys) {
					continue
				}

				disps[b.idx] = d
				for _, p := range toAdd {
					table[p.slot] = p.key
				}
				placed = true
				break search
			}
		}
		if !placed {
			return nil
		}
	}

	return &HashState{Seed: seed, Disps: disps, Map: table}
}

// String summarizes the layout for logs
func (st *HashState) String() string {
	return fmt.Sprintf("seed=%d buckets=%d slots=%d attempts=%d", st.Seed, len(st.Disps), len(st.Map), st.Attempts)
}
