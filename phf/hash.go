// Package phf holds compile-time perfect-hash tables and their lookup.
//
// Tables are produced by phfgen during a generation run and embedded in
// generated code as composite literals. Lookup uses CHD displacement:
// a key's bucket is chosen by g, and the bucket's displacement pair
// (d1, d2) maps it to slot (d2 + f1*d1 + f2) mod n.
package phf

import (
	"encoding/binary"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Key is the set of types usable as perfect-hash keys
type Key interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~bool
}

// Hashes are the three 32-bit hash values CHD needs per key
type Hashes struct {
	G  uint32
	F1 uint32
	F2 uint32
}

// Disp is one bucket's displacement pair
type Disp struct {
	D1 uint32
	D2 uint32
}

// Hash computes the hashes of key under seed
func Hash[K Key](key K, seed uint64) Hashes {
	d := xxhash.NewWithSeed(seed)
	writeKey(d, key)
	sum := d.Sum64()
	mixed := splitmix64(sum ^ seed)
	return Hashes{
		G:  uint32(sum >> 32),
		F1: uint32(sum),
		F2: uint32(mixed >> 32),
	}
}

func writeKey[K Key](d *xxhash.Digest, key K) {
	var buf [8]byte
	switch k := any(key).(type) {
	case string:
		_, _ = d.WriteString(k)
		return
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case int32:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint32:
		binary.LittleEndian.PutUint64(buf[:], uint64(k))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], k)
	default:
		// named types and the narrower widths
		rv := reflect.ValueOf(key)
		switch rv.Kind() {
		case reflect.String:
			_, _ = d.WriteString(rv.String())
			return
		case reflect.Bool:
			if rv.Bool() {
				buf[0] = 1
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			binary.LittleEndian.PutUint64(buf[:], uint64(rv.Int()))
		default:
			binary.LittleEndian.PutUint64(buf[:], rv.Uint())
		}
	}
	_, _ = d.Write(buf[:])
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// Displace returns the slot of a key with hashes h in a table of n slots
// given its bucket's displacement
func Displace(h Hashes, d Disp, n uint32) uint32 {
	return (d.D2 + h.F1*d.D1 + h.F2) % n
}

// index returns the slot of key, or false for an empty table
func index[K Key](key K, seed uint64, disps []Disp, n int) (int, bool) {
	if len(disps) == 0 || n == 0 {
		return 0, false
	}
	h := Hash(key, seed)
	d := disps[h.G%uint32(len(disps))]
	return int(Displace(h, d, uint32(n))), true
}
