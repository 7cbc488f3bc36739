package hashfunc

import (
	"fmt"
	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-farm"
	"github.com/zeebo/xxh3"
	"hash/crc32"
	"sort"
	"strings"
)

// DefaultName - Name of the hash function used when none is chosen
const DefaultName = "fnv1"

var registry = map[string]Sum32{
	"fnv1":  FNV1,
	"crc32": crc32.ChecksumIEEE,
	"xxhash": func(key []byte) uint32 {
		return uint32(xxhash.Sum64(key))
	},
	"xxh3": func(key []byte) uint32 {
		return uint32(xxh3.Hash(key))
	},
	"farm": farm.Fingerprint32,
}

// ByName - Returns the hash function registered under name
func ByName(name string) (sum Sum32, err error) {
	sum, ok := registry[name]
	if !ok {
		err = fmt.Errorf("unknown hash function %q, should be one of %s", name, strings.Join(Names(), ", "))
		return
	}

	return
}

// Names - Returns the names of all registered hash functions in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
