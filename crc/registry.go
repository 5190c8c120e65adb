package crc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/xerrors"
)

// Normal form generators.
const (
	// IEEE is the HDLC/ISO generator used by ethernet, zlib, gzip and png.
	IEEE = 0x04C11DB7

	// Castagnoli is used by iSCSI and ext4.
	Castagnoli = 0x1EDC6F41

	// Koopman is Koopman's 32-bit generator.
	Koopman = 0x741B8CD7
)

var ErrUnknownGenerator = xerrors.New("crc: unknown generator")

var (
	registryMutex sync.Mutex
	generators    = make(map[string]uint32)
	tables        = make(map[uint32]*tableEntry)
)

type tableEntry struct {
	once  sync.Once
	table *Table
}

func init() {
	Register("ieee", IEEE)
	Register("castagnoli", Castagnoli)
	Register("koopman", Koopman)
}

// Register names a generator for use with Lookup and ParseGenerator.
func Register(name string, poly uint32) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	name = strings.ToLower(name)
	if _, dup := generators[name]; dup {
		panic(fmt.Sprintf("crc: generator already registered (%s)", name))
	}
	generators[name] = poly
}

// Lookup returns the generator registered under name.
func Lookup(name string) (uint32, error) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if poly, exists := generators[strings.ToLower(name)]; exists {
		return poly, nil
	}

	return 0, xerrors.Errorf("%q: %w", name, ErrUnknownGenerator)
}

// Names returns the registered generator names in sorted order.
func Names() (names []string) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ParseGenerator accepts either a registered name or a numeric generator
// such as 0x04C11DB7.
func ParseGenerator(s string) (uint32, error) {
	if poly, err := Lookup(s); err == nil {
		return poly, nil
	}

	poly, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, xerrors.Errorf("%q: %w", s, ErrUnknownGenerator)
	}

	return uint32(poly), nil
}

// MakeTable returns the table for poly, building it on first use. Every call
// for the same generator returns the same table.
func MakeTable(poly uint32) *Table {
	registryMutex.Lock()
	entry, exists := tables[poly]
	if !exists {
		entry = new(tableEntry)
		tables[poly] = entry
	}
	registryMutex.Unlock()

	entry.once.Do(func() {
		entry.table = NewTable(poly)
	})

	return entry.table
}
