package driver

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/xxh3"
)

// Key identifies one cached analysis: the ESTree bytes, the source text and
// every option that changes the diagnostics.
type Key [16]byte

func (k Key) String() string { return hex.EncodeToString(k[:]) }

// cacheKey хэширует входные данные и опции; порядок полей фиксирован.
func cacheKey(estree, text []byte, opts *Options, sourceType string) Key {
	h := xxh3.New()
	writeField := func(b []byte) {
		var n [8]byte
		binary.LittleEndian.PutUint64(n[:], uint64(len(b)))
		_, _ = h.Write(n[:])
		_, _ = h.Write(b)
	}
	writeField([]byte{byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion)})
	writeField(estree)
	writeField(text)
	writeField([]byte(sourceType))
	var flags byte
	if opts.ModuleRecord {
		flags |= 1
	}
	if opts.EarlyErrors {
		flags |= 2
	}
	if opts.TypeScript {
		flags |= 4
	}
	writeField([]byte{flags})
	var limit [8]byte
	binary.LittleEndian.PutUint64(limit[:], uint64(max(opts.MaxDiagnostics, 0)))
	writeField(limit[:])
	return Key(h.Sum128().Bytes())
}
