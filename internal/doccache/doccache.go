// Package doccache keys parsed documents by a digest of their content.
package doccache

import (
	"encoding/binary"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/minio/highwayhash"
)

var key = []byte("gir-document-cache-digest-key-01")

// Digest identifies document content.
type Digest uint64

// String renders the digest as fixed width hex.
func (d Digest) String() string {
	return fmt.Sprintf("%016x", uint64(d))
}

// Sum returns the digest of data.
func Sum(data []byte) Digest {
	return Digest(highwayhash.Sum64(data, key))
}

// Combine digests named entries independently of their order.
func Combine(entries map[string]Digest) Digest {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf []byte
	for _, name := range names {
		buf = append(buf, name...)
		buf = append(buf, 0)
		buf = binary.BigEndian.AppendUint64(buf, uint64(entries[name]))
	}
	return Sum(buf)
}

// Cache is a bounded, concurrency safe map from content digest to a decoded
// document. A nil *Cache is a valid cache that never hits.
type Cache[V any] struct {
	entries *lru.Cache[Digest, V]
}

// New returns a cache holding at most size documents.
func New[V any](size int) (*Cache[V], error) {
	entries, err := lru.New[Digest, V](size)
	if err != nil {
		return nil, fmt.Errorf("document cache: %w", err)
	}
	return &Cache[V]{entries: entries}, nil
}

// Get returns the document stored under d.
func (c *Cache[V]) Get(d Digest) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	return c.entries.Get(d)
}

// Add stores v under d, evicting the least recently used entry when full.
func (c *Cache[V]) Add(d Digest, v V) {
	if c == nil {
		return
	}
	c.entries.Add(d, v)
}

// Len returns the number of cached documents.
func (c *Cache[V]) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
