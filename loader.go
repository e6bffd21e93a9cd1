package jsonschema

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultCompiledCacheSize bounds the content-hash compiled-schema cache.
// It is separate from Compiler.schemas (the unbounded URI-keyed cache used
// for $ref resolution): the same schema bytes can arrive from many call
// sites without a URI at all (inline schemas passed straight to Compile),
// and this cache lets those get deduplicated too.
const defaultCompiledCacheSize = 1000

// hashSchemaBytes returns a content hash used as the compiled-schema cache key.
func hashSchemaBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// enableCompiledCache lazily creates the compiler's content-hash LRU cache.
// Compile() consults it before doing any parsing work; CompileBatch bypasses
// it, since batch compilation already assumes unique schemas per id.
func (c *Compiler) enableCompiledCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.compiledCache != nil {
		return
	}
	cache, err := lru.New[string, *Schema](defaultCompiledCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which never happens
		// with the constant above.
		return
	}
	c.compiledCache = cache
}

// SetCompiledCacheSize replaces the compiler's content-hash compiled-schema
// cache with one of the given capacity. Passing a size <= 0 disables the
// cache entirely.
func (c *Compiler) SetCompiledCacheSize(size int) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size <= 0 {
		c.compiledCache = nil
		return c
	}
	cache, err := lru.New[string, *Schema](size)
	if err != nil {
		return c
	}
	c.compiledCache = cache
	return c
}

func (c *Compiler) lookupCompiledCache(hash string) (*Schema, bool) {
	c.mu.RLock()
	cache := c.compiledCache
	c.mu.RUnlock()
	if cache == nil {
		return nil, false
	}
	return cache.Get(hash)
}

func (c *Compiler) storeCompiledCache(hash string, schema *Schema) {
	c.mu.RLock()
	cache := c.compiledCache
	c.mu.RUnlock()
	if cache == nil {
		return
	}
	cache.Add(hash, schema)
}
