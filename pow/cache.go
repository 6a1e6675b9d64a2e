// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"fmt"
	"sync"

	"github.com/decred/dcrd/lru"

	"github.com/bitweb-project/bewcore/chainhash"
	"github.com/bitweb-project/bewcore/wire"
)

// HeaderCache memoizes a single header's PoW hash behind a mutex with
// check-then-set discipline. It is intended to be embedded or held
// alongside a header value that is hashed repeatedly (e.g. during
// validation of the same candidate block by multiple consensus rules) so
// the chosen Engine only runs once.
//
// blockHash records the header's own block-identity hash (Sha2d) at the
// time of caching, so a header mutated after caching without going through
// Invalidate is detected rather than silently served stale.
type HeaderCache struct {
	mu        sync.Mutex
	init      bool
	engine    Engine
	hash      chainhash.Hash
	blockHash chainhash.Hash
}

// PowHash returns the cached PoW hash for h under engine e, computing and
// storing it on the first call. A cache hit is only honored when the
// cached entry was computed with the same engine; algorithm activation
// height changes mean the same header value could in principle be asked
// for under two different engines across the cache's lifetime, and
// silently returning a hash computed under the wrong engine would be a
// consensus bug.
//
// Every call also recomputes h's block-identity hash and compares it
// against the one recorded at cache time. A mismatch means the header was
// mutated (e.g. its Nonce) without the caller invalidating the cache
// first. That is a fatal invariant violation, not a normal cache miss, so
// it panics with an AssertError rather than silently recomputing.
func (c *HeaderCache) PowHash(h *wire.BlockHeader, e Engine) (chainhash.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	blockHash := h.BlockHash()

	if c.init {
		if c.blockHash != blockHash {
			panic(AssertError(fmt.Sprintf(
				"pow: HeaderCache block hash drifted: cached %s, got %s (header mutated without Invalidate)",
				c.blockHash, blockHash)))
		}
		if c.engine == e {
			return c.hash, nil
		}
	}

	hash, err := e.Compute(h)
	if err != nil {
		return chainhash.Hash{}, err
	}

	c.init = true
	c.engine = e
	c.hash = hash
	c.blockHash = blockHash
	log.Tracef("Cached %v pow hash for block %v", e, blockHash)
	return hash, nil
}

// Invalidate clears a cache entry, forcing the next PowHash call to
// recompute. Callers mutate a header's Nonce in a tight mining loop; each
// mutation must be followed by Invalidate before the next PowHash call.
func (c *HeaderCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.init = false
}

// HashCache is a process-wide, size-bounded memoization layer across many
// distinct headers, complementing the single-header HeaderCache above. It
// is keyed on the header's block hash (chainhash.Hash) rather than the
// pointer identity of a *wire.BlockHeader, so the same header arriving
// twice from independent sources (e.g. a re-announced block and a locally
// held candidate) shares one PoW computation.
//
// The underlying decred/dcrd/lru.Cache is an LRU set keyed on arbitrary
// comparable values; HashCache layers a parallel map alongside it to
// recover the associated PoW hash on a hit, since the LRU set itself
// only tracks membership.
type HashCache struct {
	mu     sync.Mutex
	limit  uint
	recent lru.Cache
	values map[chainhash.Hash]chainhash.Hash
}

// NewHashCache returns a HashCache bounded to the given number of most
// recently used entries.
func NewHashCache(limit uint) *HashCache {
	return &HashCache{
		limit:  limit,
		recent: lru.NewCache(limit),
		values: make(map[chainhash.Hash]chainhash.Hash, limit),
	}
}

// PowHash returns the memoized PoW hash for the header identified by
// blockHash, computing it from h under engine e on a miss.
func (c *HashCache) PowHash(blockHash chainhash.Hash, h *wire.BlockHeader, e Engine) (chainhash.Hash, error) {
	c.mu.Lock()
	if c.recent.Contains(blockHash) {
		hash := c.values[blockHash]
		c.mu.Unlock()
		return hash, nil
	}
	c.mu.Unlock()

	hash, err := e.Compute(h)
	if err != nil {
		return chainhash.Hash{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent.Add(blockHash)
	c.values[blockHash] = hash
	if uint(len(c.values)) > c.limit {
		c.evictStale()
	}
	return hash, nil
}

// evictStale drops entries from values that the LRU set has already
// pushed out, keeping the parallel map from growing without bound. It is
// called under c.mu.
func (c *HashCache) evictStale() {
	for k := range c.values {
		if !c.recent.Contains(k) {
			delete(c.values, k)
		}
	}
}
