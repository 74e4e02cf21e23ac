// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// Hasher computes keyed BLAKE2b-256 fingerprints. It is safe for concurrent
// use; hash states are pooled.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with key. Keys longer than the 64 bytes
// BLAKE2b accepts are hashed down first; an empty key gives plain BLAKE2b.
func NewHasher(key string) *Hasher {
	k := []byte(key)
	if len(k) > blake2b.Size {
		sum := blake2b.Sum512(k)
		k = sum[:]
	}

	h := &Hasher{}
	h.pool.New = func() any {
		// only fails for keys longer than blake2b.Size
		hh, _ := blake2b.New256(k)
		return hh
	}
	return h
}

// Sum hashes the concatenation of parts. Each part is length-prefixed, so
// ("ab", "c") and ("a", "bc") differ.
func (h *Hasher) Sum(parts ...[]byte) []byte {
	hh := h.pool.Get().(hash.Hash)
	defer func() {
		hh.Reset()
		h.pool.Put(hh)
	}()

	var size [8]byte
	for _, p := range parts {
		n := uint64(len(p))
		for i := range size {
			size[i] = byte(n >> (8 * i))
		}
		hh.Write(size[:])
		hh.Write(p)
	}
	return hh.Sum(nil)
}

// HexString is Sum over strings, hex encoded.
func (h *Hasher) HexString(parts ...string) string {
	bs := make([][]byte, len(parts))
	for i, p := range parts {
		bs[i] = []byte(p)
	}
	return hex.EncodeToString(h.Sum(bs...))
}
