package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// HashBytes возвращает sha256 содержимого.
func HashBytes(content []byte) Digest {
	return sha256.Sum256(content)
}

// Combine строит составной хеш: H( part1 || part2 ... ).
// Порядок частей должен быть детерминированным.
func Combine(parts ...Digest) Digest {
	h := sha256.New()
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
