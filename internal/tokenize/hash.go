// Package tokenize implements the byte-level scanners that turn file
// content into the vocabulary consumed by the posting store: word
// tokens, identifier-preserving tokens (exact and lowercased), and
// trigrams.
package tokenize

import "github.com/cespare/xxhash/v2"

// Hash64 returns the 64-bit non-cryptographic hash used as a posting-map
// key for word and identifier tokens. Collisions are possible but rare
// enough that posting membership is treated as ground truth; callers
// narrow false positives with glob/path_contains filters rather than
// re-reading source files.
func Hash64(token []byte) uint64 {
	return xxhash.Sum64(token)
}
