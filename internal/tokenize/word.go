package tokenize

const wordMinLength = 2

// WordTokenHashes extracts the legacy/indifferent word vocabulary: ASCII
// alphanumeric runs of length >= 2, case-sensitive, hashed with Hash64.
// Delimiters are every other byte -- there is no explicit delimiter set
// because the alphabet already partitions bytes into token/non-token.
func WordTokenHashes(data []byte) []uint64 {
	var hashes []uint64
	scan(data, isAlnum, wordMinLength, func(tok []byte) {
		hashes = append(hashes, Hash64(tok))
	})
	return hashes
}
