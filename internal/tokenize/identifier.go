package tokenize

const identMinLength = 2

// ExactTokenHashes extracts the identifier-preserving, case-sensitive
// vocabulary backing the exact posting store: runs of ASCII alphanumeric
// plus '_'/'-' of length >= 2.
func ExactTokenHashes(data []byte) []uint64 {
	var hashes []uint64
	scan(data, isIdentByte, identMinLength, func(tok []byte) {
		hashes = append(hashes, Hash64(tok))
	})
	return hashes
}

// ExactLowerTokenHashes is the case-insensitive twin of ExactTokenHashes,
// lowercasing each token before hashing to back the exact_lower posting
// store. A–Z is the only case folded; this module never lowercases
// non-ASCII bytes.
func ExactLowerTokenHashes(data []byte) []uint64 {
	var hashes []uint64
	var buf [256]byte
	scan(data, isIdentByte, identMinLength, func(tok []byte) {
		var lower []byte
		if len(tok) <= len(buf) {
			lower = buf[:len(tok)]
		} else {
			lower = make([]byte, len(tok))
		}
		toLowerCopy(lower, tok)
		hashes = append(hashes, Hash64(lower))
	})
	return hashes
}
