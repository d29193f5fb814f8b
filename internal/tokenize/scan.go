package tokenize

// isTokenByteFunc reports whether b belongs to a token under the
// scanner's alphabet. Any byte that fails this test ends the token in
// progress (if any) and advances the scan position by one, whether that
// byte is a listed delimiter or simply unrecognized.
type isTokenByteFunc func(b byte) bool

// scan walks data emitting maximal runs of token bytes whose length is
// at least minLen. It is the shared skeleton behind the word, identifier,
// and trigram scanners.
func scan(data []byte, isTokenByte isTokenByteFunc, minLen int, emit func(tok []byte)) {
	n := len(data)
	i := 0
	for i < n {
		if !isTokenByte(data[i]) {
			i++
			continue
		}
		start := i
		for i < n && isTokenByte(data[i]) {
			i++
		}
		if i-start >= minLen {
			emit(data[start:i])
		}
	}
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentByte(b byte) bool {
	return isAlnum(b) || b == '_' || b == '-'
}

// isIdentDelimiter lists the explicit delimiter set from the
// identifier-preserving tokenizer's spec: whitespace, bracket pairs,
// quotes, and common punctuation, plus NUL. A byte that is neither a
// token byte nor in this set still ends the current token (scan treats
// it identically to a listed delimiter) -- this set exists for
// documentation and tests, not because the scan loop branches on it.
func isIdentDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f',
		'(', ')', '[', ']', '{', '}', '<', '>',
		'"', '\'', '`',
		',', ';', ':', '.', '+', '=', '/', '\\', '@', '#', '$', '%', '^', '&', '*', '!', '?', '|', '~',
		0:
		return true
	default:
		return false
	}
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func toLowerCopy(dst, src []byte) {
	for i, b := range src {
		dst[i] = toLowerByte(b)
	}
}
