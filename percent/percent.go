// Package percent implements percent-encoding and percent-decoding
// against the named byte-classification sets in charset.
package percent

import "go-whatwg-url/charset"

// encoded is the precomputed concatenation of the 256 literal
// percent-triplets "%00".."%FF", three bytes each, so encoding byte b
// is a copy of encoded[3*b : 3*b+3].
var encoded = buildEncodedTable()

func buildEncodedTable() [768]byte {
	const hex = "0123456789ABCDEF"
	var t [768]byte
	for b := 0; b < 256; b++ {
		t[3*b] = '%'
		t[3*b+1] = hex[b>>4]
		t[3*b+2] = hex[b&0xf]
	}
	return t
}

// decoded maps an ASCII hex digit, either case, to its 0-15 value; all
// other bytes map to 0 (the decode loop below only confirms both bytes
// are ASCII alphanumeric, so a non-hex letter contributes 0).
var decoded = buildDecodedTable()

func buildDecodedTable() [256]byte {
	var t [256]byte
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c - '0'
	}
	for c := byte('A'); c <= 'F'; c++ {
		t[c] = c - 'A' + 10
	}
	for c := byte('a'); c <= 'f'; c++ {
		t[c] = c - 'a' + 10
	}
	return t
}

// EncodeByte appends b to result, percent-encoded if b is a member of
// set, verbatim otherwise.
func EncodeByte(result []byte, b byte, set *charset.Set) []byte {
	if set.Contains(b) {
		return append(result, encoded[3*int(b):3*int(b)+3]...)
	}
	return append(result, b)
}

// EncodeSlice appends view to result, percent-encoding bytes that are
// members of set. The fast path appends the whole view unchanged when
// no byte requires encoding.
func EncodeSlice(result []byte, view []byte, set *charset.Set) []byte {
	i := 0
	n := len(view)
	for ; i < n; i++ {
		if set.Contains(view[i]) {
			break
		}
	}
	if i == n {
		return append(result, view...)
	}

	// Reserve a lower-bound estimate; growth beyond this is fine, it's
	// a hint not a cap.
	if cap(result)-len(result) < n {
		grown := make([]byte, len(result), len(result)+n)
		copy(grown, result)
		result = grown
	}

	result = append(result, view[:i]...)
	for ; i < n; i++ {
		result = EncodeByte(result, view[i], set)
	}
	return result
}

// DecodeSlice appends the percent-decoded form of view to result: each
// "%XX" triplet where both X are ASCII alphanumeric is replaced with
// the decoded byte; any other byte, including a lone or malformed '%',
// passes through unchanged.
func DecodeSlice(result []byte, view []byte) []byte {
	i := 0
	n := len(view)
	for ; i < n; i++ {
		if view[i] == 0x25 {
			break
		}
	}

	if cap(result)-len(result) < n {
		grown := make([]byte, len(result), len(result)+n)
		copy(grown, result)
		result = grown
	}

	result = append(result, view[:i]...)
	for ; i < n; i++ {
		c := view[i]
		if c == 0x25 && i+2 < n && charset.IsAlphanumeric(view[i+1]) && charset.IsAlphanumeric(view[i+2]) {
			result = append(result, decoded[view[i+1]]<<4|decoded[view[i+2]])
			i += 2
		} else {
			result = append(result, c)
		}
	}
	return result
}
