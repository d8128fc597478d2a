package main

import (
	"encoding/base64"
	"fmt"

	"github.com/VictoriaMetrics/VictoriaMetrics/lib/bytesutil"
	"github.com/golang/snappy"

	"go-whatwg-url/whatwgurl"
)

// field identifiers inside a debug token. Field 0xFF is reserved for a
// nonce-like marker in the sibling HTTP-probing format this is adapted
// from; a URL token carries no such block since replay isn't a concern
// here, and is simplified accordingly.
const (
	tokenFieldScheme byte = iota + 1
	tokenFieldHost
	tokenFieldPath
	tokenFieldQuery
	tokenFieldFragment
)

const tokenVersion = 1

// GenerateDebugToken packs a parsed URL's components into a compact
// versioned, type-length-value byte sequence, snappy-compressed and
// base64url-encoded.
//
// Token layout (before compression):
//
//	[version byte]
//	then, for each non-empty component:
//	[field id byte][length byte][bytes]
//
// A component longer than 255 bytes is truncated to its first 255.
func GenerateDebugToken(u *whatwgurl.URL) string {
	bb := &bytesutil.ByteBuffer{}
	bb.B = append(bb.B, tokenVersion)

	writeField := func(id byte, v []byte) {
		if len(v) == 0 {
			return
		}
		n := len(v)
		if n > 255 {
			n = 255
		}
		bb.B = append(bb.B, id, byte(n))
		bb.Write(v[:n])
	}

	writeField(tokenFieldScheme, u.Scheme())
	writeField(tokenFieldHost, u.Host())
	writeField(tokenFieldPath, u.Path())
	writeField(tokenFieldQuery, u.Query())
	writeField(tokenFieldFragment, u.Fragment())

	compressed := snappy.Encode(nil, bb.B)
	return base64.RawURLEncoding.EncodeToString(compressed)
}

// DecodedToken is the plain-struct form of a decoded debug token.
type DecodedToken struct {
	Scheme   string
	Host     string
	Path     string
	Query    string
	Fragment string
}

// DecodeDebugToken reverses GenerateDebugToken; a component that was
// truncated to 255 bytes decodes as the truncated value.
func DecodeDebugToken(token string) (DecodedToken, error) {
	var out DecodedToken

	compressed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return out, fmt.Errorf("urlcheck: bad base64 in debug token: %w", err)
	}
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return out, fmt.Errorf("urlcheck: bad snappy payload in debug token: %w", err)
	}
	if len(raw) < 1 || raw[0] != tokenVersion {
		return out, fmt.Errorf("urlcheck: unsupported debug token version")
	}

	pos := 1
	for pos+2 <= len(raw) {
		id := raw[pos]
		n := int(raw[pos+1])
		pos += 2
		if pos+n > len(raw) {
			break
		}
		v := string(raw[pos : pos+n])
		pos += n
		switch id {
		case tokenFieldScheme:
			out.Scheme = v
		case tokenFieldHost:
			out.Host = v
		case tokenFieldPath:
			out.Path = v
		case tokenFieldQuery:
			out.Query = v
		case tokenFieldFragment:
			out.Fragment = v
		}
	}
	return out, nil
}
