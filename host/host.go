// Package host implements WHATWG host parsing: opaque hosts, IPv4,
// IPv6, and domains, dispatched from a bracket/dot inspection of the
// raw input.
package host

import (
	"fmt"

	"golang.org/x/net/idna"

	"go-whatwg-url/charset"
	"go-whatwg-url/percent"
)

// idnaProfile performs domain-to-ASCII transformation via
// golang.org/x/net/idna rather than a hand-rolled reimplementation of
// IDNA internals.
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
)

// ToASCIIDomain lowercases, IDNA-normalizes, and Punycode-encodes a
// percent-decoded domain label sequence into its ASCII form.
func ToASCIIDomain(domain []byte) (string, error) {
	ascii, err := idnaProfile.ToASCII(string(domain))
	if err != nil {
		return "", fmt.Errorf("host: idna to-ascii failed: %w", err)
	}
	return ascii, nil
}

// Parse appends the parsed, canonicalized form of view to dst:
//  1. bracketed input is parsed as IPv6;
//  2. an opaque host rejects any forbidden-host byte, else is
//     C0-control percent-encoded verbatim;
//  3. a domain fast-paths through untouched if it contains no
//     forbidden-domain byte, else is percent-decoded, IDNA-mapped to
//     ASCII, and — if the result "ends in a number" — reparsed and
//     reserialized as an IPv4 literal.
func Parse(dst []byte, view []byte, isOpaque bool) ([]byte, error) {
	if len(view) == 0 {
		return dst, nil
	}

	if view[0] == '[' {
		if view[len(view)-1] != ']' {
			return dst, fmt.Errorf("host: bracketed host missing closing ']'")
		}
		addr, err := ParseIPv6(view[1 : len(view)-1])
		if err != nil {
			return dst, err
		}
		dst = append(dst, '[')
		dst = SerializeIPv6(dst, addr)
		dst = append(dst, ']')
		return dst, nil
	}

	if isOpaque {
		if charset.ContainsAny(charset.ForbiddenHost, view) {
			return dst, fmt.Errorf("host: forbidden byte in opaque host")
		}
		return percent.EncodeSlice(dst, view, &charset.C0Control), nil
	}

	// Fast path: a domain with no forbidden-domain byte is appended
	// verbatim, untouched by IDNA or the "ends in a number" check.
	if !charset.ContainsAny(charset.ForbiddenDomain, view) {
		return append(dst, view...), nil
	}

	decoded := percent.DecodeSlice(nil, view)
	asciiDomain, err := ToASCIIDomain(decoded)
	if err != nil {
		return dst, err
	}
	if EndsInANumber([]byte(asciiDomain)) {
		addr, err := ParseIPv4([]byte(asciiDomain))
		if err != nil {
			return dst, err
		}
		return SerializeIPv4(dst, addr), nil
	}
	return append(dst, asciiDomain...), nil
}
