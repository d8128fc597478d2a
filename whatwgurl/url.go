// Package whatwgurl implements the WHATWG URL Standard's basic URL
// parser and the URL object's accessors and setters: a byte-offset
// object model over a single canonical buffer, rather than a tree of
// substrings, so buffer growth never invalidates a previously recorded
// cursor.
package whatwgurl

import (
	"go-whatwg-url/buffer"
	"go-whatwg-url/scheme"
)

// Flags holds the two independent bits the data model tracks besides
// the scheme type.
type Flags uint8

const (
	// FlagIsSpecial is set when the URL's scheme is one of the six
	// special schemes. It is kept alongside Type for quick testing
	// without a method call in hot paths.
	FlagIsSpecial Flags = 1 << iota
	// FlagHasOpaquePath is set when the scheme is not special, the URL
	// has no authority, and the path is a single opaque string rather
	// than a '/'-separated sequence.
	FlagHasOpaquePath
)

// Unset is the sentinel value for an absent offset or port.
const Unset uint32 = ^uint32(0)

// Components holds the eight byte offsets (or, for Port, the numeric
// value) that locate each part of the URL within its buffer.
type Components struct {
	SchemeEnd     uint32
	UsernameEnd   uint32
	HostStart     uint32
	HostEnd       uint32
	Port          uint32
	PathStart     uint32
	QueryStart    uint32
	FragmentStart uint32
}

// URL is a parsed, canonically-serialized URL. The zero value is not
// usable; construct one with New.
type URL struct {
	flags Flags
	typ   scheme.Type
	buf   *buffer.Buffer
	c     Components
}

// New returns a URL in its initial state: zero flags, opaque type, all
// offsets zero except Port/QueryStart/FragmentStart which are Unset,
// empty buffer.
func New() *URL {
	u := &URL{buf: buffer.New()}
	u.reset()
	return u
}

func (u *URL) reset() {
	u.flags = 0
	u.typ = scheme.Opaque
	u.buf.Reset()
	u.c = Components{
		Port:          Unset,
		QueryStart:    Unset,
		FragmentStart: Unset,
	}
}

// Type reports the URL's special-scheme classification.
func (u *URL) Type() scheme.Type { return u.typ }

// IsSpecial reports whether the URL's scheme is one of the six special
// schemes.
func (u *URL) IsSpecial() bool { return u.flags&FlagIsSpecial != 0 }

// HasOpaquePath reports whether the URL's path is a single opaque
// string rather than a '/'-separated sequence with an authority.
func (u *URL) HasOpaquePath() bool { return u.flags&FlagHasOpaquePath != 0 }

// Href returns the full canonical serialization.
func (u *URL) Href() []byte {
	return u.buf.Bytes()
}

// Scheme returns the scheme, not including the trailing ':'.
func (u *URL) Scheme() []byte {
	return u.buf.Substring(0, u.c.SchemeEnd)
}

// Username returns the percent-encoded username, empty for an
// authority-less URL since UsernameEnd never exceeds SchemeEnd+3 in
// that case and Substring clamps such spans to empty.
func (u *URL) Username() []byte {
	return u.buf.Substring(u.c.SchemeEnd+3, u.c.UsernameEnd)
}

// Password returns the percent-encoded password, excluding both the
// leading ':' and the trailing '@'.
func (u *URL) Password() []byte {
	if u.c.UsernameEnd == u.c.HostStart {
		return nil
	}
	return u.buf.Substring(u.c.UsernameEnd+1, u.c.HostStart-1)
}

// Host returns the canonical host (domain, IPv4, or bracketed IPv6).
func (u *URL) Host() []byte {
	return u.buf.Substring(u.c.HostStart, u.c.HostEnd)
}

// Port returns the textual port, empty if absent or equal to the
// scheme's default port.
func (u *URL) Port() []byte {
	return u.buf.Substring(u.c.HostEnd+1, u.c.PathStart)
}

// PortValue returns the numeric port and whether one is set.
func (u *URL) PortValue() (uint16, bool) {
	if u.c.Port == Unset {
		return 0, false
	}
	return uint16(u.c.Port), true
}

// Path returns the path, including its leading '/' for non-opaque
// paths.
func (u *URL) Path() []byte {
	end := u.buf.Len()
	switch {
	case u.c.QueryStart != Unset:
		end = u.c.QueryStart - 1
	case u.c.FragmentStart != Unset:
		end = u.c.FragmentStart - 1
	}
	return u.buf.Substring(u.c.PathStart, end)
}

// Query returns the query content, excluding the leading '?', or nil
// if absent.
func (u *URL) Query() []byte {
	if u.c.QueryStart == Unset {
		return nil
	}
	end := u.buf.Len()
	if u.c.FragmentStart != Unset {
		end = u.c.FragmentStart - 1
	}
	return u.buf.Substring(u.c.QueryStart, end)
}

// Fragment returns the fragment content, excluding the leading '#', or
// nil if absent.
func (u *URL) Fragment() []byte {
	if u.c.FragmentStart == Unset {
		return nil
	}
	return u.buf.Substring(u.c.FragmentStart, u.buf.Len())
}

// cannotHaveCredentialsOrPort reports whether the URL categorically
// rejects username/password/port: an empty host, or a file URL (file
// URLs never carry credentials or a port).
func (u *URL) cannotHaveCredentialsOrPort() bool {
	return u.c.HostStart == u.c.HostEnd || u.typ == scheme.File
}
