package whatwgurl

import (
	"go-whatwg-url/charset"
	"go-whatwg-url/percent"
	"go-whatwg-url/scheme"
)

// runSolo parses comp in isolation, starting at start, against a scratch
// URL that inherits u's current type/flags (so IsSpecial/HasOpaquePath
// checks inside the state machine see the URL's real classification).
// It never touches u itself, so a failed setter leaves u bit-identical
// to its pre-call state. The parser is returned alongside the scratch
// URL because some setters need its post-run flags (SetHost inspects
// portSeen to tell "no port in the input" from "default port, erase").
func (u *URL) runSolo(comp []byte, start state) (*URL, *parser, error) {
	scratch := New()
	scratch.typ = u.typ
	scratch.flags = u.flags
	p := &parser{url: scratch, input: comp, state: start, solo: true}
	if err := p.run(); err != nil {
		return nil, nil, err
	}
	return scratch, p, nil
}

// shiftOffsetsAfter adds delta to every recorded buffer offset at or
// past from. Port is a value, not an offset, and is never shifted.
func (u *URL) shiftOffsetsAfter(from uint32, delta int64) {
	shift := func(v uint32) uint32 {
		if v == Unset || v < from {
			return v
		}
		return uint32(int64(v) + delta)
	}
	u.c.UsernameEnd = shift(u.c.UsernameEnd)
	u.c.HostStart = shift(u.c.HostStart)
	u.c.HostEnd = shift(u.c.HostEnd)
	u.c.PathStart = shift(u.c.PathStart)
	u.c.QueryStart = shift(u.c.QueryStart)
	u.c.FragmentStart = shift(u.c.FragmentStart)
}

// SetScheme attempts to change the URL's scheme, honoring the usual
// setter compatibility rules: a scheme change may never cross the
// special/non-special boundary, and a special-to-non-file change is
// declined while the URL has an empty host and a non-default port.
func (u *URL) SetScheme(input []byte) (bool, error) {
	scratch, _, err := u.runSolo(append(sanitizeInput(input), ':'), stateSchemeStart)
	if err != nil {
		if IsIgnored(err) {
			return false, nil
		}
		return false, err
	}
	newTyp := scratch.typ

	if u.typ.IsSpecial() && newTyp != scheme.File && u.typ != scheme.File &&
		u.c.HostStart == u.c.HostEnd && u.c.Port != Unset {
		return false, nil
	}
	if newTyp == scheme.File && (u.c.UsernameEnd != u.c.HostStart || u.c.Port != Unset) {
		return false, nil
	}
	if u.typ == scheme.File && u.c.HostStart == u.c.HostEnd {
		return false, nil
	}

	newScheme := scratch.buf.Substring(0, scratch.c.SchemeEnd)
	oldEnd := u.c.SchemeEnd
	delta := u.buf.Replace(0, oldEnd, newScheme)
	u.shiftOffsetsAfter(oldEnd, delta)
	u.c.SchemeEnd = uint32(int64(oldEnd) + delta)
	u.typ = newTyp
	if newTyp.IsSpecial() {
		u.flags |= FlagIsSpecial
	} else {
		u.flags &^= FlagIsSpecial
	}

	if v, has := u.PortValue(); has {
		if dp, ok := newTyp.DefaultPort(); ok && v == dp {
			u.eraseExplicitPort()
		}
	}
	return true, nil
}

// eraseExplicitPort removes a redundant ":NNN" suffix after a scheme
// change makes it equal to the new scheme's default port.
func (u *URL) eraseExplicitPort() {
	delta := u.buf.Erase(u.c.HostEnd, u.c.PathStart)
	u.shiftOffsetsAfter(u.c.PathStart, delta)
	u.c.Port = Unset
}

// SetUsername replaces the username, percent-encoded with the userinfo
// set, via a direct splice rather than a state-machine run: there is no
// parsing decision left to make once the bytes are encoded. Setting a
// username on a URL with no userinfo inserts the trailing '@';
// clearing the last piece of userinfo removes it again.
func (u *URL) SetUsername(input []byte) (bool, error) {
	if u.cannotHaveCredentialsOrPort() {
		return false, nil
	}
	encoded := percent.EncodeSlice(nil, input, charset.Userinfo)
	pos := u.c.SchemeEnd + 3

	if u.c.UsernameEnd == u.c.HostStart {
		// No userinfo yet.
		if len(encoded) == 0 {
			return true, nil
		}
		ins := append(encoded, '@')
		delta := u.buf.Replace(pos, pos, ins)
		u.shiftOffsetsAfter(pos, delta)
		u.c.UsernameEnd = pos + uint32(len(encoded))
		return true, nil
	}

	hasPassword := u.c.HostStart > u.c.UsernameEnd+1
	if len(encoded) == 0 && !hasPassword {
		// "user@" collapses to nothing.
		delta := u.buf.Erase(pos, u.c.HostStart)
		u.shiftOffsetsAfter(pos, delta)
		u.c.UsernameEnd = pos
		return true, nil
	}

	oldEnd := u.c.UsernameEnd
	delta := u.buf.Replace(pos, oldEnd, encoded)
	u.shiftOffsetsAfter(oldEnd, delta)
	u.c.UsernameEnd = uint32(int64(oldEnd) + delta)
	return true, nil
}

// SetPassword replaces the password, percent-encoded with the userinfo
// set, inserting or removing the leading ':' and trailing '@' as
// needed so the buffer keeps the userinfo delimiters consistent with
// what's actually present.
func (u *URL) SetPassword(input []byte) (bool, error) {
	if u.cannotHaveCredentialsOrPort() {
		return false, nil
	}
	encoded := percent.EncodeSlice(nil, input, charset.Userinfo)

	usernameStart := u.c.SchemeEnd + 3
	hasUserinfo := u.c.UsernameEnd != u.c.HostStart
	hasPassword := hasUserinfo && u.c.HostStart > u.c.UsernameEnd+1

	switch {
	case !hasUserinfo:
		// No '@' in the buffer yet.
		if len(encoded) == 0 {
			return true, nil
		}
		ins := append([]byte{':'}, encoded...)
		ins = append(ins, '@')
		pos := u.c.UsernameEnd
		delta := u.buf.Replace(pos, pos, ins)
		u.shiftOffsetsAfter(pos, delta)
		u.c.UsernameEnd = pos
		return true, nil

	case len(encoded) == 0 && hasPassword:
		// Drop ":password"; if the username is empty too, drop the whole
		// "...@" span so no bare '@' lingers.
		oldStart, oldEnd := u.c.UsernameEnd, u.c.HostStart-1
		if u.c.UsernameEnd == usernameStart {
			oldEnd = u.c.HostStart
		}
		delta := u.buf.Erase(oldStart, oldEnd)
		u.shiftOffsetsAfter(oldEnd, delta)
		u.c.UsernameEnd = oldStart
		return true, nil

	case len(encoded) == 0:
		// '@' present but no password to clear.
		return true, nil

	default:
		var span []byte
		span = append(span, ':')
		span = append(span, encoded...)
		oldStart, oldEnd := u.c.UsernameEnd, u.c.HostStart-1
		delta := u.buf.Replace(oldStart, oldEnd, span)
		u.shiftOffsetsAfter(oldEnd, delta)
		u.c.UsernameEnd = oldStart
		return true, nil
	}
}

// SetHost replaces the host (and, if the input carries one, the port)
// via the host state, which per WHATWG is the one state-override target
// allowed to fall through into the port state within the same call.
func (u *URL) SetHost(input []byte) (bool, error) {
	if u.HasOpaquePath() {
		return false, nil
	}
	return u.spliceHostOrHostname(input, stateHost)
}

// SetHostname replaces only the host, leaving any existing port
// untouched; an explicit ":port" suffix in input is parsed up to the
// host and the rest silently ignored, matching the hostname setter's
// WHATWG "state override" semantics.
func (u *URL) SetHostname(input []byte) (bool, error) {
	if u.HasOpaquePath() {
		return false, nil
	}
	return u.spliceHostOrHostname(input, stateHostname)
}

func (u *URL) spliceHostOrHostname(input []byte, start state) (bool, error) {
	scratch, p, err := u.runSolo(sanitizeInput(input), start)
	if err != nil {
		if IsIgnored(err) {
			return false, nil
		}
		return false, err
	}

	newHost := scratch.buf.Substring(scratch.c.HostStart, scratch.c.HostEnd)

	if start == stateHost && p.portSeen {
		// The input carried its own ":port": the old port text is
		// superseded wholesale, whether the new one is an explicit value
		// or the scheme default (which serializes as no port at all).
		oldStart, oldEnd := u.c.HostStart, u.c.PathStart
		span := append([]byte{}, newHost...)
		span = append(span, scratch.buf.Substring(scratch.c.HostEnd, scratch.buf.Len())...)
		delta := u.buf.Replace(oldStart, oldEnd, span)
		u.shiftOffsetsAfter(oldEnd, delta)
		u.c.HostStart = oldStart
		u.c.HostEnd = oldStart + uint32(len(newHost))
		u.c.PathStart = uint32(int64(oldEnd) + delta)
		u.c.Port = scratch.c.Port
		return true, nil
	}

	// Hostname-only change: any existing ":port" text stays in place.
	oldStart, oldEnd := u.c.HostStart, u.c.HostEnd
	delta := u.buf.Replace(oldStart, oldEnd, newHost)
	u.shiftOffsetsAfter(oldEnd, delta)
	u.c.HostStart = oldStart
	u.c.HostEnd = uint32(int64(oldEnd) + delta)
	return true, nil
}

// SetPort replaces the port. Empty input erases it outright via a
// direct splice rather than running the port state, since an empty
// port state run would just produce the same erasure the long way.
func (u *URL) SetPort(input []byte) (bool, error) {
	if u.cannotHaveCredentialsOrPort() {
		return false, nil
	}
	if len(input) == 0 {
		if u.c.Port == Unset {
			return true, nil
		}
		delta := u.buf.Erase(u.c.HostEnd, u.c.PathStart)
		u.shiftOffsetsAfter(u.c.PathStart, delta)
		u.c.Port = Unset
		return true, nil
	}

	scratch, _, err := u.runSolo(sanitizeInput(input), statePort)
	if err != nil {
		if IsIgnored(err) {
			return false, nil
		}
		return false, err
	}

	oldEnd := u.c.PathStart
	newSpan := scratch.buf.Bytes()
	delta := u.buf.Replace(u.c.HostEnd, oldEnd, newSpan)
	u.shiftOffsetsAfter(oldEnd, delta)
	u.c.PathStart = uint32(int64(oldEnd) + delta)
	u.c.Port = scratch.c.Port
	return true, nil
}

// SetPath replaces the path. Per WHATWG, the path setter rebuilds the
// whole path from scratch against the given value rather than patching
// the existing one. An opaque-path URL declines the change and is left
// untouched.
func (u *URL) SetPath(input []byte) (bool, error) {
	if u.HasOpaquePath() {
		return false, nil
	}
	scratch, _, err := u.runSolo(sanitizeInput(input), statePathStart)
	if err != nil {
		return false, err
	}

	oldEnd := u.buf.Len()
	switch {
	case u.c.QueryStart != Unset:
		oldEnd = u.c.QueryStart - 1
	case u.c.FragmentStart != Unset:
		oldEnd = u.c.FragmentStart - 1
	}

	newPath := scratch.buf.Substring(scratch.c.PathStart, scratch.buf.Len())
	delta := u.buf.Replace(u.c.PathStart, oldEnd, newPath)
	u.shiftOffsetsAfter(oldEnd, delta)
	return true, nil
}

// SetQuery replaces the query. Empty input removes the query entirely
// (a no-op if already absent); non-empty input is percent-encoded with
// the query (or special-query) set directly, without re-entering the
// state machine, since query content needs no dot-segment handling.
func (u *URL) SetQuery(input []byte) (bool, error) {
	if len(input) > 0 && input[0] == '?' {
		input = input[1:]
	}
	if len(input) == 0 {
		if u.c.QueryStart == Unset {
			return true, nil
		}
		end := u.buf.Len()
		if u.c.FragmentStart != Unset {
			end = u.c.FragmentStart - 1
		}
		delta := u.buf.Erase(u.c.QueryStart-1, end)
		u.shiftOffsetsAfter(end, delta)
		u.c.QueryStart = Unset
		return true, nil
	}

	set := charset.Query
	if u.IsSpecial() {
		set = charset.SpecialQuery
	}
	encoded := percent.EncodeSlice(nil, sanitizeInput(input), set)

	if u.c.QueryStart == Unset {
		insertAt := u.buf.Len()
		if u.c.FragmentStart != Unset {
			insertAt = u.c.FragmentStart - 1
		}
		replacement := append([]byte{'?'}, encoded...)
		delta := u.buf.Replace(insertAt, insertAt, replacement)
		u.shiftOffsetsAfter(insertAt, delta)
		u.c.QueryStart = insertAt + 1
		return true, nil
	}

	end := u.buf.Len()
	if u.c.FragmentStart != Unset {
		end = u.c.FragmentStart - 1
	}
	delta := u.buf.Replace(u.c.QueryStart, end, encoded)
	u.shiftOffsetsAfter(end, delta)
	return true, nil
}

// SetFragment replaces the fragment. Empty input removes it entirely.
func (u *URL) SetFragment(input []byte) (bool, error) {
	if len(input) > 0 && input[0] == '#' {
		input = input[1:]
	}
	if len(input) == 0 {
		if u.c.FragmentStart == Unset {
			return true, nil
		}
		u.buf.Truncate(u.c.FragmentStart - 1)
		u.c.FragmentStart = Unset
		return true, nil
	}

	encoded := percent.EncodeSlice(nil, sanitizeInput(input), charset.Fragment)
	if u.c.FragmentStart == Unset {
		u.buf.AppendByte('#')
		u.c.FragmentStart = u.buf.Len()
		u.buf.AppendSlice(encoded)
		return true, nil
	}
	_ = u.buf.Replace(u.c.FragmentStart, u.buf.Len(), encoded)
	return true, nil
}

// SetHref replaces the entire URL by reparsing input from scratch with
// no base, applying only on success; on failure the URL is left
// unchanged.
func (u *URL) SetHref(input []byte) (bool, error) {
	parsed, err := Parse(input, nil)
	if err != nil {
		return false, err
	}
	*u = *parsed
	return true, nil
}

