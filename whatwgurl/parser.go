package whatwgurl

import (
	"strconv"

	"go-whatwg-url/charset"
	"go-whatwg-url/host"
	"go-whatwg-url/percent"
	"go-whatwg-url/scheme"
)

// state is one of the 21 states of the basic URL parser.
type state uint8

const (
	stateSchemeStart state = iota
	stateScheme
	stateNoScheme
	stateSpecialRelativeOrAuthority
	statePathOrAuthority
	stateRelative
	stateRelativeSlash
	stateSpecialAuthoritySlashes
	stateSpecialAuthorityIgnoreSlashes
	stateAuthority
	stateHost
	stateHostname
	statePort
	stateFile
	stateFileSlash
	stateFileHost
	statePathStart
	statePath
	stateOpaquePath
	stateQuery
	stateFragment
)

// eof is the sentinel value for "one past the last input byte", kept as
// an explicit int rather than folded into a byte so every terminator
// check that compares against it reads the same whether the cursor sits
// on a real byte or past the end.
const eof = -1

// parser drives the state machine. A single parser value is used both
// for a from-scratch Parse and, by setters.go,
// for a "solo" run that starts at a non-zero state and stops as soon as
// that state (and, for host, the state it can fall through to) reaches
// its own natural terminator — this is how setters reuse the exact same
// per-state logic as the full parser without duplicating it.
type parser struct {
	url               *URL
	input             []byte
	base              *URL
	state             state
	pointer           int
	tmp               []byte
	enc               []byte
	atSignSeen        bool
	insideBrackets    bool
	passwordTokenSeen bool
	portSeen          bool
	solo              bool
}

// Parse implements the basic URL parser from scratch, always entering
// at scheme-start. base may be nil. On failure the
// returned URL is nil and the error's kind is ErrKindParseFatal.
func Parse(input []byte, base *URL) (*URL, error) {
	u := New()
	p := &parser{url: u, input: sanitizeInput(input), base: base, state: stateSchemeStart}
	if err := p.run(); err != nil {
		u.reset()
		return nil, err
	}
	return u, nil
}

// sanitizeInput strips leading/trailing C0-control-or-space and removes
// embedded tab/CR/LF, the WHATWG basic URL parser's input preprocessing
// step, so callers don't have to pre-trim every href they hand us.
func sanitizeInput(input []byte) []byte {
	start, end := 0, len(input)
	isC0OrSpace := func(b byte) bool { return b <= 0x20 }
	for start < end && isC0OrSpace(input[start]) {
		start++
	}
	for end > start && isC0OrSpace(input[end-1]) {
		end--
	}
	input = input[start:end]

	out := make([]byte, 0, len(input))
	for _, b := range input {
		if b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (p *parser) run() error {
	for {
		c := eof
		if p.pointer >= 0 && p.pointer < len(p.input) {
			c = int(p.input[p.pointer])
		}
		done, err := p.step(c)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		p.pointer++
	}
}

func (p *parser) peekNext() (byte, bool) {
	if p.pointer+1 < len(p.input) {
		return p.input[p.pointer+1], true
	}
	return 0, false
}

func isSpecialBackslash(u *URL, c int) bool {
	return u.IsSpecial() && c == '\\'
}

func isPathTerminator(u *URL, c int) bool {
	return c == eof || c == '/' || c == '?' || c == '#' || isSpecialBackslash(u, c)
}

func (p *parser) step(c int) (done bool, err error) {
	switch p.state {
	case stateSchemeStart:
		return p.stepSchemeStart(c)
	case stateScheme:
		return p.stepScheme(c)
	case stateNoScheme:
		return p.stepNoScheme(c)
	case stateSpecialRelativeOrAuthority:
		return p.stepSpecialRelativeOrAuthority(c)
	case statePathOrAuthority:
		return p.stepPathOrAuthority(c)
	case stateRelative:
		return p.stepRelative(c)
	case stateRelativeSlash:
		return p.stepRelativeSlash(c)
	case stateSpecialAuthoritySlashes:
		return p.stepSpecialAuthoritySlashes(c)
	case stateSpecialAuthorityIgnoreSlashes:
		return p.stepSpecialAuthorityIgnoreSlashes(c)
	case stateAuthority:
		return p.stepAuthority(c)
	case stateHost, stateHostname:
		return p.stepHost(c)
	case statePort:
		return p.stepPort(c)
	case stateFile:
		return p.stepFile(c)
	case stateFileSlash:
		return p.stepFileSlash(c)
	case stateFileHost:
		return p.stepFileHost(c)
	case statePathStart:
		return p.stepPathStart(c)
	case statePath:
		return p.stepPath(c)
	case stateOpaquePath:
		return p.stepOpaquePath(c)
	case stateQuery:
		return p.stepQuery(c)
	case stateFragment:
		return p.stepFragment(c)
	}
	return false, fatalf("parser: unreachable state %d", p.state)
}

func (p *parser) stepSchemeStart(c int) (bool, error) {
	if c != eof && charset.IsAlpha(byte(c)) {
		p.tmp = append(p.tmp, charset.ToLower(byte(c)))
		p.state = stateScheme
		return false, nil
	}
	if p.solo {
		return false, fatalf("scheme-start: scheme must begin with an ASCII letter")
	}
	p.pointer--
	p.state = stateNoScheme
	return false, nil
}

func (p *parser) stepScheme(c int) (bool, error) {
	if c != eof && (charset.IsAlphanumeric(byte(c)) || c == '+' || c == '-' || c == '.') {
		ch := byte(c)
		if charset.IsUpperAlpha(ch) {
			ch = charset.ToLower(ch)
		}
		p.tmp = append(p.tmp, ch)
		return false, nil
	}
	if c == ':' {
		return p.finishScheme()
	}
	if p.solo {
		return false, fatalf("scheme: invalid scheme %q", p.tmp)
	}
	p.tmp = p.tmp[:0]
	p.pointer = -1
	p.state = stateNoScheme
	return false, nil
}

func (p *parser) finishScheme() (bool, error) {
	u := p.url
	typ := scheme.Classify(p.tmp)

	if p.solo {
		// Setter re-entry: a scheme change that flips specialness is
		// declined rather than applied. SetScheme itself checks the
		// remaining cases (empty host with a port, file transitions).
		if typ.IsSpecial() != u.typ.IsSpecial() {
			return false, ignored("scheme: cannot change between special and non-special")
		}
	}

	u.typ = typ
	if typ.IsSpecial() {
		u.flags |= FlagIsSpecial
	} else {
		u.flags &^= FlagIsSpecial
	}
	u.buf.AppendSlice(p.tmp)
	u.buf.AppendByte(':')
	u.c.SchemeEnd = u.buf.Len() - 1
	p.tmp = p.tmp[:0]

	if p.solo {
		return true, nil
	}

	switch {
	case typ == scheme.File:
		u.buf.AppendString("//")
		pos := u.buf.Len()
		u.c.UsernameEnd, u.c.HostStart, u.c.HostEnd, u.c.PathStart = pos, pos, pos, pos
		p.state = stateFile
	case typ.IsSpecial() && p.base != nil && p.base.typ == typ:
		p.state = stateSpecialRelativeOrAuthority
	case typ.IsSpecial():
		u.buf.AppendString("//")
		u.c.UsernameEnd = u.buf.Len()
		p.state = stateSpecialAuthoritySlashes
	default:
		if nb, ok := p.peekNext(); ok && nb == '/' {
			u.c.UsernameEnd = u.buf.Len()
			p.state = statePathOrAuthority
			p.pointer++
		} else {
			u.flags |= FlagHasOpaquePath
			pos := u.buf.Len()
			u.c.UsernameEnd, u.c.HostStart, u.c.HostEnd, u.c.PathStart = pos, pos, pos, pos
			p.state = stateOpaquePath
		}
	}
	return false, nil
}

func (p *parser) stepNoScheme(c int) (bool, error) {
	if p.base == nil {
		return false, fatalf("no-scheme: relative reference without a base")
	}
	u := p.url
	b := p.base

	if b.HasOpaquePath() {
		if c != '#' {
			return false, fatalf("no-scheme: base has an opaque path and input has no fragment")
		}
		u.typ = b.typ
		u.flags = b.flags
		u.buf.AppendSlice(b.Scheme())
		u.buf.AppendByte(':')
		u.c.SchemeEnd = u.buf.Len() - 1
		pos := u.buf.Len()
		u.buf.AppendSlice(b.Path())
		u.c.UsernameEnd, u.c.HostStart, u.c.HostEnd, u.c.PathStart = pos, pos, pos, pos
		if b.c.QueryStart != Unset {
			u.buf.AppendByte('?')
			u.c.QueryStart = u.buf.Len()
			u.buf.AppendSlice(b.Query())
		}
		u.buf.AppendByte('#')
		u.c.FragmentStart = u.buf.Len()
		p.state = stateFragment
		return false, nil
	}

	if b.typ == scheme.File {
		u.typ = scheme.File
		u.flags |= FlagIsSpecial
		u.buf.AppendString("file://")
		u.c.SchemeEnd = 4
		pos := u.buf.Len()
		u.c.UsernameEnd, u.c.HostStart, u.c.HostEnd, u.c.PathStart = pos, pos, pos, pos
		p.state = stateFile
		p.pointer--
		return false, nil
	}

	p.state = stateRelative
	p.pointer--
	return false, nil
}

func (p *parser) stepSpecialRelativeOrAuthority(c int) (bool, error) {
	if c == '/' {
		if nb, ok := p.peekNext(); ok && nb == '/' {
			u := p.url
			u.buf.AppendString("//")
			u.c.UsernameEnd = u.buf.Len()
			p.pointer++
			p.state = stateSpecialAuthorityIgnoreSlashes
			return false, nil
		}
	}
	p.pointer--
	p.state = stateRelative
	return false, nil
}

func (p *parser) stepPathOrAuthority(c int) (bool, error) {
	u := p.url
	if c == '/' {
		u.buf.AppendString("//")
		u.c.UsernameEnd = u.buf.Len()
		p.state = stateAuthority
		return false, nil
	}
	pos := u.buf.Len()
	u.c.UsernameEnd, u.c.HostStart, u.c.HostEnd, u.c.PathStart = pos, pos, pos, pos
	p.pointer--
	p.state = statePath
	return false, nil
}

// copyBaseAuthority copies base's already-canonical
// "//[userinfo@]host[:port]" span verbatim and re-bases the offsets it
// covers onto u's buffer. A base without an authority (a non-special
// URL whose path immediately follows the scheme) contributes nothing;
// a base with an empty host still contributes its "//" marker, so
// "scheme:///foo" resolves relative references back to "scheme:///...".
func (p *parser) copyBaseAuthority() {
	u, b := p.url, p.base
	authStart := b.c.SchemeEnd + 3
	if b.c.HostStart < authStart {
		pos := u.buf.Len()
		u.c.UsernameEnd, u.c.HostStart, u.c.HostEnd = pos, pos, pos
		u.c.PathStart = pos
		return
	}
	u.buf.AppendString("//")
	offset := int64(u.buf.Len()) - int64(authStart)
	u.buf.AppendSlice(b.buf.Substring(authStart, b.c.PathStart))
	u.c.UsernameEnd = uint32(int64(b.c.UsernameEnd) + offset)
	u.c.HostStart = uint32(int64(b.c.HostStart) + offset)
	u.c.HostEnd = uint32(int64(b.c.HostEnd) + offset)
	u.c.Port = b.c.Port
	u.c.PathStart = u.buf.Len()
}

func (p *parser) copyBasePath() {
	u, b := p.url, p.base
	u.c.PathStart = u.buf.Len()
	u.buf.AppendSlice(b.Path())
}

func (p *parser) shortenPath() {
	u := p.url
	path := u.buf.Substring(u.c.PathStart, u.buf.Len())
	idx := lastSlash(path)
	if idx < 0 {
		return
	}
	if u.typ == scheme.File && idx == 0 && isNormalizedWindowsDriveLetter(path[1:]) {
		return
	}
	u.buf.Truncate(u.c.PathStart + uint32(idx))
}

func (p *parser) stepRelative(c int) (bool, error) {
	u, b := p.url, p.base
	if u.c.SchemeEnd == 0 {
		u.typ = b.typ
		u.flags = b.flags &^ FlagHasOpaquePath
		u.buf.AppendSlice(b.Scheme())
		u.buf.AppendByte(':')
		u.c.SchemeEnd = u.buf.Len() - 1
	}
	if c == '/' || isSpecialBackslash(u, c) {
		p.state = stateRelativeSlash
		return false, nil
	}

	p.copyBaseAuthority()
	p.copyBasePath()

	switch c {
	case '?':
		u.buf.AppendByte('?')
		u.c.QueryStart = u.buf.Len()
		p.state = stateQuery
		return false, nil
	case '#':
		u.buf.AppendByte('#')
		u.c.FragmentStart = u.buf.Len()
		p.state = stateFragment
		return false, nil
	case eof:
		if b.c.QueryStart != Unset {
			u.buf.AppendByte('?')
			u.c.QueryStart = u.buf.Len()
			u.buf.AppendSlice(b.Query())
		}
		return true, nil
	default:
		p.shortenPath()
		p.pointer--
		p.state = statePath
		return false, nil
	}
}

func (p *parser) stepRelativeSlash(c int) (bool, error) {
	u := p.url
	if u.IsSpecial() && (c == '/' || c == '\\') {
		u.buf.AppendString("//")
		u.c.UsernameEnd = u.buf.Len()
		p.state = stateSpecialAuthorityIgnoreSlashes
		return false, nil
	}
	if c == '/' {
		u.buf.AppendString("//")
		u.c.UsernameEnd = u.buf.Len()
		p.state = stateAuthority
		return false, nil
	}
	p.copyBaseAuthority()
	p.pointer--
	p.state = statePath
	return false, nil
}

func (p *parser) stepSpecialAuthoritySlashes(c int) (bool, error) {
	if c == '/' {
		if nb, ok := p.peekNext(); ok && nb == '/' {
			p.pointer++
			p.state = stateSpecialAuthorityIgnoreSlashes
			return false, nil
		}
	}
	p.pointer--
	p.state = stateSpecialAuthorityIgnoreSlashes
	return false, nil
}

func (p *parser) stepSpecialAuthorityIgnoreSlashes(c int) (bool, error) {
	if c == '/' || c == '\\' {
		return false, nil
	}
	p.pointer--
	p.state = stateAuthority
	return false, nil
}

func (p *parser) stepAuthority(c int) (bool, error) {
	u := p.url
	if c == '@' {
		if p.atSignSeen {
			p.tmp = append([]byte("%40"), p.tmp...)
		}
		p.atSignSeen = true

		// The first ':' ever seen across all '@'-delimited chunks is the
		// password separator; every later one is just a userinfo byte.
		for _, b := range p.tmp {
			if b == ':' && !p.passwordTokenSeen {
				p.passwordTokenSeen = true
				u.c.UsernameEnd = u.buf.Len()
				u.buf.AppendByte(':')
				continue
			}
			p.enc = percent.EncodeByte(p.enc[:0], b, charset.Userinfo)
			u.buf.AppendSlice(p.enc)
		}
		if !p.passwordTokenSeen {
			u.c.UsernameEnd = u.buf.Len()
		}
		u.buf.AppendByte('@')
		p.tmp = p.tmp[:0]
		return false, nil
	}

	if isPathTerminator(u, c) {
		if p.atSignSeen && len(p.tmp) == 0 {
			return false, fatalf("authority: '@' with empty userinfo")
		}
		p.pointer -= len(p.tmp) + 1
		p.tmp = p.tmp[:0]
		p.state = stateHost
		return false, nil
	}

	p.tmp = append(p.tmp, byte(c))
	return false, nil
}

func (p *parser) stepHost(c int) (bool, error) {
	u := p.url

	if c == ':' && !p.insideBrackets {
		if len(p.tmp) == 0 {
			return false, fatalf("host: empty host before ':'")
		}
		bs, err := host.Parse(nil, p.tmp, !u.IsSpecial())
		if err != nil {
			return false, fatalf("%v", err)
		}
		u.c.HostStart = u.buf.Len()
		u.buf.AppendSlice(bs)
		u.c.HostEnd = u.buf.Len()
		p.tmp = p.tmp[:0]
		if p.state == stateHostname {
			return true, nil
		}
		p.state = statePort
		return false, nil
	}

	if isPathTerminator(u, c) {
		if u.IsSpecial() && len(p.tmp) == 0 {
			return false, fatalf("host: empty host for a special scheme")
		}
		bs, err := host.Parse(nil, p.tmp, !u.IsSpecial())
		if err != nil {
			return false, fatalf("%v", err)
		}
		u.c.HostStart = u.buf.Len()
		u.buf.AppendSlice(bs)
		u.c.HostEnd = u.buf.Len()
		p.tmp = p.tmp[:0]
		if p.solo {
			return true, nil
		}
		u.c.PathStart = u.buf.Len()
		p.pointer--
		p.state = statePathStart
		return false, nil
	}

	if c == '[' {
		p.insideBrackets = true
	} else if c == ']' {
		p.insideBrackets = false
	}
	p.tmp = append(p.tmp, byte(c))
	return false, nil
}

func (p *parser) stepPort(c int) (bool, error) {
	u := p.url
	if c != eof && charset.IsDigit(byte(c)) {
		p.tmp = append(p.tmp, byte(c))
		return false, nil
	}
	if isPathTerminator(u, c) {
		if len(p.tmp) > 0 {
			p.portSeen = true
			val, err := strconv.ParseUint(string(p.tmp), 10, 32)
			if err != nil || val > 65535 {
				return false, fatalf("port: %q is out of range", p.tmp)
			}
			if dp, ok := u.typ.DefaultPort(); ok && uint16(val) == dp {
				u.c.Port = Unset
			} else {
				// The recorded text is the canonical decimal form, so a
				// "0080" in the input serializes back as "80".
				u.buf.AppendByte(':')
				u.buf.AppendSlice(strconv.AppendUint(nil, val, 10))
				u.c.Port = uint32(val)
			}
		}
		p.tmp = p.tmp[:0]
		if p.solo {
			return true, nil
		}
		u.c.PathStart = u.buf.Len()
		p.pointer--
		p.state = statePathStart
		return false, nil
	}
	return false, fatalf("port: invalid digit %q", rune(c))
}

func (p *parser) stepFile(c int) (bool, error) {
	u := p.url
	if c == '/' || c == '\\' {
		p.state = stateFileSlash
		return false, nil
	}
	if p.base != nil && p.base.typ == scheme.File {
		b := p.base
		u.c.HostStart = u.buf.Len()
		u.buf.AppendSlice(b.Host())
		u.c.HostEnd = u.buf.Len()
		u.c.PathStart = u.buf.Len()

		switch c {
		case '?':
			u.buf.AppendSlice(b.Path())
			u.buf.AppendByte('?')
			u.c.QueryStart = u.buf.Len()
			p.state = stateQuery
			return false, nil
		case '#':
			u.buf.AppendSlice(b.Path())
			u.buf.AppendByte('#')
			u.c.FragmentStart = u.buf.Len()
			p.state = stateFragment
			return false, nil
		case eof:
			u.buf.AppendSlice(b.Path())
			if b.c.QueryStart != Unset {
				u.buf.AppendByte('?')
				u.c.QueryStart = u.buf.Len()
				u.buf.AppendSlice(b.Query())
			}
			return true, nil
		default:
			if !startsWithWindowsDriveLetter(p.input[p.pointer:]) {
				u.buf.AppendSlice(b.Path())
				p.shortenPath()
			}
			p.pointer--
			p.state = statePath
			return false, nil
		}
	}
	p.pointer--
	p.state = statePath
	return false, nil
}

func (p *parser) stepFileSlash(c int) (bool, error) {
	u := p.url
	if c == '/' || c == '\\' {
		p.state = stateFileHost
		return false, nil
	}
	if p.base != nil && p.base.typ == scheme.File {
		u.c.HostStart = u.buf.Len()
		u.buf.AppendSlice(p.base.Host())
		u.c.HostEnd = u.buf.Len()
		u.c.PathStart = u.buf.Len()
		if !startsWithWindowsDriveLetter(p.input[p.pointer:]) {
			bp := p.base.Path()
			if len(bp) >= 3 && bp[0] == '/' && isNormalizedWindowsDriveLetter(bp[1:3]) {
				u.buf.AppendSlice(bp[:3])
			}
		}
	} else {
		u.c.PathStart = u.buf.Len()
	}
	p.pointer--
	p.state = statePath
	return false, nil
}

func (p *parser) stepFileHost(c int) (bool, error) {
	u := p.url
	if c == eof || c == '/' || c == '\\' || c == '?' || c == '#' {
		p.pointer--
		if isWindowsDriveLetter(p.tmp) {
			// A bare drive letter is a path component, not a host: keep
			// the accumulated bytes and let the path state flush them as
			// its first segment.
			u.c.HostStart = u.buf.Len()
			u.c.HostEnd = u.buf.Len()
			u.c.PathStart = u.buf.Len()
			p.state = statePath
			return false, nil
		}
		if len(p.tmp) == 0 {
			u.c.HostStart = u.buf.Len()
			u.c.HostEnd = u.buf.Len()
		} else {
			bs, err := host.Parse(nil, p.tmp, false)
			if err != nil {
				return false, fatalf("%v", err)
			}
			u.c.HostStart = u.buf.Len()
			u.buf.AppendSlice(bs)
			u.c.HostEnd = u.buf.Len()
			p.tmp = p.tmp[:0]
		}
		u.c.PathStart = u.buf.Len()
		p.state = statePathStart
		return false, nil
	}
	p.tmp = append(p.tmp, byte(c))
	return false, nil
}

func (p *parser) stepPathStart(c int) (bool, error) {
	u := p.url
	if u.IsSpecial() {
		p.state = statePath
		if c != '/' && c != '\\' {
			p.pointer--
		}
		return false, nil
	}
	switch c {
	case '?':
		u.buf.AppendByte('?')
		u.c.QueryStart = u.buf.Len()
		p.state = stateQuery
	case '#':
		u.buf.AppendByte('#')
		u.c.FragmentStart = u.buf.Len()
		p.state = stateFragment
	case eof:
		return true, nil
	default:
		p.state = statePath
		if c != '/' {
			p.pointer--
		}
	}
	return false, nil
}

func (p *parser) stepPath(c int) (bool, error) {
	u := p.url
	if isPathTerminator(u, c) {
		switch {
		case isDoubleDotPathSegment(p.tmp):
			p.shortenPath()
			if c != '/' && !isSpecialBackslash(u, c) {
				u.buf.AppendByte('/')
			}
		case isSingleDotPathSegment(p.tmp):
			if c != '/' && !isSpecialBackslash(u, c) {
				u.buf.AppendByte('/')
			}
		default:
			if u.typ == scheme.File && u.buf.Len() == u.c.PathStart && isWindowsDriveLetter(p.tmp) {
				p.tmp[1] = ':'
			}
			u.buf.AppendByte('/')
			u.buf.AppendSlice(p.tmp)
		}
		p.tmp = p.tmp[:0]

		switch c {
		case '?':
			u.buf.AppendByte('?')
			u.c.QueryStart = u.buf.Len()
			p.state = stateQuery
		case '#':
			u.buf.AppendByte('#')
			u.c.FragmentStart = u.buf.Len()
			p.state = stateFragment
		case eof:
			return true, nil
		}
		return false, nil
	}

	p.tmp = percent.EncodeByte(p.tmp, byte(c), charset.Path)
	return false, nil
}

func (p *parser) stepOpaquePath(c int) (bool, error) {
	u := p.url
	switch c {
	case '?':
		u.buf.AppendByte('?')
		u.c.QueryStart = u.buf.Len()
		p.state = stateQuery
		return false, nil
	case '#':
		u.buf.AppendByte('#')
		u.c.FragmentStart = u.buf.Len()
		p.state = stateFragment
		return false, nil
	case eof:
		return true, nil
	default:
		u.buf.AppendSlice(percent.EncodeByte(nil, byte(c), &charset.C0Control))
		return false, nil
	}
}

func (p *parser) stepQuery(c int) (bool, error) {
	u := p.url
	if c == '#' || c == eof {
		set := charset.Query
		if u.IsSpecial() {
			set = charset.SpecialQuery
		}
		u.buf.AppendSlice(percent.EncodeSlice(nil, p.tmp, set))
		p.tmp = p.tmp[:0]
		if c == '#' {
			u.buf.AppendByte('#')
			u.c.FragmentStart = u.buf.Len()
			p.state = stateFragment
			return false, nil
		}
		return true, nil
	}
	p.tmp = append(p.tmp, byte(c))
	return false, nil
}

// stepFragment bulk-encodes the remainder of the input in one shot and
// terminates the parse: nothing follows a fragment, so there is no
// need to consume it byte by byte.
func (p *parser) stepFragment(int) (bool, error) {
	u := p.url
	rest := p.input[p.pointer:]
	u.buf.AppendSlice(percent.EncodeSlice(nil, rest, charset.Fragment))
	return true, nil
}
