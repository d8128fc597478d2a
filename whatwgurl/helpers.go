package whatwgurl

import "go-whatwg-url/charset"

// isWindowsDriveLetter reports whether b is exactly two bytes, an
// ASCII letter followed by ':' or '|'.
func isWindowsDriveLetter(b []byte) bool {
	return len(b) == 2 && charset.IsAlpha(b[0]) && (b[1] == ':' || b[1] == '|')
}

// isNormalizedWindowsDriveLetter reports whether b is exactly two
// bytes, an ASCII letter followed by ':'.
func isNormalizedWindowsDriveLetter(b []byte) bool {
	return len(b) == 2 && charset.IsAlpha(b[0]) && b[1] == ':'
}

// startsWithWindowsDriveLetter reports whether b begins with a Windows
// drive letter that is either the whole of b or immediately followed
// by '/', '\\', '?', or '#'.
func startsWithWindowsDriveLetter(b []byte) bool {
	if len(b) < 2 || !charset.IsAlpha(b[0]) || (b[1] != ':' && b[1] != '|') {
		return false
	}
	if len(b) == 2 {
		return true
	}
	switch b[2] {
	case '/', '\\', '?', '#':
		return true
	default:
		return false
	}
}

// isSingleDotPathSegment reports whether b is "." or "%2e",
// case-insensitively.
func isSingleDotPathSegment(b []byte) bool {
	if len(b) == 1 && b[0] == '.' {
		return true
	}
	return len(b) == 3 && b[0] == '%' && b[1] == '2' && (b[2] == 'e' || b[2] == 'E')
}

// isDoubleDotPathSegment reports whether b is "..", ".%2e", "%2e.", or
// "%2e%2e", case-insensitively.
func isDoubleDotPathSegment(b []byte) bool {
	if len(b) == 2 && b[0] == '.' && b[1] == '.' {
		return true
	}
	isEncodedDot := func(s []byte) bool {
		return len(s) == 3 && s[0] == '%' && s[1] == '2' && (s[2] == 'e' || s[2] == 'E')
	}
	if len(b) == 4 && b[0] == '.' && isEncodedDot(b[1:]) {
		return true
	}
	if len(b) == 4 && isEncodedDot(b[:3]) && b[3] == '.' {
		return true
	}
	if len(b) == 6 && isEncodedDot(b[:3]) && isEncodedDot(b[3:]) {
		return true
	}
	return false
}

// lastSlash returns the index of the last '/' in b, or -1.
func lastSlash(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == '/' {
			return i
		}
	}
	return -1
}
