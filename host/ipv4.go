package host

import (
	"bytes"
	"fmt"
	"strconv"
)

// parseIPv4Number parses a single dot-separated IPv4 part: radix is
// decided from a leading prefix (0x/0X = hex, a leading 0 with more
// digits = octal, else decimal), multiplying the
// remaining digits into a uint64 so overflow beyond 32 bits can be
// detected by the caller after composing all parts.
func parseIPv4Number(part []byte) (uint64, error) {
	if len(part) == 0 {
		return 0, fmt.Errorf("ipv4: empty part")
	}

	radix := 10
	rest := part
	if len(rest) >= 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		radix = 16
		rest = rest[2:]
	} else if len(rest) >= 1 && rest[0] == '0' && len(rest) > 1 {
		radix = 8
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return 0, fmt.Errorf("ipv4: empty part after radix prefix")
	}

	var value uint64
	for _, c := range rest {
		d, ok := digitValue(c, radix)
		if !ok {
			return 0, fmt.Errorf("ipv4: invalid digit %q for radix %d", c, radix)
		}
		value = value*uint64(radix) + uint64(d)
	}
	return value, nil
}

func digitValue(c byte, radix int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= radix {
		return 0, false
	}
	return d, true
}

// ParseIPv4 parses the dot-separated IPv4 literal in input, returning
// the address as a big-endian uint32: split on '.' into at most 4
// parts (a trailing empty part from an input ending in '.' is allowed
// and dropped); each part but the last is a single octet (<=255); the
// last part absorbs the remaining bits.
func ParseIPv4(input []byte) (uint32, error) {
	parts := bytes.Split(input, []byte{'.'})

	if len(parts) > 1 && len(parts[len(parts)-1]) == 0 {
		parts = parts[:len(parts)-1]
	}

	if len(parts) == 0 || len(parts) > 4 {
		return 0, fmt.Errorf("ipv4: invalid number of parts")
	}

	numbers := make([]uint64, len(parts))
	for i, p := range parts {
		n, err := parseIPv4Number(p)
		if err != nil {
			return 0, err
		}
		numbers[i] = n
	}

	// Every part but the last must fit in a single byte.
	for i := 0; i < len(numbers)-1; i++ {
		if numbers[i] > 255 {
			return 0, fmt.Errorf("ipv4: part %d overflows a byte", i)
		}
	}

	last := numbers[len(numbers)-1]
	maxLast := uint64(1) << (8 * uint(5-len(numbers)))
	if last >= maxLast {
		return 0, fmt.Errorf("ipv4: final part overflows remaining bits")
	}

	var addr uint32
	for i := 0; i < len(numbers)-1; i++ {
		addr |= uint32(numbers[i]) << (8 * uint(3-i))
	}
	addr |= uint32(last)

	return addr, nil
}

// EndsInANumber reports whether the last (or, for input ending in a
// dot, second-to-last) dot-separated part of input looks like an IPv4
// number: empty is false; a "0x"/"0X" prefix requires every remaining
// byte to be an ASCII hex digit, otherwise every byte must be an ASCII
// digit.
func EndsInANumber(input []byte) bool {
	parts := bytes.Split(input, []byte{'.'})

	var last []byte
	if len(parts) > 0 && len(parts[len(parts)-1]) == 0 {
		if len(parts) < 2 {
			return false
		}
		last = parts[len(parts)-2]
	} else {
		last = parts[len(parts)-1]
	}

	if len(last) == 0 {
		return false
	}

	if len(last) >= 2 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X') {
		for _, c := range last[2:] {
			if !isHexDigit(c) {
				return false
			}
		}
		return true
	}

	for _, c := range last {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// SerializeIPv4 writes the dotted-decimal form of addr (MSB first) to
// dst, returning the extended slice.
func SerializeIPv4(dst []byte, addr uint32) []byte {
	dst = appendUint(dst, byte(addr>>24))
	dst = append(dst, '.')
	dst = appendUint(dst, byte(addr>>16))
	dst = append(dst, '.')
	dst = appendUint(dst, byte(addr>>8))
	dst = append(dst, '.')
	dst = appendUint(dst, byte(addr))
	return dst
}

func appendUint(dst []byte, v byte) []byte {
	return strconv.AppendUint(dst, uint64(v), 10)
}
