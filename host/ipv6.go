package host

import "fmt"

// IPv6 is an address as eight 16-bit pieces, network order.
type IPv6 [8]uint16

// ParseIPv6 parses a bracket-stripped IPv6 literal: up to 8
// hex-digit-group pieces separated by ':', with at most one "::"
// compression run and an optional embedded-IPv4 tail.
func ParseIPv6(input []byte) (IPv6, error) {
	var addr IPv6
	pieceIndex := 0
	compress := -1
	i := 0
	n := len(input)

	peek := func() (byte, bool) {
		if i < n {
			return input[i], true
		}
		return 0, false
	}

	if n >= 2 && input[0] == ':' && input[1] == ':' {
		i += 2
		pieceIndex = 1
		compress = 1
	} else if n >= 1 && input[0] == ':' {
		return addr, fmt.Errorf("ipv6: input starts with a single colon")
	}

	for i < n {
		if pieceIndex == 8 {
			return addr, fmt.Errorf("ipv6: too many pieces")
		}

		if c, ok := peek(); ok && c == ':' {
			if compress != -1 {
				return addr, fmt.Errorf("ipv6: multiple compression runs")
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		start := i
		var value uint16
		length := 0
		for i < n && length < 4 && isHexDigit(input[i]) {
			d, _ := digitValue(input[i], 16)
			value = value*16 + uint16(d)
			i++
			length++
		}

		if c, ok := peek(); ok && c == '.' {
			if length == 0 {
				return addr, fmt.Errorf("ipv6: embedded ipv4 with no leading digits")
			}
			i = start
			if pieceIndex > 6 {
				return addr, fmt.Errorf("ipv6: embedded ipv4 too deep")
			}

			numbersSeen := 0
			for numbersSeen < 4 {
				if numbersSeen > 0 {
					c, ok := peek()
					if !ok || c != '.' {
						return addr, fmt.Errorf("ipv6: malformed embedded ipv4")
					}
					i++
				}

				if c, ok := peek(); !ok || !isASCIIDigit(c) {
					return addr, fmt.Errorf("ipv6: embedded ipv4 missing digit")
				}

				var num uint16
				digitCount := 0
				for {
					c, ok := peek()
					if !ok || !isASCIIDigit(c) {
						break
					}
					if digitCount > 0 && num == 0 {
						return addr, fmt.Errorf("ipv6: embedded ipv4 leading zero")
					}
					num = num*10 + uint16(c-'0')
					if num > 255 {
						return addr, fmt.Errorf("ipv6: embedded ipv4 octet overflow")
					}
					i++
					digitCount++
				}

				addr[pieceIndex] = addr[pieceIndex]*0x100 + num
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}
			i = n
			break
		}

		if c, ok := peek(); ok && c == ':' {
			i++
			if i == n {
				return addr, fmt.Errorf("ipv6: trailing colon")
			}
		} else if i != n {
			return addr, fmt.Errorf("ipv6: unexpected trailing data")
		}

		addr[pieceIndex] = value
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		dstIndex := 7
		for dstIndex != 0 && swaps > 0 {
			addr[dstIndex], addr[compress+swaps-1] = addr[compress+swaps-1], addr[dstIndex]
			dstIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		return addr, fmt.Errorf("ipv6: too few pieces, no compression")
	}

	return addr, nil
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SerializeIPv6 writes the canonical compressed lowercase-hex form of
// addr to dst: the longest run of >=2 consecutive zero pieces
// (leftmost on ties) is replaced by "::".
func SerializeIPv6(dst []byte, addr IPv6) []byte {
	runStart, runLen := longestZeroRun(addr)

	for i := 0; i < 8; {
		if runLen >= 2 && i == runStart {
			if i+runLen == 8 {
				dst = append(dst, ':')
			}
			dst = append(dst, ':')
			i += runLen
			continue
		}
		if i > 0 {
			dst = append(dst, ':')
		}
		dst = appendHex(dst, addr[i])
		i++
	}

	return dst
}

func longestZeroRun(addr IPv6) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if addr[i] == 0 {
			if curStart == -1 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestLen = curLen
				bestStart = curStart
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if bestLen < 2 {
		return -1, 0
	}
	return bestStart, bestLen
}

func appendHex(dst []byte, v uint16) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	const hex = "0123456789abcdef"
	var buf [4]byte
	n := 0
	for v > 0 {
		buf[n] = hex[v&0xf]
		v >>= 4
		n++
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, buf[i])
	}
	return dst
}
