package host

import "testing"

func TestParseIPv4(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"192.168.0.1", 0xC0A80001},
		{"255.255.255.255", 0xFFFFFFFF},
		{"0.0.0.0", 0},
		{"0x1.1.1.1", 0x01010101},
		{"1", 1},
		{"1.1", 0x01000001},
	}
	for _, c := range cases {
		got, err := ParseIPv4([]byte(c.in))
		if err != nil {
			t.Errorf("ParseIPv4(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseIPv4(%q) = %#x, want %#x", c.in, got, c.want)
		}
	}
}

func TestParseIPv4Invalid(t *testing.T) {
	for _, in := range []string{"256.1.1.1", "1.2.3.4.5", "a.b.c.d", ""} {
		if _, err := ParseIPv4([]byte(in)); err == nil {
			t.Errorf("ParseIPv4(%q) expected error", in)
		}
	}
}

func TestParseIPv4EmptyAfterRadixPrefix(t *testing.T) {
	// A radix prefix with nothing after it is a malformed part, not a
	// silently-accepted zero.
	for _, in := range []string{"0x.1.1.1", "0X.1.1.1", "1.1.1.0x"} {
		if _, err := ParseIPv4([]byte(in)); err == nil {
			t.Errorf("ParseIPv4(%q) expected error", in)
		}
	}
}

func TestIPv4RoundTrip(t *testing.T) {
	addr, err := ParseIPv4([]byte("192.168.0.1"))
	if err != nil {
		t.Fatal(err)
	}
	got := string(SerializeIPv4(nil, addr))
	if got != "192.168.0.1" {
		t.Fatalf("got %q", got)
	}
}

func TestEndsInANumber(t *testing.T) {
	cases := map[string]bool{
		"example.com":  false,
		"example.1":    true,
		"example.0x1":  true,
		"example.":     false,
		"1.2.3.4":      true,
		"example.1a":   false,
		"example.0x1g": false,
	}
	for in, want := range cases {
		if got := EndsInANumber([]byte(in)); got != want {
			t.Errorf("EndsInANumber(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseIPv6RoundTrip(t *testing.T) {
	cases := map[string]string{
		"2001:db8::1":                           "2001:db8::1",
		"::1":                                   "::1",
		"::":                                    "::",
		"1:2:3:4:5:6:7:8":                        "1:2:3:4:5:6:7:8",
		"2001:0db8:0000:0000:0000:ff00:0042:8329": "2001:db8::ff00:42:8329",
	}
	for in, want := range cases {
		addr, err := ParseIPv6([]byte(in))
		if err != nil {
			t.Errorf("ParseIPv6(%q) error: %v", in, err)
			continue
		}
		got := string(SerializeIPv6(nil, addr))
		if got != want {
			t.Errorf("serialize(parse(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestParseIPv6Invalid(t *testing.T) {
	cases := []string{
		":1",
		"1::2::3",
		"1:2:3:4:5:6:7",
		"1:2:3:4:5:6:7:8:9",
		// A compressed literal that still spells out all eight pieces has
		// nowhere left to expand.
		"::1:2:3:4:5:6:7:8",
	}
	for _, in := range cases {
		if _, err := ParseIPv6([]byte(in)); err == nil {
			t.Errorf("ParseIPv6(%q) expected error", in)
		}
	}
}

func TestParseIPv6EmbeddedIPv4(t *testing.T) {
	addr, err := ParseIPv6([]byte("::ffff:192.168.0.1"))
	if err != nil {
		t.Fatal(err)
	}
	if addr[5] != 0xffff || addr[6] != 0xC0A8 || addr[7] != 0x0001 {
		t.Fatalf("got %v", addr)
	}
}

func TestParseDispatch(t *testing.T) {
	got, err := Parse(nil, []byte("example.com"), false)
	if err != nil || string(got) != "example.com" {
		t.Fatalf("got %q, err %v", got, err)
	}

	got, err = Parse(nil, []byte("[::1]"), false)
	if err != nil || string(got) != "[::1]" {
		t.Fatalf("got %q, err %v", got, err)
	}

	got, err = Parse(nil, []byte("192.168.0.1"), false)
	if err != nil {
		t.Fatal(err)
	}
	// Plain dotted-decimal with no forbidden byte takes the fast path
	// and is not reparsed as IPv4 numerically; it passes through as-is.
	if string(got) != "192.168.0.1" {
		t.Fatalf("got %q", got)
	}
}

func TestParseOpaqueHostRejectsForbidden(t *testing.T) {
	if _, err := Parse(nil, []byte("ho st"), true); err == nil {
		t.Fatal("expected error for space in opaque host")
	}
}
