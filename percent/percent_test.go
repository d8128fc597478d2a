package percent

import (
	"testing"

	"go-whatwg-url/charset"
)

func TestEncodeByteRoundTrip(t *testing.T) {
	sets := map[string]*charset.Set{
		"c0-control":    &charset.C0Control,
		"fragment":      charset.Fragment,
		"query":         charset.Query,
		"special-query": charset.SpecialQuery,
		"path":          charset.Path,
		"userinfo":      charset.Userinfo,
	}
	for name, set := range sets {
		for c := 0; c < 256; c++ {
			b := byte(c)
			encoded := EncodeByte(nil, b, set)
			decoded := DecodeSlice(nil, encoded)
			if len(decoded) != 1 || decoded[0] != b {
				t.Errorf("set %s: decode(encode(%#x)) = %v, want [%#x]", name, b, decoded, b)
			}
		}
	}
}

func TestEncodeSliceFastPath(t *testing.T) {
	in := []byte("plain-ascii_path/segment")
	got := EncodeSlice(nil, in, charset.Path)
	if string(got) != string(in) {
		t.Errorf("clean input must pass through untouched: got %q", got)
	}
}

func TestEncodeSliceMixed(t *testing.T) {
	got := EncodeSlice(nil, []byte("a b<c"), charset.Query)
	if string(got) != "a%20b%3Cc" {
		t.Errorf("EncodeSlice = %q, want %q", got, "a%20b%3Cc")
	}
}

func TestEncodeSliceAppendsToExisting(t *testing.T) {
	got := EncodeSlice([]byte("prefix:"), []byte("x y"), charset.Query)
	if string(got) != "prefix:x%20y" {
		t.Errorf("EncodeSlice = %q", got)
	}
}

func TestDecodeSliceMalformed(t *testing.T) {
	cases := map[string]string{
		"%":      "%",
		"%2":     "%2",
		"%!!":    "%!!",
		"%41":    "A",
		"a%2Fb":  "a/b",
		"a%2fb":  "a/b",
		"100%25": "100%",
		// Alphanumeric non-hex digits still trigger the decode; they map
		// to zero in the table, matching the reference tables bit for bit.
		"%zz": "\x00",
	}
	for in, want := range cases {
		if got := string(DecodeSlice(nil, []byte(in))); got != want {
			t.Errorf("DecodeSlice(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodedTableLayout(t *testing.T) {
	// Encoding byte b must be exactly the literal triplet at 3b..3b+3.
	got := EncodeByte(nil, 0x00, &charset.C0Control)
	if string(got) != "%00" {
		t.Fatalf("EncodeByte(0x00) = %q", got)
	}
	got = EncodeByte(nil, 0xFF, &charset.C0Control)
	if string(got) != "%FF" {
		t.Fatalf("EncodeByte(0xFF) = %q", got)
	}
}
