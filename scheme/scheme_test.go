package scheme

import "testing"

func TestClassify(t *testing.T) {
	cases := map[string]Type{
		"http":   HTTP,
		"https":  HTTPS,
		"ws":     WS,
		"wss":    WSS,
		"ftp":    FTP,
		"file":   File,
		"mailto": Opaque,
	}
	for in, want := range cases {
		if got := Classify([]byte(in)); got != want {
			t.Errorf("Classify(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWSSIsNotHTTPS(t *testing.T) {
	if Classify([]byte("wss")) == Classify([]byte("https")) {
		t.Fatal("wss must classify to a distinct type from https")
	}
}

func TestDefaultPorts(t *testing.T) {
	cases := map[Type]uint16{
		FTP:   21,
		HTTP:  80,
		WS:    80,
		HTTPS: 443,
		WSS:   443,
	}
	for typ, want := range cases {
		got, ok := typ.DefaultPort()
		if !ok || got != want {
			t.Errorf("%v.DefaultPort() = %d, %v; want %d, true", typ, got, ok, want)
		}
	}
	if _, ok := File.DefaultPort(); ok {
		t.Error("file must have no default port")
	}
	if _, ok := Opaque.DefaultPort(); ok {
		t.Error("opaque must have no default port")
	}
}

func TestIsSpecial(t *testing.T) {
	if Opaque.IsSpecial() {
		t.Error("opaque must not be special")
	}
	if !File.IsSpecial() {
		t.Error("file must be special")
	}
}
