package main

import (
	"testing"

	"go-whatwg-url/whatwgurl"
)

func TestDebugTokenRoundTrip(t *testing.T) {
	u, err := whatwgurl.Parse([]byte("https://example.com/hello/world?query=string#fragment"), nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	token := GenerateDebugToken(u)
	if token == "" {
		t.Fatal("GenerateDebugToken returned an empty token")
	}

	decoded, err := DecodeDebugToken(token)
	if err != nil {
		t.Fatalf("DecodeDebugToken failed: %v", err)
	}
	if decoded.Scheme != "https" {
		t.Errorf("Scheme = %q", decoded.Scheme)
	}
	if decoded.Host != "example.com" {
		t.Errorf("Host = %q", decoded.Host)
	}
	if decoded.Path != "/hello/world" {
		t.Errorf("Path = %q", decoded.Path)
	}
	if decoded.Query != "query=string" {
		t.Errorf("Query = %q", decoded.Query)
	}
	if decoded.Fragment != "fragment" {
		t.Errorf("Fragment = %q", decoded.Fragment)
	}
}

func TestDebugTokenRejectsGarbage(t *testing.T) {
	if _, err := DecodeDebugToken("!!!not-base64!!!"); err == nil {
		t.Fatal("expected an error for malformed base64")
	}
}
