package main

import (
	"github.com/projectdiscovery/gcache"

	"go-whatwg-url/host"
)

// asciiHostCache memoizes domain-to-ASCII conversions across a batch
// run: a urls-file listing many paths on the same host would otherwise
// repeat the same idna.ToASCII call on every line.
var asciiHostCache = gcache.New[string, string](1000).
	LRU().
	Build()

// asciiHost returns the IDNA-mapped ASCII form of a percent-decoded
// domain, consulting asciiHostCache before calling into host.
func asciiHost(domain []byte) (string, error) {
	key := string(domain)
	if v, err := asciiHostCache.Get(key); err == nil {
		return v, nil
	}
	ascii, err := host.ToASCIIDomain(domain)
	if err != nil {
		return "", err
	}
	_ = asciiHostCache.Set(key, ascii)
	return ascii, nil
}
