package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go-whatwg-url/internal/logger"
	"go-whatwg-url/whatwgurl"
)

// Result is one parsed URL's component breakdown, suitable for -json
// output or plain component-by-component printing.
type Result struct {
	Input     string `json:"input"`
	Href      string `json:"href"`
	Scheme    string `json:"scheme"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	Host      string `json:"host,omitempty"`
	Port      string `json:"port,omitempty"`
	Path      string `json:"path"`
	Query     string `json:"query,omitempty"`
	Fragment  string `json:"fragment,omitempty"`
	DebugTok  string `json:"debug_token,omitempty"`
	ParseErr  string `json:"error,omitempty"`
	SetterErr string `json:"setter_error,omitempty"`
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flagUsageAndExit()
	}
	if opts.Verbose {
		logger.EnableVerbose()
	}
	if opts.Debug {
		logger.EnableDebug()
	}

	var inputs []string
	if opts.URL != "" {
		inputs = append(inputs, opts.URL)
	}
	inputs = append(inputs, opts.URLs...)
	if opts.URLsFile != "" {
		fileInputs, err := readLines(opts.URLsFile)
		if err != nil {
			logger.Error().Msgf("reading %s: %v", opts.URLsFile, err)
			os.Exit(1)
		}
		inputs = append(inputs, fileInputs...)
	}

	var base *whatwgurl.URL
	if opts.Base != "" {
		b, err := whatwgurl.Parse([]byte(opts.Base), nil)
		if err != nil {
			logger.Error().Msgf("parsing -base %q: %v", opts.Base, err)
			os.Exit(1)
		}
		base = b
	}

	results := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		results = append(results, processOne(opts, in, base))
	}

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(results)
		return
	}
	for _, r := range results {
		printResult(r)
	}
}

func processOne(opts *CliOptions, input string, base *whatwgurl.URL) Result {
	r := Result{Input: input}

	u, err := whatwgurl.Parse([]byte(input), base)
	if err != nil {
		r.ParseErr = err.Error()
		logger.Verbose().Msgf("parse failed for %q: %v", input, err)
		return r
	}

	if err := applySetters(opts, u); err != nil {
		r.SetterErr = err.Error()
	}

	r.Href = string(u.Href())
	r.Scheme = string(u.Scheme())
	r.Username = string(u.Username())
	r.Password = string(u.Password())
	r.Host = string(u.Host())
	r.Port = string(u.Port())
	r.Path = string(u.Path())
	r.Query = string(u.Query())
	r.Fragment = string(u.Fragment())

	if ascii, err := asciiHost(u.Host()); err == nil {
		logger.Verbose().Msgf("%s -> ascii host %s", input, ascii)
	}

	if opts.Debug {
		r.DebugTok = GenerateDebugToken(u)
	}
	return r
}

// applySetters applies, in a fixed order, every -set-* flag the caller
// supplied. A setter that returns ok=false (declined) or an error stops
// the chain and reports why.
func applySetters(opts *CliOptions, u *whatwgurl.URL) error {
	type step struct {
		name  string
		value string
		apply func([]byte) (bool, error)
	}
	steps := []step{
		{"scheme", opts.SetScheme, u.SetScheme},
		{"username", opts.SetUsername, u.SetUsername},
		{"password", opts.SetPassword, u.SetPassword},
		{"host", opts.SetHost, u.SetHost},
		{"hostname", opts.SetHostname, u.SetHostname},
		{"port", opts.SetPort, u.SetPort},
		{"path", opts.SetPath, u.SetPath},
		{"query", opts.SetQuery, u.SetQuery},
		{"fragment", opts.SetFragment, u.SetFragment},
	}
	for _, s := range steps {
		if s.value == "" {
			continue
		}
		ok, err := s.apply([]byte(s.value))
		if err != nil {
			return fmt.Errorf("set-%s: %w", s.name, err)
		}
		if !ok {
			return fmt.Errorf("set-%s: declined", s.name)
		}
	}
	return nil
}

func printResult(r Result) {
	if r.ParseErr != "" {
		logger.Error().Msgf("%s -> %s", r.Input, r.ParseErr)
		return
	}
	logger.Success().Msgf("%s", r.Href)
	fmt.Printf("  scheme   = %s\n", r.Scheme)
	if r.Username != "" {
		fmt.Printf("  username = %s\n", r.Username)
	}
	if r.Password != "" {
		fmt.Printf("  password = %s\n", r.Password)
	}
	if r.Host != "" {
		fmt.Printf("  host     = %s\n", r.Host)
	}
	if r.Port != "" {
		fmt.Printf("  port     = %s\n", r.Port)
	}
	fmt.Printf("  path     = %s\n", r.Path)
	if r.Query != "" {
		fmt.Printf("  query    = %s\n", r.Query)
	}
	if r.Fragment != "" {
		fmt.Printf("  fragment = %s\n", r.Fragment)
	}
	if r.DebugTok != "" {
		fmt.Printf("  debug    = %s\n", r.DebugTok)
	}
	if r.SetterErr != "" {
		logger.Warning().Msgf("  setter: %s", r.SetterErr)
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func flagUsageAndExit() {
	flag.Usage()
	os.Exit(1)
}
