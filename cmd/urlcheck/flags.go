package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
)

// CliOptions holds every flag urlcheck accepts.
type CliOptions struct {
	URL      string
	URLsFile string
	Base     string

	SetScheme   string
	SetHost     string
	SetHostname string
	SetPort     string
	SetPath     string
	SetQuery    string
	SetFragment string
	SetUsername string
	SetPassword string

	JSON    bool
	Debug   bool
	Verbose bool

	// URLs collects positional/repeated URL arguments for a single
	// invocation, the same multi-value flag type used for batch target
	// lists elsewhere in this stack.
	URLs goflags.StringSlice
}

type multiFlag struct {
	name   string
	usage  string
	value  any
	defVal any
}

func parseFlags() (*CliOptions, error) {
	opts := &CliOptions{}

	flags := []multiFlag{
		{name: "u,url", usage: "URL to parse", value: &opts.URL},
		{name: "l,urls-file", usage: "File containing one URL per line", value: &opts.URLsFile},
		{name: "base", usage: "Base URL to resolve a relative reference against", value: &opts.Base},
		{name: "set-scheme", usage: "Apply SetScheme to the parsed URL before printing", value: &opts.SetScheme},
		{name: "set-host", usage: "Apply SetHost to the parsed URL before printing", value: &opts.SetHost},
		{name: "set-hostname", usage: "Apply SetHostname to the parsed URL before printing", value: &opts.SetHostname},
		{name: "set-port", usage: "Apply SetPort to the parsed URL before printing", value: &opts.SetPort},
		{name: "set-path", usage: "Apply SetPath to the parsed URL before printing", value: &opts.SetPath},
		{name: "set-query", usage: "Apply SetQuery to the parsed URL before printing", value: &opts.SetQuery},
		{name: "set-fragment", usage: "Apply SetFragment to the parsed URL before printing", value: &opts.SetFragment},
		{name: "set-username", usage: "Apply SetUsername to the parsed URL before printing", value: &opts.SetUsername},
		{name: "set-password", usage: "Apply SetPassword to the parsed URL before printing", value: &opts.SetPassword},
		{name: "json", usage: "Print results as a JSON document", value: &opts.JSON, defVal: false},
		{name: "d,debug", usage: "Print a compact debug token alongside each parsed URL", value: &opts.Debug, defVal: false},
		{name: "v,verbose", usage: "Verbose output", value: &opts.Verbose, defVal: false},
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "urlcheck\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		for _, f := range flags {
			names := strings.Split(f.name, ",")
			if len(names) > 1 {
				fmt.Fprintf(os.Stderr, "  -%s, -%s\n", names[0], names[1])
			} else {
				fmt.Fprintf(os.Stderr, "  -%s\n", names[0])
			}
			if f.defVal != nil {
				fmt.Fprintf(os.Stderr, "        %s (Default: %v)\n", f.usage, f.defVal)
			} else {
				fmt.Fprintf(os.Stderr, "        %s\n", f.usage)
			}
		}
	}

	for _, f := range flags {
		for _, name := range strings.Split(f.name, ",") {
			name = strings.TrimSpace(name)
			switch v := f.value.(type) {
			case *string:
				def, _ := f.defVal.(string)
				flag.StringVar(v, name, def, f.usage)
			case *bool:
				def, _ := f.defVal.(bool)
				flag.BoolVar(v, name, def, f.usage)
			}
		}
	}

	flag.Parse()
	opts.URLs = goflags.StringSlice(flag.Args())

	if opts.URL == "" && opts.URLsFile == "" && len(opts.URLs) == 0 {
		return nil, fmt.Errorf("urlcheck: need -url, -urls-file, or one or more positional URLs")
	}

	return opts, nil
}
