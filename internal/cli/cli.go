package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var (
	ErrHelp            = errors.New("help requested")
	ErrMissingUsername = errors.New("username is required")
	ErrTooManyArgs     = errors.New("only one username may be given")
)

type Options struct {
	Username string

	Verbose bool
	JSON    bool
	NoColor bool
	List    bool

	Timeout     int
	OutputPath  string
	CatalogPath string
	Proxy       string
}

// Defaults seed flag values before parsing; they normally come from the environment.
type Defaults struct {
	Timeout int
	Proxy   string
}

const usageText = `
usage:
  yougoldberg [flags] USERNAME
  yougoldberg --list

positional arguments:
  USERNAME              username to search for (2-50 characters)

flags:
  -h, --help            show this help message and exit
  -v, --verbose         print the status code of every probe and transport errors
  -j, --json            write results to <username>_results.json
  -l, --list            list the platform catalog and exit
      --no-color        disable colored output

options:
  -t, --timeout SECONDS per-request timeout in seconds (default: 10)
  -o, --output PATH     write a plain-text report to PATH
      --catalog PATH    load platforms from a JSON catalog instead of the built-in one
      --proxy URL       send probes through an http(s):// or socks5:// proxy

examples:
  yougoldberg johndoe
  yougoldberg -v -t 15 johndoe
  yougoldberg -j -o report.txt johndoe
`

// Usage writes the usage text to w.
func Usage(w io.Writer) {
	_, _ = fmt.Fprint(w, usageText)
}

// Parse reads flags and the positional username. It does not print anything;
// callers decide how to report ErrHelp and parse errors.
func Parse(args []string, defaults Defaults) (Options, error) {
	var (
		opts Options
		help bool
	)

	fs := pflag.NewFlagSet("yougoldberg", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.BoolVarP(&help, "help", "h", false, "show help")

	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	fs.BoolVarP(&opts.JSON, "json", "j", false, "write JSON results")
	fs.BoolVarP(&opts.List, "list", "l", false, "list platforms")
	fs.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	fs.IntVarP(&opts.Timeout, "timeout", "t", defaults.Timeout, "request timeout in seconds")
	fs.StringVarP(&opts.OutputPath, "output", "o", "", "plain-text report path")
	fs.StringVar(&opts.CatalogPath, "catalog", "", "JSON catalog path")
	fs.StringVar(&opts.Proxy, "proxy", defaults.Proxy, "proxy URL")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if help {
		return Options{}, ErrHelp
	}

	positional := fs.Args()
	switch {
	case len(positional) > 1:
		return Options{}, errors.Wrapf(ErrTooManyArgs, "got %s", strings.Join(positional, " "))
	case len(positional) == 1:
		opts.Username = positional[0]
	case !opts.List:
		return Options{}, ErrMissingUsername
	}

	return opts, nil
}
