package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/yougoldberg/yougoldberg/internal/catalog"
	"github.com/yougoldberg/yougoldberg/internal/cli"
	"github.com/yougoldberg/yougoldberg/internal/config"
	"github.com/yougoldberg/yougoldberg/internal/export"
	"github.com/yougoldberg/yougoldberg/internal/httpx"
	"github.com/yougoldberg/yougoldberg/internal/output"
	"github.com/yougoldberg/yougoldberg/internal/probe"
	"github.com/yougoldberg/yougoldberg/internal/scan"
)

const (
	exitOK    = 0
	exitError = 1
)

// Run executes one invocation and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env, err := config.Load()
	if err != nil {
		return fail(stderr, err)
	}

	opts, err := cli.Parse(args, cli.Defaults{Timeout: env.Timeout, Proxy: env.Proxy})
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			output.Banner(stdout)
			cli.Usage(stdout)
			return exitOK
		}
		fail(stderr, err)
		cli.Usage(stdout)
		return exitError
	}

	if opts.NoColor {
		color.NoColor = true
	}

	log, err := newLogger(stderr, env.LogLevel)
	if err != nil {
		return fail(stderr, err)
	}

	platforms, err := loadPlatforms(opts.CatalogPath, log)
	if err != nil {
		return fail(stderr, err)
	}

	printer := output.NewPrinter(stdout, isTerminal(stdout))

	if opts.List {
		if err := printer.Platforms(platforms); err != nil {
			return fail(stderr, err)
		}
		return exitOK
	}

	rc := scan.RunConfig{
		Username:       opts.Username,
		Verbose:        opts.Verbose,
		TimeoutSeconds: opts.Timeout,
	}
	if err := rc.Validate(); err != nil {
		return fail(stderr, err)
	}

	httpClient, err := httpx.NewClient(httpx.ClientConfig{
		Timeout:   rc.Timeout(),
		VerifyTLS: env.VerifyTLS,
		ProxyURL:  opts.Proxy,
	})
	if err != nil {
		return fail(stderr, errors.Wrap(err, "initialize HTTP client"))
	}
	if !env.VerifyTLS {
		log.Debug("TLS certificate verification is disabled")
	}

	scanner := scan.NewScanner(probe.NewHTTPProber(httpClient, env.UserAgent), scan.Config{Delay: env.Delay}, log)

	output.Banner(stdout)
	printer.Start(rc.Username, len(platforms))

	started := time.Now()
	found, runErr := scanner.Run(ctx, platforms, rc, printer)
	elapsed := time.Since(started)

	if runErr != nil {
		printer.Interrupted(len(found))
	} else {
		printer.Finish()
	}

	if err := printer.Results(found); err != nil {
		log.WithError(err).Warn("render results table")
	}
	printer.Summary(elapsed)

	report := export.NewReport(rc.Username, started, found)
	code := exitOK

	if opts.JSON {
		path := export.JSONFileName(rc.Username)
		if err := export.SaveJSON(path, report); err != nil {
			code = fail(stderr, err)
		} else {
			log.WithField("path", path).Info("JSON results written")
			fmt.Fprintf(stdout, "Results saved to %s\n", path)
		}
	}
	if opts.OutputPath != "" {
		if err := export.SaveText(opts.OutputPath, report); err != nil {
			code = fail(stderr, err)
		} else {
			log.WithField("path", opts.OutputPath).Info("text report written")
			fmt.Fprintf(stdout, "Report saved to %s\n", opts.OutputPath)
		}
	}

	if runErr != nil {
		return exitError
	}
	return code
}

func loadPlatforms(path string, log logrus.FieldLogger) ([]catalog.Platform, error) {
	if path == "" {
		return catalog.Platforms(), nil
	}
	platforms, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"path": path, "platforms": len(platforms)}).Debug("catalog loaded")
	return platforms, nil
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func fail(stderr io.Writer, err error) int {
	color.New(color.FgHiRed).Fprintf(stderr, "Error: %v\n", err)
	return exitError
}
