package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/yougoldberg/yougoldberg/internal/catalog"
	"github.com/yougoldberg/yougoldberg/internal/scan"
)

var (
	cyan    = color.New(color.FgCyan)
	green   = color.New(color.FgGreen)
	red     = color.New(color.FgRed)
	yellow  = color.New(color.FgYellow)
	blue    = color.New(color.FgBlue)
	magenta = color.New(color.FgMagenta)
)

// Printer renders run events on a console. It implements scan.Observer.
type Printer struct {
	w io.Writer

	// inline redraws the progress line in place; only sensible on a terminal.
	inline bool
	// dirty is set while the cursor sits at the end of an inline progress line.
	dirty bool
}

func NewPrinter(w io.Writer, inline bool) *Printer {
	return &Printer{w: w, inline: inline}
}

func (p *Printer) Start(username string, total int) {
	cyan.Fprint(p.w, "\nSearching for username: ")
	yellow.Fprintln(p.w, username)
	blue.Fprintf(p.w, "Checking %d platforms...\n\n", total)
}

func (p *Printer) Progress(ev scan.Progress) {
	if p.inline {
		magenta.Fprintf(p.w, "\r\033[KProgress: [%d/%d] Checking %s...", ev.Index, ev.Total, ev.Platform)
		p.dirty = true
		return
	}
	magenta.Fprintf(p.w, "Progress: [%d/%d] Checking %s...\n", ev.Index, ev.Total, ev.Platform)
}

func (p *Printer) Detail(ev scan.Detail) {
	p.breakLine()
	fmt.Fprintf(p.w, "  %s -> %d (%s)\n", ev.Platform, ev.StatusCode, ev.URL)
}

func (p *Printer) Found(fp scan.FoundProfile) {
	p.breakLine()
	green.Fprintf(p.w, "  ✓ FOUND: %s\n", fp.Platform)
}

func (p *Printer) Failure(ev scan.Failure) {
	p.breakLine()
	red.Fprintf(p.w, "  ✗ %s: %v\n", ev.Platform, ev.Err)
}

// Finish terminates a pending inline progress line.
func (p *Printer) Finish() {
	p.breakLine()
	fmt.Fprintln(p.w)
}

func (p *Printer) Summary(elapsed time.Duration) {
	blue.Fprintf(p.w, "Search completed in %d seconds\n", int(elapsed.Seconds()))
	yellow.Fprintln(p.w, "Remember: this tool is for educational and legitimate research purposes only!")
}

func (p *Printer) Interrupted(found int) {
	p.breakLine()
	yellow.Fprintf(p.w, "\nSearch interrupted; showing %d profile(s) found so far.\n", found)
}

func (p *Printer) Platforms(platforms []catalog.Platform) error {
	fmt.Fprintf(p.w, "%d platforms:\n", len(platforms))
	return renderTable(p.w, []any{"#", "Platform", "URL template"}, func(add func(...any) error) error {
		for i, pl := range platforms {
			if err := add(i+1, pl.Name, pl.URLTemplate); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Printer) breakLine() {
	if p.dirty {
		fmt.Fprintln(p.w)
		p.dirty = false
	}
}
