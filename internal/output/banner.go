package output

import (
	"io"

	"github.com/common-nighthawk/go-figure"

	"github.com/yougoldberg/yougoldberg/internal/version"
)

func Banner(w io.Writer) {
	fig := figure.NewFigure("YOU", "doom", true)
	cyan.Fprintln(w, fig.String())
	cyan.Fprintf(w, " yougoldberg OSINT Username Discovery Tool\n")
	cyan.Fprintf(w, "              Version %s\n\n", version.Version)
}
