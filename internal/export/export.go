package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/yougoldberg/yougoldberg/internal/scan"
)

// Report is the persisted result of one run.
type Report struct {
	Username   string              `json:"username"`
	SearchDate string              `json:"search_date"`
	TotalFound int                 `json:"total_found"`
	Profiles   []scan.FoundProfile `json:"profiles"`
}

// NewReport stamps profiles with the search time as Unix seconds.
func NewReport(username string, at time.Time, profiles []scan.FoundProfile) Report {
	if profiles == nil {
		profiles = []scan.FoundProfile{}
	}
	return Report{
		Username:   username,
		SearchDate: strconv.FormatInt(at.Unix(), 10),
		TotalFound: len(profiles),
		Profiles:   profiles,
	}
}

// JSONFileName is the file the --json flag writes to.
func JSONFileName(username string) string {
	return username + "_results.json"
}

func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

func WriteText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "yougoldberg - username search report")
	fmt.Fprintln(bw, "====================================")
	fmt.Fprintf(bw, "Username:    %s\n", r.Username)
	fmt.Fprintf(bw, "Search date: %s\n", r.SearchDate)
	fmt.Fprintf(bw, "Total found: %d\n", r.TotalFound)
	fmt.Fprintln(bw)

	if len(r.Profiles) == 0 {
		fmt.Fprintln(bw, "No profiles found.")
		return bw.Flush()
	}

	for i, p := range r.Profiles {
		fmt.Fprintf(bw, "[%d] %s\n", i+1, p.Platform)
		fmt.Fprintf(bw, "    URL:           %s\n", p.URL)
		fmt.Fprintf(bw, "    Response code: %d\n", p.ResponseCode)
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func SaveJSON(path string, r Report) error {
	return save(path, r, WriteJSON)
}

func SaveText(path string, r Report) error {
	return save(path, r, WriteText)
}

// save writes to a temporary file next to path and renames it into place, so
// a failed export never leaves a truncated artifact behind.
func save(path string, r Report, write func(io.Writer, Report) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp, r); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
