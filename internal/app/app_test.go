package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type fixture struct {
	dir     string
	catalog string
	hits    *atomic.Int64
}

// newFixture serves /alpha/alice with 200 and everything else with 404, and
// writes a catalog pointing at it into a fresh working directory.
func newFixture(t *testing.T) fixture {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/alpha/alice" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("YOUGOLDBERG_DELAY", "0s")

	doc := fmt.Sprintf(`{"platforms": [
		{"name": "Alpha", "url": "%[1]s/alpha/%%s"},
		{"name": "Beta", "url": "%[1]s/beta/%%s"}
	]}`, srv.URL)
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return fixture{dir: dir, catalog: path, hits: &hits}
}

func run(t *testing.T, ctx context.Context, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(ctx, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunEndToEnd(t *testing.T) {
	fx := newFixture(t)

	code, stdout, stderr := run(t, context.Background(), "--catalog", fx.catalog, "-j", "-o", "report.txt", "alice")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "FOUND: Alpha")
	assert.Contains(t, stdout, "Found 1 profile(s)")
	assert.EqualValues(t, 2, fx.hits.Load())

	raw, err := os.ReadFile(filepath.Join(fx.dir, "alice_results.json"))
	require.NoError(t, err)

	var report struct {
		Username   string `json:"username"`
		SearchDate string `json:"search_date"`
		TotalFound int    `json:"total_found"`
		Profiles   []struct {
			Platform     string `json:"platform"`
			URL          string `json:"url"`
			ResponseCode int    `json:"response_code"`
		} `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, "alice", report.Username)
	assert.NotEmpty(t, report.SearchDate)
	assert.Equal(t, 1, report.TotalFound)
	require.Len(t, report.Profiles, 1)
	assert.Equal(t, "Alpha", report.Profiles[0].Platform)
	assert.True(t, strings.HasSuffix(report.Profiles[0].URL, "/alpha/alice"))
	assert.Equal(t, 200, report.Profiles[0].ResponseCode)

	text, err := os.ReadFile(filepath.Join(fx.dir, "report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "Total found: 1")
}

func TestRunNoProfiles(t *testing.T) {
	fx := newFixture(t)

	code, stdout, _ := run(t, context.Background(), "--catalog", fx.catalog, "--json", "--output", "report.txt", "nobody")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "No profiles found!")

	raw, err := os.ReadFile(filepath.Join(fx.dir, "nobody_results.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total_found": 0`)
	assert.Contains(t, string(raw), `"profiles": []`)

	text, err := os.ReadFile(filepath.Join(fx.dir, "report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "No profiles found.")
}

func TestRunVerbose(t *testing.T) {
	fx := newFixture(t)

	code, stdout, _ := run(t, context.Background(), "--catalog", fx.catalog, "-v", "alice")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Alpha -> 200")
	assert.Contains(t, stdout, "Beta -> 404")
}

func TestRunRejectsBadInputWithoutNetwork(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero timeout", []string{"--timeout", "0", "alice"}},
		{"negative timeout", []string{"--timeout", "-5", "alice"}},
		{"malformed timeout", []string{"-t", "ten", "alice"}},
		{"short username", []string{"a"}},
		{"long username", []string{strings.Repeat("a", 51)}},
		{"missing username", []string{"-v"}},
		{"unknown flag", []string{"--frobnicate", "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)

			args := append([]string{"--catalog", fx.catalog}, tt.args...)
			code, _, stderr := run(t, context.Background(), args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "Error:")
			assert.Zero(t, fx.hits.Load(), "no request may be sent")
		})
	}
}

func TestRunUnknownFlagPrintsUsage(t *testing.T) {
	newFixture(t)

	code, stdout, _ := run(t, context.Background(), "--frobnicate", "alice")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "usage:")
}

func TestRunHelp(t *testing.T) {
	fx := newFixture(t)

	code, stdout, _ := run(t, context.Background(), "--catalog", fx.catalog, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "usage:")
	assert.Zero(t, fx.hits.Load())
}

func TestRunList(t *testing.T) {
	fx := newFixture(t)

	code, stdout, _ := run(t, context.Background(), "--catalog", fx.catalog, "--list")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Alpha")
	assert.Contains(t, stdout, "Beta")
	assert.Zero(t, fx.hits.Load())
}

func TestRunBadCatalog(t *testing.T) {
	newFixture(t)
	require.NoError(t, os.WriteFile("bad.json", []byte(`{"platforms": [{"name": "X", "url": "https://x.test/"}]}`), 0o600))

	code, _, stderr := run(t, context.Background(), "--catalog", "bad.json", "alice")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "placeholder")
}

func TestRunUnwritableExport(t *testing.T) {
	fx := newFixture(t)

	code, _, stderr := run(t, context.Background(), "--catalog", fx.catalog, "-o", filepath.Join(fx.dir, "missing", "r.txt"), "alice")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")
	assert.EqualValues(t, 2, fx.hits.Load(), "export failures happen after a complete run")
}

func TestRunCancelled(t *testing.T) {
	fx := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, stdout, _ := run(t, ctx, "--catalog", fx.catalog, "alice")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "interrupted")
	assert.Zero(t, fx.hits.Load())
}

func TestRunBadEnvironment(t *testing.T) {
	newFixture(t)
	t.Setenv("YOUGOLDBERG_LOG_LEVEL", "chatty")

	code, _, stderr := run(t, context.Background(), "alice")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "log level")
}
