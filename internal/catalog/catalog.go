package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/yougoldberg/yougoldberg/internal/version"
)

// Platform is a named profile URL template with a single %s placeholder.
type Platform struct {
	Name        string
	URLTemplate string
}

// Platforms returns the compiled-in catalog in its fixed order.
// Each call returns a fresh copy.
func Platforms() []Platform {
	out := make([]Platform, len(builtin))
	copy(out, builtin)
	return out
}

// Format substitutes username into the template's placeholder.
// The username is always passed as an argument, so any '%' it contains is
// kept verbatim.
func Format(template, username string) string {
	return fmt.Sprintf(template, username)
}

// directive matches a formatting directive; "%%" is consumed as one match.
var directive = regexp2.MustCompile(`%(.?)`, regexp2.Singleline)

// CheckTemplate verifies that template has exactly one %s placeholder and no
// other directive besides the %% escape.
func CheckTemplate(template string) error {
	placeholders := 0

	m, err := directive.FindStringMatch(template)
	for ; m != nil && err == nil; m, err = directive.FindNextMatch(m) {
		switch verb := m.GroupByNumber(1).String(); verb {
		case "%":
		case "s":
			placeholders++
		case "":
			return errors.Errorf("template %q ends with a bare %%", template)
		default:
			return errors.Errorf("template %q has unsupported directive %%%s", template, verb)
		}
	}
	if err != nil {
		return errors.Wrapf(err, "scan template %q", template)
	}

	if placeholders != 1 {
		return errors.Errorf("template %q must contain exactly one %%s placeholder, found %d", template, placeholders)
	}
	return nil
}

// Validate checks every platform template and rejects duplicate names.
func Validate(platforms []Platform) error {
	seen := make(map[string]struct{}, len(platforms))
	for _, p := range platforms {
		if p.Name == "" {
			return errors.New("platform with empty name")
		}
		key := strings.ToLower(p.Name)
		if _, dup := seen[key]; dup {
			return errors.Errorf("duplicate platform %q", p.Name)
		}
		seen[key] = struct{}{}

		if err := CheckTemplate(p.URLTemplate); err != nil {
			return errors.Wrapf(err, "platform %q", p.Name)
		}
	}
	return nil
}

// LoadFile reads a JSON catalog:
//
//	{"min_version": "1.0.0", "platforms": [{"name": "GitHub", "url": "https://github.com/%s"}]}
//
// Entries keep the order they have in the file.
func LoadFile(path string) ([]Platform, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}
	platforms, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return platforms, nil
}

// Parse decodes a JSON catalog document. See LoadFile for the format.
func Parse(raw []byte) ([]Platform, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(raw)

	if min := doc.Get("min_version").String(); !version.Satisfies(min) {
		return nil, errors.Errorf("requires version %s or newer (running %s)", min, version.Version)
	}

	entries := doc.Get("platforms")
	if !entries.IsArray() {
		return nil, errors.New(`missing "platforms" array`)
	}

	items := entries.Array()
	if len(items) == 0 {
		return nil, errors.New("no platforms defined")
	}

	out := make([]Platform, 0, len(items))
	for i, e := range items {
		name := strings.TrimSpace(e.Get("name").String())
		tmpl := strings.TrimSpace(e.Get("url").String())
		if name == "" || tmpl == "" {
			return nil, errors.Errorf("platform #%d: name and url are required", i+1)
		}
		out = append(out, Platform{Name: name, URLTemplate: tmpl})
	}

	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}
