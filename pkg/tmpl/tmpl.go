// Package tmpl renders the user configurable command templates.
package tmpl

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
)

// shellQuote wraps s in single quotes, escaping embedded single quotes as '\''.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// env returns the environment variable, or fallback when it is unset or empty.
func env(name string, fallback ...string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

var funcs = template.FuncMap{
	"shq": shellQuote,
	"env": env,
}

// Render executes a Go template string with the given data. Undefined keys
// are an error.
//
// Functions:
//   - shq: shell-quote a string
//   - env: read an environment variable with an optional fallback
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
