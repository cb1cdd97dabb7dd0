// Package doctor runs health checks over an efie setup: the config file, the
// stored settings with their save location, and the recent list.
package doctor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hay-kot/criterio"
)

// Status is the outcome of a single check item.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckItem is one line of a check result.
type CheckItem struct {
	Label   string `json:"label"`
	Status  Status `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Fixable bool   `json:"fixable,omitempty"`
}

// Result groups the items produced by one check.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
}

func (r *Result) add(label string, status Status, detail string) {
	r.Items = append(r.Items, CheckItem{Label: label, Status: status, Detail: detail})
}

// addErr records err as failing items, one per field when err carries
// criterio field errors.
func (r *Result) addErr(err error) {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		r.add("validation", StatusFail, err.Error())
		return
	}

	for _, fe := range fieldErrs {
		label := fe.Field
		if label == "" {
			label = "validation"
		}
		r.add(label, StatusFail, fe.Err.Error())
	}
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// Totals counts items by status.
type Totals struct {
	Passed  int `json:"passed"`
	Warned  int `json:"warned"`
	Failed  int `json:"failed"`
	Fixable int `json:"fixable"`
}

// Report is the outcome of a doctor run.
type Report struct {
	Healthy bool     `json:"healthy"`
	Summary Totals   `json:"summary"`
	Checks  []Result `json:"checks"`
}

// RunAll executes checks in order and tallies their items.
func RunAll(ctx context.Context, checks []Check) Report {
	report := Report{Checks: make([]Result, 0, len(checks))}
	for _, check := range checks {
		report.Checks = append(report.Checks, check.Run(ctx))
	}

	report.Summary = Tally(report.Checks)
	report.Healthy = report.Summary.Failed == 0
	return report
}

// Tally counts the items of results by status. Fixable counts only items
// that did not pass.
func Tally(results []Result) Totals {
	var t Totals
	for _, r := range results {
		for _, item := range r.Items {
			switch item.Status {
			case StatusPass:
				t.Passed++
			case StatusWarn:
				t.Warned++
			case StatusFail:
				t.Failed++
			}
			if item.Fixable && item.Status != StatusPass {
				t.Fixable++
			}
		}
	}
	return t
}
