// Package output provides output formatting for catalog listings and check reports.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"dimensional/core/catalog"
	"dimensional/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable table
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", errors.Newf(errors.TypeInvalidArgument, "unknown output format %q", s)
	}
}

// UnitRow is one rendered catalog entry
type UnitRow struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Kind      string `json:"kind"`
	Scale     string `json:"scale"`
	Dimension string `json:"dimension"`
	Notes     string `json:"notes,omitempty"`
}

// UnitGroup is a set of rows sharing a dimension
type UnitGroup struct {
	Dimension string    `json:"dimension"`
	Units     []UnitRow `json:"units"`
}

// CheckRow is one rendered property or validation outcome
type CheckRow struct {
	Name       string   `json:"name"`
	Passed     bool     `json:"passed"`
	Violations []string `json:"violations,omitempty"`
}

// UnitGroups converts catalog groups into rows
func UnitGroups(groups []catalog.Group, showNotes bool) []UnitGroup {
	out := make([]UnitGroup, 0, len(groups))
	for _, g := range groups {
		ug := UnitGroup{Dimension: g.Dimension}
		for _, e := range g.Entries {
			row := UnitRow{
				Name:      e.Name,
				Symbol:    e.Symbol,
				Kind:      e.Kind.String(),
				Scale:     e.Unit.Scale().String(),
				Dimension: e.Unit.Dimension().String(),
			}
			if showNotes {
				row.Notes = e.Notes
			}
			ug.Units = append(ug.Units, row)
		}
		out = append(out, ug)
	}
	return out
}

// CheckRows converts property results into rows
func CheckRows(results []catalog.PropertyResult) []CheckRow {
	rows := make([]CheckRow, 0, len(results))
	for _, r := range results {
		row := CheckRow{Name: r.Name, Passed: r.Passed()}
		for _, v := range r.Violations {
			row.Violations = append(row.Violations, v.Error())
		}
		rows = append(rows, row)
	}
	return rows
}

// RenderUnits writes unit groups in the given format
func RenderUnits(w io.Writer, format Format, groups []UnitGroup) error {
	if format == FormatJSON {
		return writeJSON(w, groups)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", g.Dimension)
		for _, u := range g.Units {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s", u.Name, u.Symbol, u.Kind, u.Scale)
			if u.Notes != "" {
				fmt.Fprintf(tw, "\t(%s)", u.Notes)
			}
			fmt.Fprintln(tw)
		}
	}
	return tw.Flush()
}

// RenderCheck writes check rows in the given format
func RenderCheck(w io.Writer, format Format, rows []CheckRow) error {
	if format == FormatJSON {
		return writeJSON(w, rows)
	}

	for _, r := range rows {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s  %s\n", status, r.Name)
		for _, v := range r.Violations {
			fmt.Fprintf(w, "      %s\n", v)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
