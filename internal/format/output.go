package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a rendered-as-text view of command output.
type Table struct {
	Header []string
	Rows   [][]string
}

// Tabular values can be printed with --format table.
type Tabular interface {
	Table() Table
}

// ErrNotTabular is returned for --format table on output without a table view.
var ErrNotTabular = errors.New("output has no table view (use --format json|edn)")

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - edn
// - table (only for Tabular values, or envelopes whose "data" is Tabular)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	case "table":
		return WriteTable(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteTable renders a bordered text table.
func WriteTable(w io.Writer, v any) error {
	tab, ok := tabularOf(v)
	if !ok {
		return ErrNotTabular
	}
	t := tableOf(tab.Table())
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func tabularOf(v any) (Tabular, bool) {
	switch t := v.(type) {
	case Tabular:
		return t, true
	case map[string]any:
		if d, ok := t["data"].(Tabular); ok {
			return d, true
		}
	}
	return nil, false
}

func tableOf(tb Table) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tb.Header...).
		Rows(tb.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
