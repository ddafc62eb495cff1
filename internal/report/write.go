// ABOUTME: Report output: lipgloss tables for terminals, plain columns for pipes, JSON for tools
// ABOUTME: JSON is written with easyjson's jwriter to keep valid sets as [] rather than null

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mailru/easyjson/jwriter"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	droppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hostStyle    = lipgloss.NewStyle().Bold(true)
)

func mark(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// WriteTable renders reports for a human. styled selects lipgloss tables;
// otherwise one tab-separated line per kept buffer is written.
func WriteTable(w io.Writer, reports []Report, styled bool) error {
	for i, r := range reports {
		if !styled {
			if err := writePlain(w, r); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeStyled(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writePlain(w io.Writer, r Report) error {
	for _, row := range r.Rows {
		if !row.Kept {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Host, row.Handle, row.Name, row.Fragment); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

func writeStyled(w io.Writer, r Report) error {
	rows := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = []string{
			strconv.Itoa(int(row.Handle)),
			row.Name,
			mark(row.Exists),
			mark(row.Listed),
			mark(row.Kept),
			row.Fragment,
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("BUF", "NAME", "VALID", "LISTED", "KEPT", "FRAGMENT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(r.Rows) && r.Rows[row].Kept:
				return keptStyle
			default:
				return droppedStyle
			}
		})

	_, err := fmt.Fprintf(w, "%s  %d/%d kept\n%s\n",
		hostStyle.Render(r.Host), len(r.Valid), len(r.Rows), t.String())
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteJSON writes reports as a JSON array.
func WriteJSON(w io.Writer, reports []Report) error {
	var jw jwriter.Writer
	jw.RawByte('[')
	for i, r := range reports {
		if i > 0 {
			jw.RawByte(',')
		}
		encodeReport(&jw, r)
	}
	jw.RawByte(']')
	jw.RawByte('\n')

	if jw.Error != nil {
		return fmt.Errorf("encoding report: %w", jw.Error)
	}
	if _, err := jw.DumpTo(w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func encodeReport(jw *jwriter.Writer, r Report) {
	jw.RawString(`{"host":`)
	jw.String(r.Host)

	jw.RawString(`,"valid":[`)
	for i, h := range r.Valid {
		if i > 0 {
			jw.RawByte(',')
		}
		jw.Int(int(h))
	}
	jw.RawString(`],"buffers":[`)
	for i, row := range r.Rows {
		if i > 0 {
			jw.RawByte(',')
		}
		jw.RawString(`{"handle":`)
		jw.Int(int(row.Handle))
		jw.RawString(`,"name":`)
		jw.String(row.Name)
		jw.RawString(`,"exists":`)
		jw.Bool(row.Exists)
		jw.RawString(`,"listed":`)
		jw.Bool(row.Listed)
		jw.RawString(`,"kept":`)
		jw.Bool(row.Kept)
		if row.Fragment != "" {
			jw.RawString(`,"fragment":`)
			jw.String(row.Fragment)
		}
		jw.RawByte('}')
	}
	jw.RawString(`]}`)
}
