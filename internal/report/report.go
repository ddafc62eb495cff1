// ABOUTME: Classifies one host snapshot into report rows: kept or dropped, with the encoded fragment
// ABOUTME: Supports fuzzy narrowing by buffer name while preserving tab order

package report

import (
	"path/filepath"
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/tabline-go/internal/buffer"
	"github.com/mauromedda/tabline-go/internal/clickable"
	"github.com/mauromedda/tabline-go/internal/host"
)

// Row describes one buffer from the host snapshot.
type Row struct {
	Handle   buffer.Handle
	Name     string
	Exists   bool
	Listed   bool
	Kept     bool
	Fragment string
}

// Report is the result of one filter pass against one host.
type Report struct {
	Host  string
	Rows  []Row
	Valid []buffer.Handle
}

// Build snapshots h once, classifies each buffer with a single round of
// queries and encodes a label for each kept buffer.
func Build(h host.Host, enc *clickable.Encoder, mode clickable.Mode) Report {
	all := h.Buffers()
	valid := make([]buffer.Handle, 0, len(all))
	rows := make([]Row, 0, len(all))
	for _, b := range all {
		st := buffer.Classify(h, b)
		r := Row{Handle: b, Name: h.Name(b), Exists: st.Exists, Listed: st.Listed, Kept: st.Valid()}
		if r.Kept {
			valid = append(valid, b)
			r.Fragment = enc.Encode(clickable.Context{Mode: mode, Handle: b, Label: Label(r.Name)})
		}
		rows = append(rows, r)
	}

	return Report{Host: h.String(), Rows: rows, Valid: valid}
}

// Label is the tab label used for a buffer name: its base name, or
// "[No Name]" for unnamed buffers.
func Label(name string) string {
	if name == "" {
		return "[No Name]"
	}
	return filepath.Base(name)
}

type rowNames []Row

func (r rowNames) String(i int) string { return r[i].Name }
func (r rowNames) Len() int            { return len(r) }

// Match keeps the rows whose name fuzzy-matches query, in their original
// order. Valid is narrowed to match. An empty query returns r unchanged.
func (r Report) Match(query string) Report {
	if query == "" {
		return r
	}

	matches := fuzzy.FindFrom(query, rowNames(r.Rows))
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	slices.Sort(idx)

	out := Report{Host: r.Host, Rows: make([]Row, 0, len(idx)), Valid: []buffer.Handle{}}
	for _, i := range idx {
		row := r.Rows[i]
		out.Rows = append(out.Rows, row)
		if row.Kept {
			out.Valid = append(out.Valid, row.Handle)
		}
	}
	return out
}
