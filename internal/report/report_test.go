// ABOUTME: Tests for report building, fuzzy narrowing and output formats
// ABOUTME: Drives reports from in-memory YAML snapshots

package report

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/mauromedda/tabline-go/internal/buffer"
	"github.com/mauromedda/tabline-go/internal/clickable"
	"github.com/mauromedda/tabline-go/internal/host"
)

const fixture = `
capabilities:
  tablineat: true
buffers:
  - {handle: 1, name: /src/main.go, listed: true}
  - {handle: 2, name: /src/scratch, listed: false}
  - {handle: 4, name: "", listed: true}
  - {handle: 6, name: /src/maintenance.md, listed: true, valid: false}
  - {handle: 8, name: /src/model.go, listed: true}
`

func snapshot(t *testing.T, src string) *host.Snapshot {
	t.Helper()
	s, err := host.ParseSnapshot([]byte(src))
	if err != nil {
		t.Fatalf("ParseSnapshot() error: %v", err)
	}
	return s
}

func TestBuild(t *testing.T) {
	t.Parallel()

	s := snapshot(t, fixture)
	r := Build(s, clickable.NewEncoder(s), clickable.SingleWindow)

	if got, want := r.Valid, []buffer.Handle{1, 4, 8}; !slices.Equal(got, want) {
		t.Errorf("Valid = %v, want %v", got, want)
	}
	if len(r.Rows) != 5 {
		t.Fatalf("len(Rows) = %d, want 5", len(r.Rows))
	}

	first := r.Rows[0]
	if !first.Kept || first.Fragment != "%1@v:lua.___bufferline_private.handle_click@main.go" {
		t.Errorf("row 1 = %+v", first)
	}
	if r.Rows[2].Fragment != "%4@v:lua.___bufferline_private.handle_click@[No Name]" {
		t.Errorf("unnamed fragment = %q", r.Rows[2].Fragment)
	}

	wiped := r.Rows[3]
	if wiped.Kept || wiped.Exists || wiped.Fragment != "" {
		t.Errorf("wiped row = %+v, want dropped with no fragment", wiped)
	}
	hidden := r.Rows[1]
	if hidden.Kept || !hidden.Exists || hidden.Listed {
		t.Errorf("hidden row = %+v", hidden)
	}
}

// countingHost records every Exists and Listed query made against a snapshot.
type countingHost struct {
	*host.Snapshot
	exists map[buffer.Handle]int
	listed map[buffer.Handle]int
}

func (c *countingHost) Exists(h buffer.Handle) bool {
	c.exists[h]++
	return c.Snapshot.Exists(h)
}

func (c *countingHost) Listed(h buffer.Handle) bool {
	c.listed[h]++
	return c.Snapshot.Listed(h)
}

func TestBuild_QueriesEachBufferOnce(t *testing.T) {
	t.Parallel()

	s := snapshot(t, fixture)
	h := &countingHost{Snapshot: s, exists: map[buffer.Handle]int{}, listed: map[buffer.Handle]int{}}
	r := Build(h, clickable.NewEncoder(h), clickable.SingleWindow)

	for _, row := range r.Rows {
		if n := h.exists[row.Handle]; n != 1 {
			t.Errorf("Exists(%d) queried %d times, want 1", row.Handle, n)
		}
		if n := h.listed[row.Handle]; n > 1 {
			t.Errorf("Listed(%d) queried %d times, want at most 1", row.Handle, n)
		}
		if row.Kept != (row.Exists && row.Listed) {
			t.Errorf("row %d: Kept=%v but Exists=%v Listed=%v", row.Handle, row.Kept, row.Exists, row.Listed)
		}
	}
	if got, want := r.Valid, []buffer.Handle{1, 4, 8}; !slices.Equal(got, want) {
		t.Errorf("Valid = %v, want %v", got, want)
	}
}

func TestBuild_NotClickable(t *testing.T) {
	t.Parallel()

	s := snapshot(t, "buffers:\n  - {handle: 3, name: a/b.txt, listed: true}\n")
	r := Build(s, clickable.NewEncoder(s), clickable.MultiWindow)
	if r.Rows[0].Fragment != "b.txt" {
		t.Errorf("Fragment = %q, want plain label", r.Rows[0].Fragment)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	s := snapshot(t, fixture)
	r := Build(s, clickable.NewEncoder(s), clickable.SingleWindow).Match("main")

	var names []string
	for _, row := range r.Rows {
		names = append(names, row.Name)
	}
	if want := []string{"/src/main.go", "/src/maintenance.md"}; !slices.Equal(names, want) {
		t.Errorf("Match rows = %v, want %v", names, want)
	}
	if want := []buffer.Handle{1}; !slices.Equal(r.Valid, want) {
		t.Errorf("Match valid = %v, want %v", r.Valid, want)
	}
}

func TestMatch_EmptyQuery(t *testing.T) {
	t.Parallel()

	s := snapshot(t, fixture)
	r := Build(s, clickable.NewEncoder(s), clickable.SingleWindow)
	if got := r.Match(""); len(got.Rows) != len(r.Rows) {
		t.Errorf("Match(\"\") dropped rows")
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"": "[No Name]", "/a/b/c.go": "c.go", "x": "x"} {
		if got := Label(in); got != want {
			t.Errorf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	s := snapshot(t, fixture)
	reports := []Report{
		Build(s, clickable.NewEncoder(s), clickable.SingleWindow),
		{Host: "empty"},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, reports); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded []struct {
		Host    string `json:"host"`
		Valid   []int  `json:"valid"`
		Buffers []struct {
			Handle   int    `json:"handle"`
			Kept     bool   `json:"kept"`
			Fragment string `json:"fragment"`
		} `json:"buffers"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d reports, want 2", len(decoded))
	}
	if !slices.Equal(decoded[0].Valid, []int{1, 4, 8}) {
		t.Errorf("valid = %v", decoded[0].Valid)
	}
	if decoded[0].Buffers[0].Fragment == "" {
		t.Error("expected fragment on kept buffer")
	}
	if !strings.Contains(buf.String(), `"valid":[]`) {
		t.Errorf("empty valid set should encode as [], got %s", buf.String())
	}
}

func TestWriteTable_Plain(t *testing.T) {
	t.Parallel()

	s := snapshot(t, fixture)
	var buf bytes.Buffer
	if err := WriteTable(&buf, []Report{Build(s, clickable.NewEncoder(s), clickable.SingleWindow)}, false); err != nil {
		t.Fatalf("WriteTable() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 kept buffers:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "snapshot\t1\t/src/main.go\t%1@") {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestWriteTable_Styled(t *testing.T) {
	t.Parallel()

	s := snapshot(t, fixture)
	var buf bytes.Buffer
	if err := WriteTable(&buf, []Report{Build(s, clickable.NewEncoder(s), clickable.SingleWindow)}, true); err != nil {
		t.Fatalf("WriteTable() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"3/5 kept", "BUF", "main.go", "scratch"} {
		if !strings.Contains(out, want) {
			t.Errorf("styled output missing %q:\n%s", want, out)
		}
	}
}
