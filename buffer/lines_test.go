package buffer

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func newFilled(lines ...string) *LineBuffer {
	b := New(0)
	for _, l := range lines {
		b.Append(l)
	}
	return b
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		hint    int
		wantCap int
	}{
		{"zero hint", 0, MinCapacity},
		{"negative hint", -3, MinCapacity},
		{"one", 1, 1},
		{"explicit", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.hint)
			if b.Len() != 0 {
				t.Errorf("expected empty buffer, got %d lines", b.Len())
			}
			if b.Cap() != tt.wantCap {
				t.Errorf("expected capacity %d, got %d", tt.wantCap, b.Cap())
			}
		})
	}
}

func TestLineBuffer_Insert(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		index    int
		text     string
		expected []string
	}{
		{"into empty", nil, 0, "a", []string{"a"}},
		{"at start", []string{"b", "c"}, 0, "a", []string{"a", "b", "c"}},
		{"in middle", []string{"a", "c"}, 1, "b", []string{"a", "b", "c"}},
		{"at size appends", []string{"a", "b"}, 2, "c", []string{"a", "b", "c"}},
		{"empty text", []string{"a"}, 1, "", []string{"a", ""}},
		{"past capacity", []string{"1", "2", "3", "4"}, 2, "x", []string{"1", "2", "x", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFilled(tt.initial...)
			if err := b.Insert(tt.index, tt.text); err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
			got, err := b.Get(tt.index)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != tt.text {
				t.Errorf("expected %q at %d, got %q", tt.text, tt.index, got)
			}
			if !slices.Equal(b.Lines(), tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, b.Lines())
			}
		})
	}
}

func TestLineBuffer_InsertOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"past size", 3},
		{"far past size", 100},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFilled("a", "b")
			capBefore := b.Cap()
			err := b.Insert(tt.index, "x")
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
			var re *RangeError
			if !errors.As(err, &re) || re.Op != "insert" || re.Index != tt.index || re.Size != 2 {
				t.Errorf("unexpected range error %#v", re)
			}
			if b.Len() != 2 || b.Cap() != capBefore {
				t.Errorf("buffer changed: len %d cap %d", b.Len(), b.Cap())
			}
			if !slices.Equal(b.Lines(), []string{"a", "b"}) {
				t.Errorf("content changed: %q", b.Lines())
			}
		})
	}
}

func TestLineBuffer_Delete(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		index    int
		expected []string
	}{
		{"only line", []string{"a"}, 0, []string{}},
		{"first", []string{"a", "b", "c"}, 0, []string{"b", "c"}},
		{"middle", []string{"a", "b", "c"}, 1, []string{"a", "c"}},
		{"last", []string{"a", "b", "c"}, 2, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFilled(tt.initial...)
			if err := b.Delete(tt.index); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if b.Len() != len(tt.initial)-1 {
				t.Errorf("expected %d lines, got %d", len(tt.initial)-1, b.Len())
			}
			if !slices.Equal(b.Lines(), tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, b.Lines())
			}
			if b.slots[b.Len()] != "" {
				t.Errorf("vacated slot still holds %q", b.slots[b.Len()])
			}
		})
	}
}

func TestLineBuffer_OutOfRange(t *testing.T) {
	b := newFilled("a", "b")
	ops := map[string]func() error{
		"delete at size":   func() error { return b.Delete(2) },
		"delete negative":  func() error { return b.Delete(-1) },
		"replace at size":  func() error { return b.Replace(2, "x") },
		"replace negative": func() error { return b.Replace(-1, "x") },
		"get at size": func() error {
			_, err := b.Get(2)
			return err
		},
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
			if !slices.Equal(b.Lines(), []string{"a", "b"}) {
				t.Errorf("content changed: %q", b.Lines())
			}
		})
	}

	empty := New(0)
	if err := empty.Delete(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("delete on empty buffer: expected ErrOutOfRange, got %v", err)
	}
}

func TestLineBuffer_Replace(t *testing.T) {
	b := newFilled("a", "b", "c")
	if err := b.Replace(1, "B"); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if !slices.Equal(b.Lines(), []string{"a", "B", "c"}) {
		t.Errorf("unexpected content %q", b.Lines())
	}
	if b.Len() != 3 {
		t.Errorf("expected 3 lines, got %d", b.Len())
	}
}

func TestLineBuffer_InsertDeleteRoundTrip(t *testing.T) {
	initial := []string{"one", "two", "three"}
	for i := 0; i <= len(initial); i++ {
		b := newFilled(initial...)
		if err := b.Insert(i, "tmp"); err != nil {
			t.Fatalf("Insert(%d) failed: %v", i, err)
		}
		if err := b.Delete(i); err != nil {
			t.Fatalf("Delete(%d) failed: %v", i, err)
		}
		if !slices.Equal(b.Lines(), initial) {
			t.Errorf("index %d: expected %q, got %q", i, initial, b.Lines())
		}
	}
}

func TestLineBuffer_StoresCopies(t *testing.T) {
	src := []byte("hello")
	b := New(0)
	b.Append(string(src))
	long := strings.Repeat("x", 64)
	if err := b.Insert(0, long[:3]); err != nil {
		t.Fatal(err)
	}
	src[0] = 'j'
	got, _ := b.Get(1)
	if got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
	got, _ = b.Get(0)
	if got != "xxx" {
		t.Errorf("expected %q, got %q", "xxx", got)
	}
}

func TestLineBuffer_Growth(t *testing.T) {
	b := New(0)
	wantCaps := map[int]int{1: 4, 4: 4, 5: 8, 9: 16, 17: 32, 33: 64}
	for i := 1; i <= 40; i++ {
		b.Append("line")
		if want, ok := wantCaps[i]; ok && b.Cap() != want {
			t.Errorf("after %d appends expected capacity %d, got %d", i, want, b.Cap())
		}
		if b.Cap() < b.Len() {
			t.Fatalf("capacity %d below size %d", b.Cap(), b.Len())
		}
	}
}

func TestLineBuffer_GrowthIsGeometric(t *testing.T) {
	const n = 100000
	b := New(0)
	for i := 0; i < n; i++ {
		b.Append("x")
	}
	// 4 doubled up to 131072 takes 15 reallocations.
	if b.Reallocs() > 15 {
		t.Errorf("expected at most 15 reallocations for %d appends, got %d", n, b.Reallocs())
	}
	if b.Len() != n {
		t.Errorf("expected %d lines, got %d", n, b.Len())
	}
}

func TestLineBuffer_ShrinkToFit(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"empty", nil},
		{"one", []string{"a"}},
		{"five", []string{"a", "b", "", "d", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFilled(tt.lines...)
			b.ShrinkToFit()
			if b.Cap() != b.Len() {
				t.Errorf("expected capacity %d, got %d", b.Len(), b.Cap())
			}
			if !slices.Equal(b.Lines(), append([]string{}, tt.lines...)) {
				t.Errorf("expected %q, got %q", tt.lines, b.Lines())
			}
			reallocs := b.Reallocs()
			b.ShrinkToFit()
			if b.Reallocs() != reallocs {
				t.Errorf("second ShrinkToFit reallocated")
			}
			b.Append("after")
			if got, _ := b.Get(b.Len() - 1); got != "after" {
				t.Errorf("append after shrink: got %q", got)
			}
		})
	}
}

func TestLineBuffer_Clear(t *testing.T) {
	b := newFilled("a", "b", "c")
	capBefore := b.Cap()
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("expected empty buffer, got %d lines", b.Len())
	}
	if b.Cap() != capBefore {
		t.Errorf("expected capacity %d kept, got %d", capBefore, b.Cap())
	}
	for i, s := range b.slots {
		if s != "" {
			t.Errorf("slot %d still holds %q", i, s)
		}
	}
}

func TestLineBuffer_All(t *testing.T) {
	b := newFilled("a", "b", "c")
	var got []string
	for i, l := range b.All() {
		if i != len(got) {
			t.Errorf("unexpected index %d", i)
		}
		got = append(got, l)
		if i == 1 {
			break
		}
	}
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("expected early stop after two lines, got %q", got)
	}
}

func TestLineBuffer_WriteTo(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{"empty", nil, ""},
		{"one empty line", []string{""}, "\n"},
		{"lines", []string{"a", "bc"}, "a\nbc\n"},
		{"empty last line", []string{"a", ""}, "a\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFilled(tt.lines...)
			var buf bytes.Buffer
			n, err := b.WriteTo(&buf)
			if err != nil {
				t.Fatalf("WriteTo failed: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
			if n != int64(len(tt.expected)) {
				t.Errorf("expected %d bytes, got %d", len(tt.expected), n)
			}
		})
	}
}

func TestLineBuffer_Swap(t *testing.T) {
	a := newFilled("a1", "a2")
	b := newFilled("b1")
	a.Swap(b)
	if !slices.Equal(a.Lines(), []string{"b1"}) || !slices.Equal(b.Lines(), []string{"a1", "a2"}) {
		t.Errorf("swap failed: %q / %q", a.Lines(), b.Lines())
	}
}

func TestScenario(t *testing.T) {
	b := New(0)
	b.Append("alpha")
	b.Append("beta")
	if err := b.Insert(1, "gamma"); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(b.Lines(), []string{"alpha", "gamma", "beta"}) {
		t.Fatalf("unexpected content %q", b.Lines())
	}
	if err := b.Delete(0); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(b.Lines(), []string{"gamma", "beta"}) {
		t.Fatalf("unexpected content %q", b.Lines())
	}
}
