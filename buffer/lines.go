package buffer

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// LineBuffer is an ordered, growable sequence of owned lines.
//
// Slots in [0, size) hold live lines; slots in [size, cap) are reserved
// and always hold the empty string so no released line stays reachable.
// A LineBuffer is not safe for concurrent use.
type LineBuffer struct {
	slots    []string // len(slots) is the capacity
	size     int
	reallocs int
}

// Statically check that *LineBuffer implements the Buffer interface.
var _ Buffer = (*LineBuffer)(nil)

// New creates an empty LineBuffer with room for hint lines.
// A hint that is not positive is replaced by MinCapacity.
func New(hint int) *LineBuffer {
	if hint <= 0 {
		hint = MinCapacity
	}
	return &LineBuffer{slots: makeSlots(hint)}
}

// Len returns the number of lines.
func (b *LineBuffer) Len() int { return b.size }

// Cap returns the number of reserved slots.
func (b *LineBuffer) Cap() int { return len(b.slots) }

// Reallocs returns how many times the slot array has been replaced,
// by growth or by ShrinkToFit.
func (b *LineBuffer) Reallocs() int { return b.reallocs }

// Insert stores a copy of text at index, shifting the lines at or after
// index one position down. index == Len() appends.
func (b *LineBuffer) Insert(index int, text string) error {
	if index < 0 || index > b.size {
		return outOfRange("insert", index, b.size)
	}
	b.reserve(b.size + 1)
	copy(b.slots[index+1:b.size+1], b.slots[index:b.size])
	b.slots[index] = strings.Clone(text)
	b.size++
	return nil
}

// Append stores a copy of text after the last line.
func (b *LineBuffer) Append(text string) {
	b.reserve(b.size + 1)
	b.slots[b.size] = strings.Clone(text)
	b.size++
}

// Delete removes the line at index and closes the gap.
func (b *LineBuffer) Delete(index int) error {
	if index < 0 || index >= b.size {
		return outOfRange("delete", index, b.size)
	}
	copy(b.slots[index:b.size-1], b.slots[index+1:b.size])
	b.size--
	b.slots[b.size] = ""
	return nil
}

// Replace swaps the line at index for a copy of text.
func (b *LineBuffer) Replace(index int, text string) error {
	if index < 0 || index >= b.size {
		return outOfRange("replace", index, b.size)
	}
	b.slots[index] = strings.Clone(text)
	return nil
}

// Get returns the line at index.
func (b *LineBuffer) Get(index int) (string, error) {
	if index < 0 || index >= b.size {
		return "", outOfRange("get", index, b.size)
	}
	return b.slots[index], nil
}

// Lines returns a copy of the live lines.
func (b *LineBuffer) Lines() []string {
	out := make([]string, b.size)
	copy(out, b.slots[:b.size])
	return out
}

// All enumerates the live lines with their indices.
func (b *LineBuffer) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.slots[i]) {
				return
			}
		}
	}
}

// ShrinkToFit reduces the capacity to exactly Len(). An empty buffer
// drops its slot array altogether.
func (b *LineBuffer) ShrinkToFit() {
	if len(b.slots) == b.size {
		return
	}
	if b.size == 0 {
		b.slots = nil
		b.reallocs++
		return
	}
	next := makeSlots(b.size)
	copy(next, b.slots[:b.size])
	b.slots = next
	b.reallocs++
}

// Clear releases every line. The capacity is kept.
func (b *LineBuffer) Clear() {
	clear(b.slots[:b.size])
	b.size = 0
}

// Swap exchanges the contents of b and other.
func (b *LineBuffer) Swap(other *LineBuffer) {
	*b, *other = *other, *b
}

// WriteTo writes every line followed by '\n', the last one included.
func (b *LineBuffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for i := 0; i < b.size; i++ {
		m, err := bw.WriteString(b.slots[i])
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// reserve makes room for need slots, doubling the capacity as required.
func (b *LineBuffer) reserve(need int) {
	if need <= len(b.slots) {
		return
	}
	next := makeSlots(GrowCap(len(b.slots), need, MinCapacity))
	copy(next, b.slots[:b.size])
	b.slots = next
	b.reallocs++
}
