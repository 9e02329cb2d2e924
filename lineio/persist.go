package lineio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bulga138/lined/buffer"
)

// Save writes every line of b to w followed by '\n'. A failure partway
// through is returned; whatever was already written stays written.
func Save(b buffer.Buffer, w io.Writer) error {
	if _, err := b.WriteTo(w); err != nil {
		return fmt.Errorf("%w: write: %w", ErrIO, err)
	}
	return nil
}

// Load replaces the content of b with the records read from r, in
// order. The records are collected aside and only swapped into b once
// the whole stream has been read, so on error b keeps its previous
// content and the error is returned.
func Load(b *buffer.LineBuffer, r io.Reader) error {
	staged := buffer.New(b.Cap())
	lr := NewReader(r)
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		staged.Append(line)
	}
	b.Swap(staged)
	return nil
}

// SaveFile writes b to the named file, creating or truncating it.
func SaveFile(b buffer.Buffer, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()

	if err := Save(b, f); err != nil {
		return err
	}
	log.Printf("saved %d lines to %s", b.Len(), path)
	return nil
}

// LoadFile replaces the content of b with the lines of the named file.
func LoadFile(b *buffer.LineBuffer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	if err := Load(b, f); err != nil {
		return err
	}
	log.Printf("loaded %d lines from %s", b.Len(), path)
	return nil
}
