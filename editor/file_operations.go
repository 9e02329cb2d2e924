package editor

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"

	"github.com/bulga138/lined/buffer"
	"github.com/bulga138/lined/lineio"
)

func (e *Editor) save(args []string) {
	filename := e.filename
	if len(args) > 0 {
		filename = args[0]
	}
	if filename == "" {
		e.printf("Usage: s <file>\n")
		return
	}

	if err := lineio.SaveFile(e.buffer, filename); err != nil {
		log.Printf("save %s: %v", filename, err)
		e.printf("Failed to save to %s: %v\n", filename, err)
		return
	}
	e.filename = filename
	// Update the hash after a successful save
	e.initialHash = e.calculateBufferHash()
	e.printf("Saved to %s\n", filename)
}

func (e *Editor) load(args []string) {
	if len(args) == 0 {
		e.printf("Usage: l <file>\n")
		return
	}
	filename := args[0]

	if err := lineio.LoadFile(e.buffer, filename); err != nil {
		log.Printf("load %s: %v", filename, err)
		e.printf("Failed to load from %s: %v\n", filename, err)
		return
	}
	e.filename = filename
	e.initialHash = e.calculateBufferHash()
	e.printf("Loaded %d line(s) from %s\n", e.buffer.Len(), filename)
}

// handleBufferError reports a failed buffer operation.
func (e *Editor) handleBufferError(op string, err error) {
	log.Printf("%s: %v", op, err)
	if errors.Is(err, buffer.ErrOutOfRange) {
		e.printf("%s: index out of range\n", op)
		return
	}
	e.printf("Error: %v\n", err)
}

// calculateBufferHash computes the SHA-256 hash of the serialized buffer,
// so a buffer edited back to its saved state does not count as modified.
func (e *Editor) calculateBufferHash() string {
	hasher := sha256.New()
	if _, err := e.buffer.WriteTo(hasher); err != nil {
		return "error_calculating_hash"
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// isContentUnchanged checks if the current buffer content exactly matches
// the content when the file was loaded or last saved.
func (e *Editor) isContentUnchanged() bool {
	return e.calculateBufferHash() == e.initialHash
}
