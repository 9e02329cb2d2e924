// Package editor is the interactive front end of the line buffer: it
// reads one command per line, translates the user's 1-based line
// numbers to buffer indices and reports every outcome as text.
package editor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bulga138/lined/buffer"
	"github.com/bulga138/lined/config"
	"github.com/bulga138/lined/lineio"
)

type Editor struct {
	buffer      *buffer.LineBuffer
	in          Prompter
	out         io.Writer
	config      config.Config
	filename    string
	initialHash string
	isQuitting  bool
	quit        bool
}

// NewEditor creates an editor reading commands from in and writing to
// out. If file names an existing file it is loaded; a missing file is
// remembered as the save target.
func NewEditor(in Prompter, out io.Writer, cfg config.Config, file string) (*Editor, error) {
	e := &Editor{
		buffer:   buffer.New(cfg.InitialCapacity),
		in:       in,
		out:      out,
		config:   cfg,
		filename: file,
	}
	if file != "" {
		err := lineio.LoadFile(e.buffer, file)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load file %s: %w", file, err)
		}
	}
	e.initialHash = e.calculateBufferHash()
	return e, nil
}

// Buffer returns the edited buffer.
func (e *Editor) Buffer() *buffer.LineBuffer { return e.buffer }

// Run processes commands until q or end of input.
func (e *Editor) Run() error {
	e.printf("Minimal Line-Based Editor. Type 'h' for help.\n")
	e.printHelp()
	for !e.quit {
		line, err := e.in.ReadLine(e.config.Prompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, ErrCanceled) {
			continue
		}
		if err != nil {
			return err
		}
		e.execute(line)
	}
	e.printf("Exiting editor.\n")
	return nil
}

func (e *Editor) execute(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]
	if cmd != "q" {
		e.isQuitting = false
	}
	log.Printf("command %q", line)

	switch cmd {
	case "i":
		e.insertLine(args)
	case "a":
		e.appendLine()
	case "d":
		e.deleteLine(args)
	case "r":
		e.replaceLine(args)
	case "p":
		e.printAllLines()
	case "s":
		e.save(args)
	case "l":
		e.load(args)
	case "f":
		e.buffer.ShrinkToFit()
		e.printf("Shrink-to-fit done. capacity == %d\n", e.buffer.Cap())
	case "h":
		e.printHelp()
	case "q":
		e.handleQuit()
	default:
		e.printf("Unknown command. Type 'h' for help.\n")
	}
}

// parseIndex reads the 1-based line number argument of op.
func (e *Editor) parseIndex(op string, args []string) (int, bool) {
	if len(args) == 0 {
		e.printf("invalid index for %s\n", op)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		e.printf("invalid index for %s\n", op)
		return 0, false
	}
	return n, true
}

// requireLine checks that n names an existing line.
func (e *Editor) requireLine(op string, n int) bool {
	if n < 1 || n > e.buffer.Len() {
		e.printf("%s: index out of range\n", op)
		return false
	}
	return true
}

func (e *Editor) insertLine(args []string) {
	n, ok := e.parseIndex("insert", args)
	if !ok {
		return
	}
	text, ok := e.readText(fmt.Sprintf("Enter line to insert at %d: ", n))
	if !ok {
		return
	}
	idx := min(max(n-1, 0), e.buffer.Len())
	if err := e.buffer.Insert(idx, text); err != nil {
		e.handleBufferError("insert", err)
		return
	}
	e.printf("Inserted.\n")
}

func (e *Editor) appendLine() {
	text, ok := e.readText("Enter line to append: ")
	if !ok {
		return
	}
	e.buffer.Append(text)
	e.printf("Appended.\n")
}

func (e *Editor) deleteLine(args []string) {
	n, ok := e.parseIndex("delete", args)
	if !ok {
		return
	}
	if err := e.buffer.Delete(n - 1); err != nil {
		e.handleBufferError("delete", err)
		return
	}
	e.printf("Deleted.\n")
}

func (e *Editor) replaceLine(args []string) {
	n, ok := e.parseIndex("replace", args)
	if !ok || !e.requireLine("replace", n) {
		return
	}
	text, ok := e.readText(fmt.Sprintf("Enter new text for line %d: ", n))
	if !ok {
		return
	}
	if err := e.buffer.Replace(n-1, text); err != nil {
		e.handleBufferError("replace", err)
		return
	}
	e.printf("Replaced.\n")
}

// readText prompts for the text of a line. It reports false when the
// input ended or the prompt was canceled.
func (e *Editor) readText(prompt string) (string, bool) {
	text, err := e.in.ReadLine(prompt)
	switch {
	case err == nil:
		return text, true
	case errors.Is(err, io.EOF):
		e.printf("No line entered (EOF)\n")
	case errors.Is(err, ErrCanceled):
		e.printf("Canceled.\n")
	default:
		e.printf("Error: %v\n", err)
	}
	return "", false
}

func (e *Editor) handleQuit() {
	if !e.isContentUnchanged() && !e.isQuitting {
		e.isQuitting = true
		e.printf("Unsaved changes. Press q again to quit, or s to save.\n")
		return
	}
	e.quit = true
}

func (e *Editor) printHelp() {
	e.printf(`Commands:
  i <index>   - insert line at index (1-based), then type line text
  a           - append (add at end), then type line text
  d <index>   - delete line at index (1-based)
  r <index>   - replace line at index (1-based), then type new text
  p           - print all lines
  s [file]    - save to file (default: current file)
  l <file>    - load from file (rebuilds buffer)
  f           - shrink-to-fit (capacity becomes the line count)
  h           - help
  q           - quit
`)
}

func (e *Editor) printf(f string, a ...any) {
	fmt.Fprintf(e.out, f, a...)
}
