package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/bulga138/lined/lineio"
)

// ErrCanceled is returned by a Prompter when the user abandons the
// current line (Ctrl-C on a terminal).
var ErrCanceled = errors.New("input canceled")

// Prompter supplies lines of user input. ReadLine returns io.EOF when
// no more input will arrive.
type Prompter interface {
	ReadLine(prompt string) (string, error)
}

// StreamPrompter prints prompts to out and reads lines from a plain
// byte stream, such as a pipe or redirected file.
type StreamPrompter struct {
	r   *lineio.Reader
	out io.Writer
}

func NewStreamPrompter(in io.Reader, out io.Writer) *StreamPrompter {
	return &StreamPrompter{r: lineio.NewReader(in), out: out}
}

func (p *StreamPrompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	return p.r.ReadLine()
}

// ReadlinePrompter reads from a terminal with line editing and a
// persistent history.
type ReadlinePrompter struct {
	rl *readline.Instance
}

func NewReadlinePrompter(historyFile string) (*ReadlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       historyFile,
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlinePrompter{rl: rl}, nil
}

func (p *ReadlinePrompter) ReadLine(prompt string) (string, error) {
	p.rl.SetPrompt(prompt)
	line, err := p.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrCanceled
	}
	return line, err
}

// Stdout is where output should go so it does not garble the prompt.
func (p *ReadlinePrompter) Stdout() io.Writer { return p.rl.Stdout() }

func (p *ReadlinePrompter) Close() error { return p.rl.Close() }
