package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks questions one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	// Clear erases each question and answer once read.
	Clear bool
}

// NewPrompter reads answers from in and writes questions to out. Clearing
// is enabled when both ends are terminals.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out}
	inF, inOK := in.(*os.File)
	outF, outOK := out.(*os.File)
	p.Clear = inOK && outOK && IsTerminal(inF) && IsTerminal(outF)
	return p
}

// Ask prints label and returns the trimmed answer. A final line without a
// newline is still returned; io.EOF is returned only when nothing was read.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	if p.Clear {
		ClearPreviousLines(p.out, len(label)+len(strings.TrimRight(line, "\r\n")))
	}
	return strings.TrimSpace(line), nil
}

// AskDefault is Ask that returns def for an empty answer.
func (p *Prompter) AskDefault(label, def string) (string, error) {
	if def != "" {
		label = fmt.Sprintf("%s[%s] ", label, def)
	}
	v, err := p.Ask(label)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}
