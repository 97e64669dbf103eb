// Package prompt asks the operator to confirm where a project is created.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	oerrors "github.com/opmodel/jproj/internal/errors"
)

// Confirmer reads answers from In and writes questions to Out.
type Confirmer struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// NewConfirmer creates a confirmer over in and out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{In: in, Out: out}
}

// ConfirmRoot asks whether cwd is the right place for the project.
//
//   - y accepts cwd.
//   - n asks for another path and returns it.
//   - q aborts with ErrAborted.
//
// Any other answer repeats the question. End of input aborts.
func (c *Confirmer) ConfirmRoot(cwd string) (string, error) {
	for {
		fmt.Fprintf(c.Out, "Java project will be created in : %s is this correct? [y/n/q] ", cwd)

		answer, err := c.readLine()
		if err != nil {
			return "", err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			fmt.Fprintf(c.Out, "Creating project in path : %s\n", cwd)
			return cwd, nil
		case "n", "no":
			return c.askPath()
		case "q", "quit":
			return "", oerrors.ErrAborted
		}
	}
}

func (c *Confirmer) askPath() (string, error) {
	for {
		fmt.Fprint(c.Out, "Please specify the desired path : ")

		path, err := c.readLine()
		if err != nil {
			return "", err
		}
		if path != "" {
			return path, nil
		}
	}
}

// readLine returns the next trimmed line. End of input without a pending
// answer is ErrAborted.
func (c *Confirmer) readLine() (string, error) {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.In)
	}

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line = strings.TrimSpace(line); line != "" {
				return line, nil
			}
			fmt.Fprintln(c.Out)
			return "", fmt.Errorf("no answer: %w", oerrors.ErrAborted)
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
