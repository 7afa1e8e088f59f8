// Package menu is a small numbered-choice loop over a line-oriented input.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// NoSelection is returned by Choice for input that is not a listed option.
const NoSelection = 0

// Outcome tells the loop what to do after a handler returns.
type Outcome int

const (
	Stay Outcome = iota
	Exit
)

// Handler runs one menu option.
type Handler func(ctx context.Context) (Outcome, error)

type Item struct {
	Label  string
	Handle Handler
}

// Menu is a titled list of options numbered from 1.
type Menu struct {
	Title   string
	Example string
	Items   []Item
}

// Controller reads choices from in and writes menus and results to out.
type Controller struct {
	in       *bufio.Reader
	out      io.Writer
	Describe func(error) string
}

func NewController(in io.Reader, out io.Writer) *Controller {
	return &Controller{
		in:       bufio.NewReader(in),
		out:      out,
		Describe: func(err error) string { return err.Error() },
	}
}

func (c *Controller) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Controller) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// ReadLine prompts and returns the next line without surrounding space.
// Lines of any length are accepted. It returns io.EOF once the input is exhausted.
func (c *Controller) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt prompts for an integer. ok is false when the line is not one.
func (c *Controller) ReadInt(prompt string) (n int, ok bool, err error) {
	line, err := c.ReadLine(prompt)
	if err != nil {
		return 0, false, err
	}
	n, perr := strconv.Atoi(line)
	if perr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// Choice shows m and reads one option. Anything outside [1, len(m.Items)] yields
// NoSelection. The only error is the end of input.
func (c *Controller) Choice(m Menu) (int, error) {
	c.Printf("-- %s --\n\n", m.Title)
	for i, it := range m.Items {
		c.Printf("%d. %s\n", i+1, it.Label)
	}
	c.Println()

	n, ok, err := c.ReadInt(fmt.Sprintf("<Example enter: %s>: ", m.Example))
	if err != nil {
		return NoSelection, err
	}
	if !ok || n < 1 || n > len(m.Items) {
		return NoSelection, nil
	}
	return n, nil
}

// Run loops over m until a handler asks to exit, the input ends or ctx is done.
// Handler errors are reported on the output and the loop continues.
func (c *Controller) Run(ctx context.Context, m Menu) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := c.Choice(m)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == NoSelection {
			c.Println("Invalid choice, try again...")
			continue
		}

		item := m.Items[choice-1]
		outcome, err := item.Handle(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Warn().Err(err).Str("menu", m.Title).Str("option", item.Label).Msg("menu: handler failed")
			c.Println(c.Describe(err))
			continue
		}
		if outcome == Exit {
			return nil
		}
	}
}
