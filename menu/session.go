// Package menu is the interactive front end: it shows the list of operations,
// prompts for their parameters and runs each choice on a fresh copy of the
// loaded image.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pgmproc/ops"
	"pgmproc/raster"
)

// Session reads choices from in and writes prompts to out.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	runner *ops.Runner
	source *raster.Grid
}

func NewSession(in io.Reader, out io.Writer, runner *ops.Runner, source *raster.Grid) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		runner: runner,
		source: source,
	}
}

// Loop shows the menu until the user picks 0 or input ends.
func (s *Session) Loop() error {
	all := ops.All()
	for {
		s.printMenu(all)

		line, ok := s.prompt("Choose an option: ")
		if !ok {
			return s.in.Err()
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 0 || choice > len(all) {
			fmt.Fprintln(s.out, "Invalid option. Please choose a valid option.")
			continue
		}
		if choice == 0 {
			return nil
		}

		op := all[choice-1]
		params, ok, err := s.readParams(op)
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if !ok {
			return s.in.Err()
		}

		s.runner.Exec(s.source, op.Name, params)
	}
}

func (s *Session) printMenu(all []ops.Operation) {
	fmt.Fprintln(s.out, "\nMenu :")
	for i, op := range all {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, op.Title)
	}
	fmt.Fprintln(s.out, "0. Quit")
}

// prompt returns the next trimmed input line; ok is false at end of input.
func (s *Session) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

var questions = map[string]string{
	ops.ParamAngle:     "Rotation angle in degrees?\n> ",
	ops.ParamClockwise: "Direction?\n - clockwise (1)\n - counter-clockwise (2)\n> ",
	ops.ParamShift:     "Translation amount?\n> ",
	ops.ParamCutoff:    "Threshold level?\n> ",
	ops.ParamDelta:     "%s level?\n> ",
	ops.ParamBlock:     "Pixel size?\n> ",
}

// readParams asks for every parameter op needs. ok is false when input ended
// before all answers were read.
func (s *Session) readParams(op ops.Operation) (p ops.Params, ok bool, err error) {
	for _, name := range op.Needs {
		question := questions[name]
		if name == ops.ParamDelta {
			question = fmt.Sprintf(question, op.Title)
		}

		line, more := s.prompt(question)
		if !more {
			return p, false, nil
		}

		switch name {
		case ops.ParamAngle:
			p.Angle, err = strconv.ParseFloat(line, 32)
		case ops.ParamDelta:
			p.Delta, err = strconv.ParseFloat(line, 32)
		case ops.ParamClockwise:
			var dir int
			dir, err = strconv.Atoi(line)
			p.Clockwise = dir == 1
		case ops.ParamShift:
			p.Shift, err = strconv.Atoi(line)
		case ops.ParamCutoff:
			p.Cutoff, err = strconv.Atoi(line)
		case ops.ParamBlock:
			p.Block, err = strconv.Atoi(line)
		}
		if err != nil {
			return p, true, fmt.Errorf("invalid %s %q", name, line)
		}
	}
	return p, true, nil
}
