// Package cli runs the interactive appointment menu over a line-oriented console.
package cli

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/manav03panchal/apptremind/internal/errors"
	"github.com/manav03panchal/apptremind/internal/logging"
	"github.com/manav03panchal/apptremind/internal/manager"
	"github.com/manav03panchal/apptremind/internal/model"
	"github.com/manav03panchal/apptremind/internal/output"
	"github.com/manav03panchal/apptremind/internal/reminder"
	"github.com/manav03panchal/apptremind/internal/validate"
)

// Menu choices.
const (
	ChoiceAdd = iota + 1
	ChoiceWrite
	ChoiceSetTemplate
	ChoiceQuit
)

// Console text.
const (
	PromptName      = "Who is the appointment for?"
	PromptTime      = "When is the appointment? (HH:MM PM/AM)"
	PromptTypeKnown = "Is the type of appointment known? (yes/no)"
	PromptCategory  = "What type of appointment is it? (consultation/followup/interview)"
	PromptTemplate  = "Enter the new reminder template:"
	PromptChoice    = "Enter your choice:"
	MsgTypedAdded   = "Typed appointment added successfully!"
	MsgBasicAdded   = "Basic appointment added successfully!"
	MsgTemplateSet  = "New template set successfully!"
	MsgInvalidTmpl  = "Invalid template."
	MsgExit         = "Exiting the program."
	MsgNotANumber   = "Invalid input. Please enter a number."
	MsgChoiceRange  = "Invalid choice. Please enter a number between 1 and 4."
)

var menuLines = []string{
	"1: Add appointment",
	"2: Write reminders",
	"3: Set new reminder template",
	"4: Quit",
}

// Session is one run of the menu loop.
type Session struct {
	in       *bufio.Reader
	out      *output.CLIFormatter
	manager  *manager.Manager
	template *reminder.TextTemplate
}

// NewSession creates a session reading from in. The template must be the one the
// manager renders with so that edits are visible to the next reminder pass.
func NewSession(in io.Reader, out *output.CLIFormatter, m *manager.Manager) *Session {
	return &Session{
		in:       bufio.NewReader(in),
		out:      out,
		manager:  m,
		template: m.Template(),
	}
}

// Run shows the menu until the user quits or input ends. User mistakes are
// reported and the loop continues; only store failures and cancellation are
// returned as errors. Cancellation also interrupts a prompt that is waiting
// for input.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		line, ok, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if !ok {
			logging.DebugContext(ctx, "input closed")
			return nil
		}

		choice, err := parseChoice(line)
		if err != nil {
			s.report(ctx, err)
			continue
		}
		logging.DebugContext(ctx, "menu choice", logging.KeyChoice, choice)

		switch choice {
		case ChoiceAdd:
			err = s.addAppointment(ctx)
		case ChoiceWrite:
			err = s.manager.WriteReminders(s.out)
		case ChoiceSetTemplate:
			err = s.setTemplate(ctx)
		case ChoiceQuit:
			s.out.Line(MsgExit)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) printMenu() {
	s.out.Line("")
	s.out.Title("Menu:")
	for _, l := range menuLines {
		s.out.Line(l)
	}
	s.out.Line(PromptChoice)
}

// parseChoice accepts an integer between 1 and 4, ignoring surrounding spaces.
func parseChoice(line string) (int, error) {
	trimmed := strings.TrimSpace(line)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.NewInputError(errors.ErrNotANumber, "choice", line, MsgNotANumber)
	}
	if n < ChoiceAdd || n > ChoiceQuit {
		return 0, errors.NewInputError(errors.ErrInvalidChoice, "choice", line, MsgChoiceRange)
	}
	return n, nil
}

// addAppointment runs the add prompts. A rejected answer abandons the add.
func (s *Session) addAppointment(ctx context.Context) error {
	s.out.Line(PromptName)
	name, _, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	if err := validate.Name(name); err != nil {
		s.report(ctx, err)
		return nil
	}

	s.out.Line(PromptTime)
	t, _, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	if err := validate.Time(t); err != nil {
		s.report(ctx, err)
		return nil
	}

	s.out.Line(PromptTypeKnown)
	answer, _, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	known, err := validate.YesNo(answer)
	if err != nil {
		s.report(ctx, err)
		return nil
	}

	if !known {
		if err := s.manager.Add(model.NewAppointment(t, name)); err != nil {
			return err
		}
		s.out.Success(MsgBasicAdded)
		return nil
	}

	s.out.Line(PromptCategory)
	input, _, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	a, err := model.NewDetailedAppointmentFromInput(t, name, input)
	if err != nil {
		s.report(ctx, err)
		return nil
	}
	if err := s.manager.Add(a); err != nil {
		return err
	}
	s.out.Success(MsgTypedAdded)
	return nil
}

// setTemplate replaces the template with the next line, which may be empty.
func (s *Session) setTemplate(ctx context.Context) error {
	s.out.Line(PromptTemplate)
	line, ok, err := s.readLine(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s.report(ctx, errors.NewInputError(errors.ErrInvalidTemplate, "template", "", MsgInvalidTmpl))
		return nil
	}
	s.template.SetMessage(line)
	s.out.Success(MsgTemplateSet)
	return nil
}

func (s *Session) report(ctx context.Context, err error) {
	if ue, ok := errors.AsUserError(err); ok {
		logging.DebugContext(ctx, "input rejected", "field", ue.Field, logging.KeyError, err,
			"suggestion", errors.GetSuggestion(err))
	}
	s.out.Error(err.Error())
}

type lineResult struct {
	line string
	ok   bool
}

// readLine returns the next line without its line ending. ok is false once the
// input is exhausted. If ctx is done first, its error is returned and the
// pending line, if one arrives, is discarded.
func (s *Session) readLine(ctx context.Context) (string, bool, error) {
	result := make(chan lineResult, 1)
	go func() {
		line, err := s.in.ReadString('\n')
		if err != nil && line == "" {
			result <- lineResult{}
			return
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		result <- lineResult{line: line, ok: true}
	}()

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r := <-result:
		// A line racing with cancellation loses.
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		return r.line, r.ok, nil
	}
}
