// Package runtime provides application runtime context for apptremind.
package runtime

import (
	"io"
	"os"

	"github.com/manav03panchal/apptremind/internal/manager"
	"github.com/manav03panchal/apptremind/internal/output"
	"github.com/manav03panchal/apptremind/internal/reminder"
	"github.com/manav03panchal/apptremind/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter
	Input     io.Reader

	// Shared by the menu loop and the manager.
	Template *reminder.TextTemplate

	Manager *manager.Manager
}

// Options configures the runtime context.
type Options struct {
	Template  string
	ColorMode output.ColorMode
	Input     io.Reader // default: stdin
	Output    io.Writer // default: stdout
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Template:  reminder.DefaultMessage,
		ColorMode: output.ColorAuto,
		Input:     os.Stdin,
		Output:    os.Stdout,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	db, err := storage.Open()
	if err != nil {
		return nil, err
	}

	input := opts.Input
	if input == nil {
		input = os.Stdin
	}

	formatter := output.NewFormatter()
	formatter.ColorMode = opts.ColorMode
	if opts.Output != nil {
		formatter.Writer = opts.Output
	}

	tmpl := reminder.NewTextTemplate(opts.Template)

	return &Context{
		DB:        db,
		Formatter: formatter,
		Input:     input,
		Template:  tmpl,
		Manager:   manager.New(storage.NewAppointmentRepo(db), tmpl),
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}
