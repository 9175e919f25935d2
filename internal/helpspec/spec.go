// Package helpspec holds the declarative help contracts of the improver CLI:
// one CommandSpec per command, collected in a Registry and rendered to the
// canonical help text.
package helpspec

import (
	"errors"
	"fmt"
)

// Option describes one optional argument of a command.
type Option struct {
	Short       string `yaml:"short,omitempty"`
	Long        string `yaml:"long,omitempty"`
	Description string `yaml:"description"`
}

// Flag returns the flag token as it appears in help output, e.g.
// "-h, --help" or "--debug".
func (o Option) Flag() string {
	switch {
	case o.Short != "" && o.Long != "":
		return "-" + o.Short + ", --" + o.Long
	case o.Long != "":
		return "--" + o.Long
	default:
		return "-" + o.Short
	}
}

func (o Option) validate() error {
	if o.Short == "" && o.Long == "" {
		return errors.New("option declares neither a short nor a long flag")
	}
	if len(o.Short) > 1 {
		return fmt.Errorf("short flag must be a single character: %q", o.Short)
	}
	if o.Description == "" {
		return fmt.Errorf("option %s missing description", o.Flag())
	}
	return nil
}

// HelpOption is appended to every command before rendering, so rendered
// output always documents -h/--help even when a spec does not declare it.
var HelpOption = Option{Short: "h", Long: "help", Description: "Show this message and exit"}

// CommandSpec is the help contract of a single command: its usage line,
// description, and optional arguments. Option order is the render order.
type CommandSpec struct {
	Name        string   `yaml:"name"`
	Usage       string   `yaml:"usage"`
	Description string   `yaml:"description"`
	Options     []Option `yaml:"options,omitempty"`
}

// Validate reports the first structural problem in the spec.
func (s CommandSpec) Validate() error {
	if s.Name == "" {
		return errors.New("command spec missing name")
	}
	if s.Usage == "" {
		return fmt.Errorf("command %s missing usage", s.Name)
	}
	if s.Description == "" {
		return fmt.Errorf("command %s missing description", s.Name)
	}
	for i, o := range s.Options {
		if err := o.validate(); err != nil {
			return fmt.Errorf("command %s option %d: %w", s.Name, i, err)
		}
	}
	return nil
}

// WithHelp returns a copy of the spec with HelpOption appended, unless a
// help flag is already declared. The receiver is never mutated.
func (s CommandSpec) WithHelp() CommandSpec {
	for _, o := range s.Options {
		if o.Long == "help" || o.Short == "h" {
			return s
		}
	}
	out := s
	out.Options = make([]Option, 0, len(s.Options)+1)
	out.Options = append(out.Options, s.Options...)
	out.Options = append(out.Options, HelpOption)
	return out
}
