// Package output renders resolved profiles and coverage plans for the
// terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/tarpgo/packages/core/config"
	"github.com/abdul-hamid-achik/tarpgo/packages/core/runner"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatHeader(version string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s\n", bold("tarpgo "+version))
}

// FormatProfile prints the settings a run will use.
func (f *ConsoleFormatter) FormatProfile(p *config.Profile) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	name := p.Name
	if name == "" {
		name = "(args)"
	}
	fmt.Fprintf(f.writer, "\n%s\n", bold("Profile: "+name))
	if p.ConfigPath != "" {
		fmt.Fprintf(f.writer, "  Config:   %s\n", p.ConfigPath)
	}
	fmt.Fprintf(f.writer, "  Manifest: %s\n", p.Manifest)
	fmt.Fprintf(f.writer, "  Coverage: %s\n", cyan(coverageMode(p)))
	fmt.Fprintf(f.writer, "  Runs:     %s\n", runTypeList(p.RunTypes))
	fmt.Fprintf(f.writer, "  Timeout:  %s\n", p.TestTimeout.Std())
	if len(p.ExcludedFilesRaw) > 0 {
		fmt.Fprintf(f.writer, "  Excludes: %s\n", strings.Join(p.ExcludedFilesRaw, ", "))
	}
	if f.verbose && len(p.Generate) > 0 {
		outs := make([]string, len(p.Generate))
		for i, o := range p.Generate {
			outs[i] = string(o)
		}
		fmt.Fprintf(f.writer, "  Reports:  %s\n", strings.Join(outs, ", "))
	}
}

// FormatPlan prints which sources a run will and will not measure.
func (f *ConsoleFormatter) FormatPlan(plan *runner.Plan) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintf(f.writer, "  Sources:  %s, %s\n",
		green(fmt.Sprintf("%d measured", len(plan.Included))),
		yellow(fmt.Sprintf("%d excluded", len(plan.Excluded))))

	if !f.verbose {
		return
	}
	for _, file := range plan.Included {
		fmt.Fprintf(f.writer, "    %s %s\n", green("+"), file)
	}
	for _, file := range plan.Excluded {
		fmt.Fprintf(f.writer, "    %s %s\n", yellow("-"), file)
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func coverageMode(p *config.Profile) string {
	var modes []string
	if p.LineCoverage {
		modes = append(modes, "line")
	}
	if p.BranchCoverage {
		modes = append(modes, "branch")
	}
	if p.Count {
		modes = append(modes, "count")
	}
	if len(modes) == 0 {
		return "none"
	}
	return strings.Join(modes, "+")
}

func runTypeList(types []config.RunType) string {
	names := make([]string, len(types))
	for i, rt := range types {
		names[i] = string(rt)
	}
	return strings.Join(names, ", ")
}
