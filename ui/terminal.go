package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit      = "  "
	sectionWidth    = 50
	promptPrefix    = "> "
	interpretPrefix = "→ "
)

// TerminalUI writes to a terminal (or any writer) and reads answers from
// an input stream. Colors and the spinner are only used on a real TTY.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
	tty         bool
}

// NewTerminalUI returns the UI on stdout and stdin.
func NewTerminalUI() *TerminalUI {
	return NewTerminalUIWith(os.Stdout, os.Stdin)
}

// NewTerminalUIWith returns a UI on the given streams. Colors are enabled
// when out is a terminal.
func NewTerminalUIWith(out io.Writer, in io.Reader) *TerminalUI {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &TerminalUI{
		out: out,
		in:  bufio.NewReader(in),
		au:  aurora.NewAurora(tty),
		tty: tty,
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	switch t.Severity {
	case SeveritySuccess:
		return u.au.Green(t.Text).String()
	case SeverityWarn:
		return u.au.Yellow(t.Text).String()
	case SeverityError:
		return u.au.Red(t.Text).String()
	case SeverityCritical:
		return u.au.Bold(t.Text).String()
	default:
		return t.Text
	}
}

func (u *TerminalUI) styled(sev Severity, format string, args []any) {
	u.writeLine(u.Style(StyledText{Text: fmt.Sprintf(format, args...), Severity: sev}))
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.styled(SeverityInfo, format, args)
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.styled(SeveritySuccess, format, args)
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.styled(SeverityWarn, format, args)
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.styled(SeverityError, format, args)
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.styled(SeverityCritical, format, args)
}

// Section prints "===== title =====" between blank lines.
func (u *TerminalUI) Section(title string) {
	titled := " " + title + " "
	bars := max(sectionWidth-runewidth.StringWidth(titled), 6)
	line := strings.Repeat("=", bars/2) + titled + strings.Repeat("=", bars-bars/2)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), line)
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r[0]))
	}
	for _, r := range rows {
		u.writeLine(runewidth.FillRight(r[0], width) + "  " + r[1])
	}
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	if len(headers) == 0 && len(rows) == 0 {
		return
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(rows...)
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}
	fmt.Fprintln(u.Writer(), t.Render())
}

// Spinner animates msg on a terminal; elsewhere it prints msg once.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.tty {
		u.writeLine(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Prefix = u.prefix()
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
	}
}

func (u *TerminalUI) Interpret(value string) {
	u.writeLine(indentUnit + interpretPrefix + u.au.Cyan(value).String())
}

func (u *TerminalUI) Ask(validate func(string) error) string {
	for {
		fmt.Fprintf(u.out, "%s%s", u.prefix(), promptPrefix)
		text, err := u.in.ReadString('\n')
		input := strings.TrimRight(text, "\r\n")
		if validate == nil {
			return input
		}
		verr := validate(input)
		if verr == nil {
			return input
		}
		if err != nil {
			// Input is exhausted; returning avoids spinning forever.
			return input
		}
		u.Error("%s", verr)
	}
}

func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	options := "[y/N]"
	if defaultYes {
		options = "[Y/n]"
	}
	u.Info("%s %s", prompt, options)
	answer := strings.ToLower(strings.TrimSpace(u.Ask(func(s string) error {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "y", "yes", "n", "no":
			return nil
		}
		return fmt.Errorf("please enter y or n")
	})))
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}

func (u *TerminalUI) Choose(prompt string, options []string) int {
	for i, opt := range options {
		u.Info("%d. %s", i+1, opt)
	}
	u.Info("%s [1-%d]", prompt, len(options))
	input := u.Ask(func(s string) error {
		idx, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || idx < 1 || idx > len(options) {
			return fmt.Errorf("please enter a number between 1 and %d", len(options))
		}
		return nil
	})
	idx, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || idx < 1 || idx > len(options) {
		return 0
	}
	return idx - 1
}

func (u *TerminalUI) Indent() UI {
	child := *u
	child.indentLevel++
	return &child
}

func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
