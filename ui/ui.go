// Package ui is blacksmith's console. Commands talk to a UI instead of
// printing directly so that the same flows run against a colored terminal
// in production and against RecordingUI in tests.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
)

// Severity classifies how a piece of inline text is emphasized. TerminalUI
// maps each value to a color; RecordingUI and JSON output see plain text.
type Severity uint8

const (
	SeverityInfo     Severity = iota // plain
	SeveritySuccess                  // green, step completed
	SeverityWarn                     // yellow, needs attention
	SeverityError                    // red, step failed
	SeverityCritical                 // bold, read before confirming
)

// StyledText pairs a plain string with a Severity.
//
// It marshals to JSON as the bare Text, so `list --output json` never
// carries ANSI codes. To embed a styled value in a status line pass it
// through [UI.Style]:
//
//	u.Info("source: %s", u.Style(ui.StyledText{Text: src, Severity: ui.SeverityWarn}))
type StyledText struct {
	Text     string
	Severity Severity
}

// MarshalJSON serializes StyledText as a plain JSON string.
func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// tagWidth aligns status tags: "build   :: completed".
const tagWidth = 8

// Tagged formats a status line the way every blacksmith step reports:
// a left-aligned tag, "::", then the message.
func Tagged(tag, format string, args ...any) string {
	return fmt.Sprintf("%-*s:: %s", tagWidth, tag, fmt.Sprintf(format, args...))
}

// UI is every bit of console interaction blacksmith does.
//
// Commands and the smith orchestrator never print directly:
//   - production code uses TerminalUI (stdout, stdin, colors on a TTY)
//   - tests use RecordingUI (records every call, answers prompts from a
//     scripted list)
//
// Indentation
//
// [UI.Indent] returns a child one level deeper that shares the parent's
// streams. Per-contract failures under a step and the build log under a
// failed build are printed through a child:
//
//	u.Error("%s", ui.Tagged("build", "failed"))
//	fmt.Fprintln(u.Indent().Writer(), res.Output)
type UI interface {
	// --- Output ---

	// Style returns t colored according to its Severity. Without colors
	// (piped output, RecordingUI) the plain text comes back unchanged.
	Style(t StyledText) string

	// Info writes a neutral status line, e.g. "found   :: 12 contracts".
	Info(format string, args ...any)

	// Success writes a completed step in green, e.g.
	// "created :: Vault.bs.sol".
	Success(format string, args ...any)

	// Warn writes a non-fatal problem in yellow.
	Warn(format string, args ...any)

	// Error writes a failure in red. It does not exit or return an error;
	// the caller decides whether the run goes on.
	Error(format string, args ...any)

	// Critical writes what the user must read before a destructive action,
	// such as the foreign files clean is about to delete. It renders bold.
	Critical(format string, args ...any)

	// Section writes a separator centred around title, e.g.
	// "===== Vault =====".
	Section(title string)

	// KeyValue renders an aligned two column block, labels left and values
	// starting on the same column. inspect uses it for a contract's
	// source, artifact and unit.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with an optional header row. Use it
	// for three or more columns, like the contract list or a selector
	// table. Nothing is printed when both headers and rows are empty.
	Table(headers []string, rows [][]string)

	// Spinner animates msg and returns the function that stops it:
	//
	//	stop := u.Spinner("building project...")
	//	res, err := builder.Build(ctx)
	//	stop()
	//
	// Off a terminal msg is printed once and stop is a no-op.
	Spinner(msg string) func()

	// Interpret writes what was understood from the user's input, indented
	// and prefixed with "→", e.g. "  → Vault (src/Vault.sol)" after a
	// fuzzy match.
	Interpret(value string)

	// --- Input ---

	// Ask shows a "> " prompt and reads a line, repeating until validate
	// returns nil. A nil validate accepts anything. The caller prints the
	// question first.
	Ask(validate func(string) error) string

	// Confirm prints prompt followed by [Y/n] or [y/N] and reads the
	// answer. An empty answer yields defaultYes.
	Confirm(prompt string, defaultYes bool) bool

	// Choose prints options as a numbered list and returns the 0-based
	// index of the one picked.
	Choose(prompt string, options []string) int

	// --- Nesting ---

	// Indent returns a child UI one level deeper, sharing the same writer
	// and reader as its parent.
	Indent() UI

	// Writer returns an io.Writer that prefixes every line with the
	// current indentation. Use it for text produced elsewhere, like the
	// forge build log or a generated unit.
	Writer() io.Writer
}
