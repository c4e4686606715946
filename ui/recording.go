package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry is one recorded UI call.
type Entry struct {
	Method string
	Text   string
	Level  int
}

// RecordingUI records every call and answers prompts from a scripted list
// of inputs. It is what command and orchestrator tests run against.
type RecordingUI struct {
	entries *[]Entry
	inputs  *[]string
	level   int
	buf     *bytes.Buffer
}

// NewRecordingUI returns a RecordingUI that answers prompts with inputs
// in order. Once inputs run out prompts receive "".
func NewRecordingUI(inputs ...string) *RecordingUI {
	in := append([]string(nil), inputs...)
	return &RecordingUI{
		entries: &[]Entry{},
		inputs:  &in,
		buf:     &bytes.Buffer{},
	}
}

func (r *RecordingUI) record(method, text string) {
	*r.entries = append(*r.entries, Entry{Method: method, Text: text, Level: r.level})
}

func (r *RecordingUI) nextInput() string {
	if len(*r.inputs) == 0 {
		return ""
	}
	v := (*r.inputs)[0]
	*r.inputs = (*r.inputs)[1:]
	return v
}

func (r *RecordingUI) Style(t StyledText) string { return t.Text }

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.record("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) { r.record("Section", title) }

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+": "+row[1])
	}
}

// Table records the header row and every data row with cells joined by
// " | ".
func (r *RecordingUI) Table(headers []string, rows [][]string) {
	if len(headers) > 0 {
		r.record("Table", strings.Join(headers, " | "))
	}
	for _, row := range rows {
		r.record("Table", strings.Join(row, " | "))
	}
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {}
}

func (r *RecordingUI) Interpret(value string) { r.record("Interpret", value) }

func (r *RecordingUI) Ask(validate func(string) error) string {
	v := r.nextInput()
	r.record("Ask", v)
	return v
}

func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	r.record("Confirm", prompt)
	v := strings.ToLower(strings.TrimSpace(r.nextInput()))
	if v == "" {
		return defaultYes
	}
	return v == "y" || v == "yes"
}

func (r *RecordingUI) Choose(prompt string, options []string) int {
	r.record("Choose", prompt)
	var idx int
	if _, err := fmt.Sscanf(r.nextInput(), "%d", &idx); err != nil || idx < 1 || idx > len(options) {
		return 0
	}
	return idx - 1
}

func (r *RecordingUI) Indent() UI {
	child := *r
	child.level++
	return &child
}

func (r *RecordingUI) Writer() io.Writer { return r.buf }

// Entries returns every call recorded so far, indented children included.
func (r *RecordingUI) Entries() []Entry {
	return append([]Entry(nil), *r.entries...)
}

// Messages returns the text of every entry recorded by method.
func (r *RecordingUI) Messages(method string) []string {
	var out []string
	for _, e := range *r.entries {
		if e.Method == method {
			out = append(out, e.Text)
		}
	}
	return out
}

func (r *RecordingUI) InfoMessages() []string    { return r.Messages("Info") }
func (r *RecordingUI) ErrorMessages() []string   { return r.Messages("Error") }
func (r *RecordingUI) SuccessMessages() []string { return r.Messages("Success") }

// HasMessage reports whether any entry contains substr.
func (r *RecordingUI) HasMessage(substr string) bool {
	for _, e := range *r.entries {
		if strings.Contains(e.Text, substr) {
			return true
		}
	}
	return false
}

// Output is what was written through Writer.
func (r *RecordingUI) Output() string { return r.buf.String() }
