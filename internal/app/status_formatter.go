// internal/app/status_formatter.go
package app

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

// StatusFormatter turns a homework record into the chat message.
type StatusFormatter struct {
	verdicts homework.VerdictTable
}

func NewStatusFormatter(verdicts homework.VerdictTable) *StatusFormatter {
	return &StatusFormatter{verdicts: verdicts}
}

// FormatStatusMessage fails with *homework.FormatError when the name is missing
// or the status has no verdict; the two cases are not distinguished.
func (f *StatusFormatter) FormatStatusMessage(record homework.Record) (string, error) {
	name := record.Name()
	verdict, ok := f.verdicts.Verdict(record.Status())
	if name == "" || !ok {
		return "", &homework.FormatError{Name: name, Status: record.Status()}
	}
	return fmt.Sprintf("Changed review status of work \"%s\". %s", name, verdict), nil
}
