package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/entrhq/assistant/pkg/errs"
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

func joinPages(pages []string) string {
	if len(pages) == 1 {
		return pages[0]
	}
	var b strings.Builder
	for i, p := range pages {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Page %d of %d\n%s", i+1, len(pages), p)
	}
	return b.String()
}

// Describe renders err as a single line for the user.
func Describe(err error) string {
	var msg string
	var verr *errs.ValidationError

	switch {
	case err == nil:
		return ""
	// A corrupt load also wraps a ValidationError, so storage problems go first.
	case errors.Is(err, errs.ErrPersistence):
		msg = "Could not save your data: " + err.Error()
	case errors.As(err, &verr):
		msg = "Passed values are incorrect: " + err.Error()
	case errors.Is(err, errs.ErrNotFound):
		msg = "Nothing to work with: " + err.Error() + ". Check the name and add it first if needed"
	case errors.Is(err, errs.ErrAlreadyExists), errors.Is(err, errs.ErrDuplicateField):
		msg = "Already there: " + err.Error()
	case errors.Is(err, errs.ErrNoBirthday):
		msg = err.Error() + ". Set it with 'update birthday'"
	default:
		msg = "Something went wrong: " + err.Error()
	}
	return strings.Join(strings.Fields(msg), " ")
}
