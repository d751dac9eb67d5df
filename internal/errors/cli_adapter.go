package errors

import (
	"fmt"
)

// CLIErrorAdapter handles error presentation and exit code determination for
// the nuxtdoc CLI.
type CLIErrorAdapter struct {
	verbose bool
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool) *CLIErrorAdapter {
	return &CLIErrorAdapter{verbose: verbose}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	re, ok := err.(*RenderError)
	if !ok {
		return 1
	}

	switch re.Category {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryRender, CategoryFileSystem:
		return 11 // Render error
	case CategoryInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	re, ok := err.(*RenderError)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	if a.verbose {
		return re.Error()
	}

	msg := re.Message
	if page, ok := re.Context["page"]; ok {
		msg = fmt.Sprintf("%s (page %v)", msg, page)
	}
	if path, ok := re.Context["path"]; ok {
		msg = fmt.Sprintf("%s (%v)", msg, path)
	}
	return fmt.Sprintf("Error: %s", msg)
}
