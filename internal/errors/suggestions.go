package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrNotANumber:      "Type the number of a menu option, for example 1.",
	ErrInvalidChoice:   "Menu options are numbered 1 to 4.",
	ErrEmptyName:       "Enter the name of the person the appointment is for.",
	ErrEmptyTime:       "Enter a time such as 10:30 AM.",
	ErrInvalidAnswer:   "Answer yes or no.",
	ErrInvalidCategory: "Use consultation, followup or interview.",
	ErrInvalidTemplate: "Type the new template on a single line.",
	ErrStoreClosed:     "Restart apptremind.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
