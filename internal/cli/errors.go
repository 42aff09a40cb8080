package cli

import "fmt"

type missingFieldsError struct {
	what string
}

func (e missingFieldsError) Error() string {
	return "missing " + e.what
}

type timeInPastError struct {
	input string
}

func (e timeInPastError) Error() string {
	return fmt.Sprintf("%q is not in the future", e.input)
}

type invalidWindowError struct {
	arg string
}

func (e invalidWindowError) Error() string {
	return fmt.Sprintf("invalid visibility window %q", e.arg)
}
