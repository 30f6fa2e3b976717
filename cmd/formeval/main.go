package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Everything validated / replayed cleanly
	ExitInvalidInput = 1 // One or more recordings failed validation
	ExitError        = 2 // Configuration or runtime error
)

// InvalidInputError indicates that processing itself succeeded but one or
// more input recordings failed validation.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var invalidErr *InvalidInputError
		if errors.As(err, &invalidErr) {
			os.Exit(ExitInvalidInput)
		}

		os.Exit(ExitError)
	}
}
