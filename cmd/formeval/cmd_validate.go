package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Daiki01234567/ai-fitness-app-sub002/internal/recording"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <recording.jsonl...>",
		Short: "Validate recordings against the frame schema",
		Long: `Validate one or more JSONL frame recordings against the embedded JSON
Schema: every line must be a frame object with a millisecond timestamp and
exactly 33 landmarks.

Violations are printed per line; the command exits non-zero if any file is
invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: validateCommandE,
	}
}

func validateCommandE(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	invalid := 0
	for _, path := range args {
		violations, err := recording.ValidateFile(path)
		if err != nil {
			return err
		}
		if len(violations) == 0 {
			fmt.Fprintf(out, "%s: ok\n", path)
			continue
		}
		invalid++
		fmt.Fprintf(out, "%s: %d violation(s)\n", path, len(violations))
		for _, v := range violations {
			fmt.Fprintf(out, "  %s\n", v)
		}
	}

	if invalid > 0 {
		return &InvalidInputError{
			Message: fmt.Sprintf("%d of %d recording(s) failed validation", invalid, len(args)),
		}
	}
	return nil
}
