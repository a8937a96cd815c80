package main

import (
	"fmt"

	"github.com/fwojciec/leadgen"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	result, err := deps.Runner.Run(deps.Ctx, c.Description, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leadgen.ErrorMessage(err))
		return err
	}

	if result.NoLeads() {
		fmt.Fprintln(deps.Stdout, "No relevant Quora links found.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, "Quora links used:")
	for _, url := range result.URLs {
		fmt.Fprintf(deps.Stdout, "  %s\n", url)
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d leads from %d pages", result.Rows, result.Sources)
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, " (%d skipped)", result.Skipped)
	}
	fmt.Fprintln(deps.Stdout)

	if result.CSVErr != nil {
		fmt.Fprintf(deps.Stderr, "Failed to save CSV: %s\n", result.CSVErr)
	} else {
		fmt.Fprintf(deps.Stdout, "Data saved to %s\n", result.CSVPath)
	}

	switch {
	case result.SheetURL != "":
		fmt.Fprintf(deps.Stdout, "Google Sheet: %s\n", result.SheetURL)
	case result.SheetErr != nil:
		fmt.Fprintf(deps.Stderr, "Failed to create Google Sheet: %s\n", leadgen.ErrorMessage(result.SheetErr))
	}

	return nil
}
