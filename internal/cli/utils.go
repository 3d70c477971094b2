package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// promptWithRetry prompts the user for input and retries on invalid input.
// It gives up once the reader is exhausted.
func promptWithRetry(reader *bufio.Reader, out io.Writer, prompt string, validator func(string) (string, error)) (string, error) {
	for {
		fmt.Fprint(out, prompt)
		input, readErr := reader.ReadString('\n')
		input = strings.TrimSpace(input)

		result, err := validator(input)
		if err == nil {
			return result, nil
		}

		fmt.Fprintf(out, "%s\n\n", FormatError("❌ "+err.Error()))

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return "", fmt.Errorf("no valid input: %w", err)
			}
			return "", readErr
		}
	}
}

// promptYesNo prompts for yes/no input with retry
func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string) (bool, error) {
	result, err := promptWithRetry(reader, out, prompt, func(input string) (string, error) {
		lower := strings.ToLower(input)
		if lower == "y" || lower == "yes" || lower == "n" || lower == "no" || lower == "" {
			return lower, nil
		}
		return "", fmt.Errorf("invalid input: %s (enter y/yes/n/no or press Enter for no)", input)
	})
	if err != nil {
		return false, err
	}

	return result == "y" || result == "yes", nil
}
