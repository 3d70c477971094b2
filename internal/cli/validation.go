package cli

import (
	"fmt"
	"strings"
	"time"
)

// validateMongoURI validates connection string input
func validateMongoURI(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("connection URI is required")
	}
	if !strings.HasPrefix(input, "mongodb://") && !strings.HasPrefix(input, "mongodb+srv://") {
		return "", fmt.Errorf("URI must start with mongodb:// or mongodb+srv://")
	}
	return input, nil
}

// validateTimeout validates a duration such as 5s or 1500ms
func validateTimeout(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %s (e.g. 5s, 1500ms)", input)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got: %s", input)
	}
	return d, nil
}

// formatDuration formats a duration for display
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm", d.Minutes())
}
