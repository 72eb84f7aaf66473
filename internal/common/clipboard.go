package common

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ReadClipboard returns the trimmed clipboard contents.
func ReadClipboard() (string, error) {
	contents, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}

	contents = strings.TrimSpace(contents)
	if len(contents) == 0 {
		return "", fmt.Errorf("clipboard is empty")
	}

	return contents, nil
}
