// Package util holds small formatting helpers shared by usecases.
package util

import "fmt"

// FormatBytes renders a size with binary units, e.g. "10.0 MiB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const prefixes = "KMGTPE"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(prefixes)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), prefixes[exp])
}
