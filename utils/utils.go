package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

const logFile = "sortbench.log"

// LogMessage handles both console output and file logging. Every
// message is appended to sortbench.log with a timestamp; it is echoed
// to the console only when show is true.
func LogMessage(message string, show bool) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logEntry := fmt.Sprintf("%s | %s", timestamp, message)

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open %s: %v\n", logFile, err)
	} else {
		defer f.Close()
		logger := log.New(f, "", 0)
		logger.Println(logEntry)
	}

	if show {
		fmt.Println(logEntry)
	}
}

// FormatSize converts bytes to a human-readable string (KB, MB, GB)
func FormatSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	if size >= GB {
		return fmt.Sprintf("%.2fGB", float64(size)/float64(GB))
	}
	if size >= MB {
		return fmt.Sprintf("%.2fMB", float64(size)/float64(MB))
	}
	if size >= KB {
		return fmt.Sprintf("%.2fKB", float64(size)/float64(KB))
	}

	return fmt.Sprintf("%dB", size)
}

// FormatCount converts a raw count to a K/M/G suffixed string
func FormatCount(count uint64) string {
	switch {
	case count >= 1_000_000_000:
		return fmt.Sprintf("%.2fG", float64(count)/1_000_000_000)
	case count >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.2fK", float64(count)/1_000)
	default:
		return fmt.Sprintf("%d", count)
	}
}
