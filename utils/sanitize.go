package utils

import (
	"path/filepath"
	"strings"
)

// SanitizeHeaderFilename removes characters that can break headers.
func SanitizeHeaderFilename(name string) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return "download"
	}
	clean = strings.ReplaceAll(clean, "\r", "")
	clean = strings.ReplaceAll(clean, "\n", "")
	clean = strings.ReplaceAll(clean, "\"", "")
	return clean
}

// SanitizeFileName strips path components and characters unsafe for
// filesystem names, keeping the extension intact.
func SanitizeFileName(name string) string {
	clean := filepath.Base(strings.TrimSpace(name))
	clean = strings.ReplaceAll(clean, "\\", "_")
	clean = strings.ReplaceAll(clean, "..", "_")
	replacer := strings.NewReplacer(" ", "_", "\r", "", "\n", "", "\"", "", "'", "", ":", "_", "*", "_", "?", "_", "<", "_", ">", "_", "|", "_")
	clean = replacer.Replace(clean)
	if clean == "" || clean == "." || clean == "/" {
		return "file"
	}
	return clean
}

// FileExtension returns the lowercase extension without the dot.
func FileExtension(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return ext
}
