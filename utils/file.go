package utils

import (
	"fmt"
	"strings"
	"time"
)

// GetFileNameWithoutExt extracts the base filename without extension from
// a file path.
func GetFileNameWithoutExt(filepath string) string {
	base := filepath[strings.LastIndex(filepath, "/")+1:]
	if idx := strings.LastIndex(base, "."); idx != -1 {
		base = base[:idx]
	}
	return base
}

// SanitizeFileName replaces characters that are unsafe in stored file
// names with underscores.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// TimestampedName builds a stored file name in the form
// originalname_timestamp.extension so repeated uploads never collide.
func TimestampedName(originalName, ext string) string {
	base := strings.TrimSuffix(originalName, ext)
	return SanitizeFileName(fmt.Sprintf("%s_%d%s", base, time.Now().Unix(), ext))
}
