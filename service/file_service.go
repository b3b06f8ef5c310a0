package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/utils"
)

// FileService stores uploaded PDFs on disk under timestamped names so a
// later request (or the websocket surface) can summarize them again
// without re-uploading.
type FileService struct {
	uploadDir string
}

func NewFileService(uploadDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileService{uploadDir: uploadDir}, nil
}

// SaveUpload validates the extension and writes the bytes under a
// sanitized, timestamped name. Returns the stored file name.
func (s *FileService) SaveUpload(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext != ".pdf" {
		return "", fmt.Errorf("%w: unsupported file type: %s", types.ErrExtractionFailed, ext)
	}

	filename := utils.TimestampedName(originalName, ext)
	if err := os.WriteFile(filepath.Join(s.uploadDir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return filename, nil
}

// ReadStored loads a previously stored upload by its requested name,
// resolving the timestamp suffix if the client omitted it.
func (s *FileService) ReadStored(requestedName string) ([]byte, error) {
	name, err := s.Resolve(requestedName)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.uploadDir, name))
}

// Path returns the on-disk path for a resolved stored name.
func (s *FileService) Path(name string) string {
	return filepath.Join(s.uploadDir, name)
}

// Resolve maps a requested file name to the stored one, accepting either
// the exact stored name or the original name without its timestamp.
func (s *FileService) Resolve(requestedName string) (string, error) {
	files, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return "", err
	}

	baseName := strings.TrimSuffix(requestedName, ".pdf")
	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ".pdf") {
			continue
		}

		nameWithoutExt := strings.TrimSuffix(name, ".pdf")
		if nameWithoutExt == baseName {
			return name, nil
		}

		lastUnderscoreIdx := strings.LastIndex(nameWithoutExt, "_")
		if lastUnderscoreIdx == -1 {
			continue
		}

		// Unix timestamps are 10 (seconds) or 13 (milliseconds) digits.
		timestampPart := nameWithoutExt[lastUnderscoreIdx+1:]
		fileBaseName := nameWithoutExt[:lastUnderscoreIdx]
		if len(timestampPart) == 10 || len(timestampPart) == 13 {
			if _, err := strconv.ParseInt(timestampPart, 10, 64); err == nil {
				if fileBaseName == baseName {
					return name, nil
				}
			}
		}
	}

	return "", fmt.Errorf("file not found: %s", requestedName)
}
