package service

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
	"github.com/Wish2code/AI-Powered-Book-Summarizer/utils"
)

// Extraction below this many runes is treated as failed and triggers the
// pdftotext fallback; scanned books often yield a few stray characters.
const minExtractedTextLength = 100

// PDFService validates uploaded PDFs and extracts their text. Primary
// extraction runs in-process; when it yields nothing usable the service
// shells out to pdftotext, which copes better with unusual encodings.
type PDFService struct {
	maxUploadBytes int64
}

func NewPDFService(maxUploadMB int64) *PDFService {
	return &PDFService{
		maxUploadBytes: maxUploadMB << 20,
	}
}

// ValidatePDF checks the size cap and that the file parses to at least
// one page.
func (s *PDFService) ValidatePDF(data []byte) (*types.PDFInfo, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", types.ErrExtractionFailed)
	}
	sizeMB := float64(len(data)) / (1 << 20)
	if int64(len(data)) > s.maxUploadBytes {
		return nil, fmt.Errorf("%w: file too large: %.1fMB exceeds the %dMB limit",
			types.ErrExtractionFailed, sizeMB, s.maxUploadBytes>>20)
	}

	reader, err := s.open(data)
	if err != nil {
		return nil, err
	}
	pages := reader.NumPage()
	if pages == 0 {
		return nil, fmt.Errorf("%w: PDF appears to be empty or corrupted", types.ErrExtractionFailed)
	}
	return &types.PDFInfo{Pages: pages, SizeMB: sizeMB}, nil
}

// Metadata reads the PDF info dictionary. Missing or unreadable fields
// fall back to defaults; metadata problems never fail an upload.
func (s *PDFService) Metadata(data []byte) types.PDFMetadata {
	md := types.PDFMetadata{Title: "Unknown", Author: "Unknown"}

	// Malformed info dictionaries make the pdf package panic.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: failed to read PDF metadata: %v", r)
		}
	}()

	reader, err := s.open(data)
	if err != nil {
		return md
	}
	md.Pages = reader.NumPage()

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return md
	}
	if v := info.Key("Title").Text(); v != "" {
		md.Title = v
	}
	if v := info.Key("Author").Text(); v != "" {
		md.Author = v
	}
	md.Subject = info.Key("Subject").Text()
	md.Creator = info.Key("Creator").Text()
	md.Producer = info.Key("Producer").Text()
	return md
}

// ExtractText converts PDF bytes into a cleaned plain-text Document.
func (s *PDFService) ExtractText(data []byte) (*types.Document, error) {
	info, err := s.ValidatePDF(data)
	if err != nil {
		return nil, err
	}

	text, err := s.extractInProcess(data)
	if err != nil || utf8.RuneCountInString(strings.TrimSpace(text)) < minExtractedTextLength {
		if err != nil {
			log.Printf("Warning: in-process extraction failed: %v", err)
		}
		if fallback, ferr := s.extractWithPdftotext(data); ferr == nil {
			text = fallback
		} else if err != nil {
			return nil, err
		}
	}

	cleaned := utils.CleanText(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: no extractable text", types.ErrExtractionFailed)
	}
	return &types.Document{
		Text:       cleaned,
		Pages:      info.Pages,
		Characters: utf8.RuneCountInString(cleaned),
	}, nil
}

// open parses the PDF. The pdf package panics on some malformed inputs,
// so the panic is converted into ErrExtractionFailed here.
func (s *PDFService) open(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("%w: malformed PDF: %v", types.ErrExtractionFailed, r)
		}
	}()
	reader, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrExtractionFailed, err)
	}
	return reader, nil
}

func (s *PDFService) extractInProcess(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", types.ErrExtractionFailed, r)
		}
	}()

	reader, err := s.open(data)
	if err != nil {
		return "", err
	}

	var parts []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("Warning: failed to extract text from page %d: %v", pageNum, err)
			continue
		}
		if trimmed := strings.TrimSpace(pageText); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// extractWithPdftotext writes the bytes to a temp file and runs the
// poppler pdftotext utility over it.
func (s *PDFService) extractWithPdftotext(data []byte) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("%w: pdftotext not available: %v", types.ErrExtractionFailed, err)
	}
	log.Println("Try extracting with pdftotext")

	tmp, err := os.CreateTemp("", "upload-*.pdf")
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrExtractionFailed, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %v", types.ErrExtractionFailed, err)
	}
	tmp.Close()

	cmd := exec.Command("pdftotext", "-enc", "UTF-8", "-nopgbrk", tmp.Name(), "-")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: pdftotext: %v", types.ErrExtractionFailed, err)
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", fmt.Errorf("%w: pdftotext produced no text", types.ErrExtractionFailed)
	}
	return text, nil
}
