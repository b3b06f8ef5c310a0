package service

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wish2code/AI-Powered-Book-Summarizer/types"
)

// minimalPDF assembles a syntactically valid single-page PDF with a
// correct xref table. The page carries no content stream.
func minimalPDF() []byte {
	var buf bytes.Buffer
	offsets := make([]int, 4)
	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")

	xref := buf.Len()
	buf.WriteString("xref\n0 4\n")
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	buf.WriteString("trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n")
	fmt.Fprintf(&buf, "%d\n%%%%EOF\n", xref)
	return buf.Bytes()
}

func TestValidatePDFEmptyFile(t *testing.T) {
	s := NewPDFService(50)
	_, err := s.ValidatePDF(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExtractionFailed))
}

func TestValidatePDFGarbage(t *testing.T) {
	s := NewPDFService(50)
	for _, data := range [][]byte{
		[]byte("this is not a pdf at all"),
		[]byte("%PDF-1.4 truncated header with no body"),
		bytes.Repeat([]byte{0x00, 0xff}, 256),
	} {
		_, err := s.ValidatePDF(data)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrExtractionFailed))
	}
}

func TestValidatePDFSizeCap(t *testing.T) {
	s := NewPDFService(1)
	data := make([]byte, 1<<20+1)
	_, err := s.ValidatePDF(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExtractionFailed))
	assert.Contains(t, err.Error(), "too large")
}

func TestValidatePDFWellFormed(t *testing.T) {
	s := NewPDFService(50)
	info, err := s.ValidatePDF(minimalPDF())
	require.NoError(t, err)
	assert.Equal(t, 1, info.Pages)
	assert.Greater(t, info.SizeMB, 0.0)
}

func TestMetadataNeverFails(t *testing.T) {
	s := NewPDFService(50)

	md := s.Metadata([]byte("garbage, not a pdf"))
	assert.Equal(t, "Unknown", md.Title)
	assert.Equal(t, "Unknown", md.Author)

	md = s.Metadata(minimalPDF())
	assert.Equal(t, 1, md.Pages)
	assert.Equal(t, "Unknown", md.Title, "missing info dictionary keeps defaults")
}

func TestExtractTextGarbage(t *testing.T) {
	s := NewPDFService(50)
	_, err := s.ExtractText([]byte("definitely not a pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrExtractionFailed))
}

func TestExtractTextNoContent(t *testing.T) {
	s := NewPDFService(50)
	_, err := s.ExtractText(minimalPDF())
	require.Error(t, err, "a page without text yields no document")
	assert.True(t, errors.Is(err, types.ErrExtractionFailed))
}
