package util

import (
	"bytes"
	"io"
	"log"
	"strings"

	"github.com/dslipak/pdf"
	"github.com/gen2brain/go-fitz"
)

// ExtractPDFText pulls plain text out of PDF bytes, best effort. MuPDF is
// the primary path; a pure-Go reader is the fallback for files MuPDF
// rejects. Returns "" when both fail — the caller scores an empty resume
// rather than failing the request.
func ExtractPDFText(data []byte) string {
	if text, err := extractWithFitz(data); err == nil && strings.TrimSpace(text) != "" {
		return text
	} else if err != nil {
		log.Printf("pdf extraction (mupdf) failed: %v", err)
	}

	text, err := extractWithFallback(data)
	if err != nil {
		log.Printf("pdf extraction (fallback) failed: %v", err)
		return ""
	}
	return text
}

func extractWithFitz(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractWithFallback(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
