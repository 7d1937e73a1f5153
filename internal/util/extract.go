package util

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/nguyenthenguyen/docx"
)

var (
	lineBreaks          = regexp.MustCompile("\r\n?|\u2028|\u2029")
	spaceBeforeNewline  = regexp.MustCompile(`\s+\n`)
	excessiveBlankLines = regexp.MustCompile(`\n{3,}`)
)

// TextExtractor turns an uploaded .txt, .pdf or .docx file into normalized plain text.
type TextExtractor struct {
	PDFOCRFallback bool
}

func NewTextExtractor(pdfOCRFallback bool) *TextExtractor {
	return &TextExtractor{PDFOCRFallback: pdfOCRFallback}
}

func (e *TextExtractor) Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt":
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return NormalizeWhitespace(strings.ToValidUTF8(string(raw), "")), nil
	case ".pdf":
		raw, err := extractPDF(path)
		if err != nil {
			return "", err
		}
		text := NormalizeWhitespace(raw)
		if text == "" && e.PDFOCRFallback {
			log.Printf("No text layer in %s, falling back to OCR", filepath.Base(path))
			ocr, ocrErr := ExtractPDFOCR(path)
			if ocrErr != nil {
				return "", fmt.Errorf("failed to extract meaningful text. The document may be scanned or image-based: %w", ocrErr)
			}
			text = NormalizeWhitespace(ocr)
		}
		if text == "" {
			return "", fmt.Errorf("failed to extract meaningful text. The document may be scanned or image-based")
		}
		return text, nil
	case ".docx":
		raw, err := extractDOCX(path)
		if err != nil {
			return "", err
		}
		text := NormalizeWhitespace(raw)
		if text == "" {
			return "", fmt.Errorf("failed to extract meaningful text from DOCX")
		}
		return text, nil
	case ".doc":
		return "", fmt.Errorf(".doc files are not supported. Please convert to .docx or export as PDF")
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

// NormalizeWhitespace unifies line endings, expands tabs, drops whitespace that
// precedes a newline, caps blank runs at one empty line and trims the result.
func NormalizeWhitespace(text string) string {
	text = lineBreaks.ReplaceAllString(text, "\n")
	text = strings.ReplaceAll(text, "\t", "  ")
	text = spaceBeforeNewline.ReplaceAllString(text, "\n")
	text = excessiveBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func extractPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from PDF: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from PDF page %d: %w", n+1, err)
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from DOCX: %w", err)
	}
	defer r.Close()

	text, err := docxParagraphs(r.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to extract text from DOCX: %w", err)
	}
	return text, nil
}

// docxParagraphs joins the w:t runs of word/document.xml, one line per paragraph.
func docxParagraphs(documentXML string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString("\t")
			case "br":
				b.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
