// Package fileparse extracts plain text from uploaded study material.
package fileparse

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedType is returned for file extensions the parser does not
// handle.
var ErrUnsupportedType = errors.New("unsupported file type")

// MaxContentLength caps extracted text so downstream prompts stay within
// model limits.
const MaxContentLength = 15000

const truncationMarker = "\n\n[Content truncated...]"

// Parse extracts text from a pdf, docx, txt or md file.
func Parse(filename string, data []byte) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return parsePDF(data)
	case "docx":
		return parseDOCX(data)
	case "txt", "md":
		return Truncate(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
}

// Truncate caps content at MaxContentLength, appending a visible marker when
// it cut anything off. The cut never splits a UTF-8 rune.
func Truncate(content string) string {
	if len(content) <= MaxContentLength {
		return content
	}
	cut := MaxContentLength
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + truncationMarker
}

func parsePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("fileparse: open pdf: %w", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("fileparse: read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("fileparse: read pdf text: %w", err)
	}
	return Truncate(buf.String()), nil
}

// parseDOCX pulls the text runs out of word/document.xml. A .docx file is a
// zip archive; the visible text lives in <w:t> elements, with <w:p> marking
// paragraph boundaries.
func parseDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("fileparse: open docx: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("fileparse: docx has no word/document.xml")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("fileparse: open docx document: %w", err)
	}
	defer rc.Close()

	var buf strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("fileparse: decode docx document: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if el.Name.Local == "t" {
				inText = false
			}
			if el.Name.Local == "p" {
				buf.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				buf.Write(el)
			}
		}
	}
	return Truncate(strings.TrimSpace(buf.String())), nil
}
