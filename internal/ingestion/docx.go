package ingestion

import (
	"bytes"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// extractDOCX pulls plain text out of a .docx file. Paragraph boundaries
// become newlines before tags are stripped, so the section structure
// survives for the extraction engine.
func extractDOCX(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &Error{Path: path, Message: "failed to open DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return docxContentToText(doc.Editable().GetContent()), nil
}

// extractDOCXReader decodes a .docx from an in-memory copy of the reader.
func extractDOCXReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &Error{Message: "failed to read DOCX stream", Cause: err}
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Message: "failed to decode DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return docxContentToText(doc.Editable().GetContent()), nil
}

func docxContentToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = xmlTagRe.ReplaceAllString(content, " ")
	return html.UnescapeString(content)
}
