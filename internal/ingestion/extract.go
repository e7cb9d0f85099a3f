// Package ingestion converts resume documents (PDF, DOCX, plain text) into
// the clean plain-text form the extraction engine consumes, and fetches job
// descriptions from posting URLs. A document with no extractable text yields
// an empty string, not an error; callers decide how to surface that.
package ingestion

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FromFile reads a resume document and returns its cleaned plain text.
// The decoder is chosen by file extension; unknown extensions are read as
// plain text.
func FromFile(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return "", &Error{Path: path, Message: "failed to read file", Cause: err}
		}
		text = string(data)
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

// FromReader decodes a resume document from a stream. The filename is used
// only to pick the decoder, mirroring FromFile.
func FromReader(r io.Reader, filename string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDFReader(r)
	case ".docx":
		text, err = extractDOCXReader(r)
	default:
		var data []byte
		data, err = io.ReadAll(r)
		if err != nil {
			return "", &Error{Path: filename, Message: "failed to read stream", Cause: err}
		}
		text = string(data)
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}
