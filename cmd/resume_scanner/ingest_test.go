package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/ingestion"
)

func TestRunIngest_FromFile(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "posting.txt")
	require.NoError(t, os.WriteFile(source, []byte("Senior Go Engineer\r\n\r\nWe   build  systems."), 0644))

	ingestFile = source
	ingestURL = ""
	ingestOut = filepath.Join(dir, "out")
	ingestVerbose = false

	var stdout, stderr bytes.Buffer
	require.NoError(t, runIngest(newTestCmd(&stdout, &stderr), nil))

	text, err := os.ReadFile(filepath.Join(ingestOut, "job_posting.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer\n\nWe build systems.\n", string(text))

	metaData, err := os.ReadFile(filepath.Join(ingestOut, "job_posting.meta.json"))
	require.NoError(t, err)

	var meta ingestion.Metadata
	require.NoError(t, json.Unmarshal(metaData, &meta))
	assert.Equal(t, source, meta.Source)
	assert.Equal(t, 6, meta.Words)
	assert.Len(t, meta.Hash, 64)
}

func TestRunIngest_FromURL(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><article>Staff engineer role.</article></body></html>`))
	}))
	defer origin.Close()

	ingestFile = ""
	ingestURL = origin.URL
	ingestOut = filepath.Join(t.TempDir(), "out")
	ingestVerbose = false

	var stdout, stderr bytes.Buffer
	require.NoError(t, runIngest(newTestCmd(&stdout, &stderr), nil))

	text, err := os.ReadFile(filepath.Join(ingestOut, "job_posting.cleaned.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "Staff engineer role.")

	var meta ingestion.Metadata
	metaData, err := os.ReadFile(filepath.Join(ingestOut, "job_posting.meta.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(metaData, &meta))
	assert.Equal(t, origin.URL, meta.Source)
}

func TestRunIngest_NoSource(t *testing.T) {
	ingestFile = ""
	ingestURL = ""
	ingestOut = t.TempDir()

	var stdout, stderr bytes.Buffer
	err := runIngest(newTestCmd(&stdout, &stderr), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --file or --url")
}
