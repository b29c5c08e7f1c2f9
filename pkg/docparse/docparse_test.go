package docparse_test

import (
	"strings"
	"testing"

	"github.com/daryllundy/resume-builder-sub000/pkg/docparse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromTxt(t *testing.T) {
	text, err := docparse.ExtractText("resume.txt", []byte("Jordan Avery\n\n\nEngineer   at  Acme\t\t"))
	require.NoError(t, err)
	assert.Equal(t, "Jordan Avery\nEngineer at Acme", text)
}

func TestExtractTextRejectsUnknownExtension(t *testing.T) {
	_, err := docparse.ExtractText("resume.exe", []byte("x"))
	assert.ErrorIs(t, err, docparse.ErrUnsupportedFormat)
}

func TestExtractTextRejectsEmptyFile(t *testing.T) {
	_, err := docparse.ExtractText("resume.pdf", nil)
	assert.Error(t, err)
}

func TestExtractTextRejectsOversizedFile(t *testing.T) {
	huge := []byte(strings.Repeat("a", docparse.MaxFileSize+1))
	_, err := docparse.ExtractText("resume.txt", huge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestExtractTextRejectsCorruptPDF(t *testing.T) {
	_, err := docparse.ExtractText("resume.pdf", []byte("not a pdf at all"))
	assert.Error(t, err)
}
