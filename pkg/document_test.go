package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	doc, err := DecodeDocument("data:application/pdf;base64,JVBERi0=")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []byte("%PDF-"), doc.Data)
}

func TestDecodeDocumentRejectsPlainText(t *testing.T) {
	_, err := DecodeDocument("JVBERi0=")
	assert.ErrorIs(t, err, ErrNotDataURL)
}
