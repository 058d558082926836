package pkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vincent-petithory/dataurl"
)

var ErrNotDataURL = errors.New("document is not a data URI")

// Document is a decoded résumé upload.
type Document struct {
	ContentType string
	Data        []byte
}

// DecodeDocument parses a self-contained data URI as produced by the intake form.
func DecodeDocument(uri string) (*Document, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, ErrNotDataURL
	}
	du, err := dataurl.DecodeString(uri)
	if err != nil {
		return nil, fmt.Errorf("decode data uri: %w", err)
	}
	return &Document{
		ContentType: du.MediaType.ContentType(),
		Data:        du.Data,
	}, nil
}
