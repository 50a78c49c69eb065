package entities

import (
	"errors"
	"strings"
	"time"
)

// DocumentFormat is an export file format.
type DocumentFormat string

const (
	DocumentFormatPDF  DocumentFormat = "pdf"
	DocumentFormatXLSX DocumentFormat = "xlsx"
)

var ErrUnsupportedFormat = errors.New("unsupported document format")

// ParseDocumentFormat defaults to PDF when raw is empty.
func ParseDocumentFormat(raw string) (DocumentFormat, error) {
	switch DocumentFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DocumentFormatPDF:
		return DocumentFormatPDF, nil
	case DocumentFormatXLSX:
		return DocumentFormatXLSX, nil
	}
	return "", ErrUnsupportedFormat
}

func (f DocumentFormat) ContentType() string {
	if f == DocumentFormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// DocumentMeta is the provenance printed on every exported document.
type DocumentMeta struct {
	PreparedBy  string
	Role        Role
	Filter      string
	GeneratedAt time.Time
}

// Document is a rendered export.
type Document struct {
	Name     string
	Format   DocumentFormat
	Data     []byte
	Location string
}

func (d Document) ContentType() string {
	return d.Format.ContentType()
}
