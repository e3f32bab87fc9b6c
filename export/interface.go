// Package export writes a decoded session to other formats.
package export

import (
	"fmt"
	"io"

	"github.com/arloliu/telelog/series"
)

// Exporter writes a session to a stream.
type Exporter interface {
	Export(sess *series.Session, w io.Writer) error
	Extension() string
}

// FileExporter writes a session to a file it creates itself.
type FileExporter interface {
	ExportFile(sess *series.Session, path string) error
	Extension() string
}

// NewExporter creates a stream exporter for format.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "cbor":
		return &CBORExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, cbor, csv, sqlite)", format)
	}
}

// IsFileFormat reports whether format needs a FileExporter.
func IsFileFormat(format string) bool {
	return format == "sqlite" || format == "db"
}

// Document is the serializable view of a session.
type Document struct {
	Name      string        `json:"name" yaml:"name" cbor:"name"`
	StartTime uint64        `json:"start_time" yaml:"start_time" cbor:"start_time"`
	Series    []SeriesEntry `json:"series" yaml:"series" cbor:"series"`
}

// SeriesEntry is the serializable view of a series.
type SeriesEntry struct {
	ID             uint16       `json:"id" yaml:"id" cbor:"id"`
	Name           string       `json:"name" yaml:"name" cbor:"name"`
	Unit           string       `json:"unit" yaml:"unit" cbor:"unit"`
	Type           string       `json:"type" yaml:"type" cbor:"type"`
	DefinitionTime uint64       `json:"definition_time" yaml:"definition_time" cbor:"definition_time"`
	Points         []PointEntry `json:"points" yaml:"points" cbor:"points"`
}

// PointEntry holds a float64 or a string value.
type PointEntry struct {
	Ts    uint64 `json:"ts" yaml:"ts" cbor:"ts"`
	Value any    `json:"value" yaml:"value" cbor:"value"`
}

// NewDocument builds the serializable view of sess, series in ascending id order.
func NewDocument(sess *series.Session) Document {
	doc := Document{
		Name:      sess.Name(),
		StartTime: sess.StartTime(),
		Series:    make([]SeriesEntry, 0, sess.Len()),
	}

	for _, s := range sess.AllSeries() {
		entry := SeriesEntry{
			ID:             s.ID,
			Name:           s.Name,
			Unit:           s.Unit,
			Type:           s.Type.String(),
			DefinitionTime: s.DefinitionTime,
			Points:         make([]PointEntry, 0, s.Len()),
		}
		for ts, v := range s.All() {
			entry.Points = append(entry.Points, PointEntry{Ts: ts, Value: v.Any()})
		}
		doc.Series = append(doc.Series, entry)
	}

	return doc
}
