package export

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/arloliu/telelog/series"
)

// JSONExporter exports sessions as pretty-printed JSON.
//
// JSON has no literal for NaN or infinities; such values are written as the
// strings "NaN", "+Inf" and "-Inf".
type JSONExporter struct{}

func (e *JSONExporter) Export(sess *series.Session, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewDocument(sess))
}

func (e *JSONExporter) Extension() string {
	return "json"
}

func (p PointEntry) MarshalJSON() ([]byte, error) {
	type point PointEntry

	if f, ok := p.Value.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		p.Value = strconv.FormatFloat(f, 'f', -1, 64)
	}

	return json.Marshal(point(p))
}
