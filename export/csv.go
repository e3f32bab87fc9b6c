package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/arloliu/telelog/series"
)

var csvHeader = []string{"series_id", "series_name", "unit", "type", "timestamp", "value"}

// CSVExporter exports one row per point, series in ascending id order.
type CSVExporter struct{}

func (e *CSVExporter) Export(sess *series.Session, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range sess.AllSeries() {
		id := strconv.FormatUint(uint64(s.ID), 10)
		for ts, v := range s.All() {
			row := []string{id, s.Name, s.Unit, s.Type.String(), strconv.FormatUint(ts, 10), v.String()}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

func (e *CSVExporter) Extension() string {
	return "csv"
}
