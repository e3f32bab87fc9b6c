package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/telelog/series"
)

// YAMLExporter exports sessions as YAML.
type YAMLExporter struct{}

func (e *YAMLExporter) Export(sess *series.Session, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(NewDocument(sess))
}

func (e *YAMLExporter) Extension() string {
	return "yaml"
}
