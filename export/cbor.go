package export

import (
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/arloliu/telelog/series"
)

// encMode uses Core Deterministic Encoding, so equal sessions export to identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("export: CBOR encoder initialization failed: " + err.Error())
	}
}

// CBORExporter exports sessions as a single CBOR item.
type CBORExporter struct{}

func (e *CBORExporter) Export(sess *series.Session, w io.Writer) error {
	return encMode.NewEncoder(w).Encode(NewDocument(sess))
}

func (e *CBORExporter) Extension() string {
	return "cbor"
}
