// Package decoder turns a telemetry log buffer into a series.Session.
//
// Decoding is synchronous and all-or-nothing: the header is read, then one
// record at a time is decoded and applied to a series.Registry until at most
// one byte remains. The first malformed record aborts the whole decode and
// no partial Session is returned. A single trailing byte is treated as
// padding and ignored.
//
// Basic usage:
//
//	sess, err := decoder.Decode(data)
//	if err != nil {
//	    return err
//	}
//	for _, s := range sess.DisplayableSeries() {
//	    fmt.Println(s.Name, s.Unit, s.SortedValues())
//	}
package decoder
