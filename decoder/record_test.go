package decoder

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/telelog/encoding"
	"github.com/arloliu/telelog/errs"
	"github.com/arloliu/telelog/format"
	"github.com/arloliu/telelog/internal/testutil"
	"github.com/arloliu/telelog/series"
)

func newRecordDecoder(data []byte, reg *series.Registry) (*RecordDecoder, *encoding.Cursor) {
	cur := encoding.NewCursor(data, nil)
	return NewRecordDecoder(cur, reg), cur
}

func TestRecordDecoder_Definition(t *testing.T) {
	t.Run("Numeric type tag", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Definition(7, "speed", 1000, 0, "m/s").Bytes()
		rd, cur := newRecordDecoder(data, series.NewRegistry())

		rec, err := rd.Next()
		require.NoError(t, err)
		require.Equal(t, &DefinitionRecord{
			ID:        7,
			Name:      "speed",
			Unit:      "m/s",
			Type:      format.TypeNumeric,
			Timestamp: 1000,
		}, rec)
		require.Equal(t, uint16(7), rec.SeriesID())
		require.Equal(t, 0, cur.Remaining())
	})

	t.Run("Any non-zero tag is text", func(t *testing.T) {
		for _, tag := range []uint8{1, 2, 0xFF} {
			data := testutil.NewStreamBuilder().Definition(3, "status", 5, tag, "").Bytes()
			rd, _ := newRecordDecoder(data, series.NewRegistry())

			rec, err := rd.Next()
			require.NoError(t, err)
			require.Equal(t, format.TypeText, rec.(*DefinitionRecord).Type)
		}
	})

	t.Run("Unit uses all 16 bytes", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Definition(1, "x", 0, 0, "0123456789abcdef").Bytes()
		rd, _ := newRecordDecoder(data, series.NewRegistry())

		rec, err := rd.Next()
		require.NoError(t, err)
		require.Equal(t, "0123456789abcdef", rec.(*DefinitionRecord).Unit)
	})

	t.Run("Below minimum size", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Definition(1, "", 0, 0, "").Bytes()
		rd, cur := newRecordDecoder(data[:len(data)-1], series.NewRegistry())

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		var insufficient *errs.InsufficientDataError
		require.ErrorAs(t, err, &insufficient)
		require.Equal(t, 28, insufficient.Need)
		require.Equal(t, 27, insufficient.Have)
		require.Equal(t, 2, cur.Pos(), "only the series id is consumed")
	})

	t.Run("Name longer than remaining bytes", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Definition(1, "temperature", 0, 0, "C").Bytes()
		// keep the fixed-size part but cut into the name
		rd, _ := newRecordDecoder(data[:len(data)-5], series.NewRegistry())

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInsufficientData)

		var insufficient *errs.InsufficientDataError
		require.ErrorAs(t, err, &insufficient)
		require.Equal(t, 28+len("temperature"), insufficient.Need)
	})

	t.Run("Invalid UTF-8 name", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Definition(1, "\xff\xfe", 0, 0, "").Bytes()
		rd, _ := newRecordDecoder(data, series.NewRegistry())

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	})

	t.Run("Invalid UTF-8 unit", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Definition(1, "x", 0, 0, "\xc3\x28").Bytes()
		rd, _ := newRecordDecoder(data, series.NewRegistry())

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	})
}

func TestRecordDecoder_UnknownSeries(t *testing.T) {
	data := testutil.NewStreamBuilder().Numeric(7, 1005, 3.5).Bytes()
	rd, _ := newRecordDecoder(data, series.NewRegistry())

	rec, err := rd.Next()
	require.Nil(t, rec)
	require.ErrorIs(t, err, errs.ErrUnknownSeriesID)

	var unknown *errs.UnknownSeriesError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, uint16(7), unknown.ID)
}

func TestRecordDecoder_Numeric(t *testing.T) {
	reg := series.NewRegistry()
	reg.Register(7, "speed", "m/s", format.TypeNumeric, 1000)

	data := testutil.NewStreamBuilder().Numeric(7, 1005, 3.5).Bytes()
	rd, _ := newRecordDecoder(data, reg)

	rec, err := rd.Next()
	require.NoError(t, err)
	require.Equal(t, &NumericRecord{ID: 7, Timestamp: 1005, Value: 3.5}, rec)

	require.NoError(t, rec.Apply(reg))
	s, _ := reg.Resolve(7)
	v, ok := s.Value(1005)
	require.True(t, ok)
	require.Equal(t, series.NumericValue(3.5), v)

	t.Run("Truncated payload", func(t *testing.T) {
		rd, _ := newRecordDecoder(data[:len(data)-3], reg)

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})
}

func TestRecordDecoder_Text(t *testing.T) {
	reg := series.NewRegistry()
	reg.Register(9, "status", "", format.TypeText, 0)

	t.Run("NUL padding stripped", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Text(9, 42, "WARNING", 3).Bytes()
		rd, cur := newRecordDecoder(data, reg)

		rec, err := rd.Next()
		require.NoError(t, err)
		require.Equal(t, &TextRecord{ID: 9, Timestamp: 42, Text: "WARNING"}, rec)
		require.Equal(t, 0, cur.Remaining())
	})

	t.Run("Empty text", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Text(9, 42, "", 0).Bytes()
		rd, _ := newRecordDecoder(data, reg)

		rec, err := rd.Next()
		require.NoError(t, err)
		require.Empty(t, rec.(*TextRecord).Text)
	})

	t.Run("Below minimum prefix", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Text(9, 42, "OK", 0).Bytes()
		rd, _ := newRecordDecoder(data[:2+8], reg)

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})

	t.Run("Length field cut short", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Text(9, 42, "OK", 0).Bytes()
		rd, _ := newRecordDecoder(data[:2+10], reg)

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})

	t.Run("Text shorter than length", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Text(9, 42, "HELLO", 0).Bytes()
		rd, _ := newRecordDecoder(data[:len(data)-1], reg)

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInsufficientData)
	})

	t.Run("Negative length", func(t *testing.T) {
		engine := binary.LittleEndian
		var data []byte
		data = engine.AppendUint16(data, 9)
		data = engine.AppendUint64(data, 42)
		data = engine.AppendUint32(data, math.MaxUint32) // -1
		rd, _ := newRecordDecoder(data, reg)

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInvalidTextLength)
	})

	t.Run("Invalid UTF-8", func(t *testing.T) {
		data := testutil.NewStreamBuilder().Text(9, 42, "\xff", 0).Bytes()
		rd, _ := newRecordDecoder(data, reg)

		_, err := rd.Next()
		require.ErrorIs(t, err, errs.ErrInvalidUTF8)
	})
}

func TestRecordDecoder_DeclaredTypeSelectsLayout(t *testing.T) {
	reg := series.NewRegistry()
	reg.Register(5, "pressure", "Pa", format.TypeNumeric, 0)

	// a text-shaped record addressed to a numeric series is read as numeric
	data := testutil.NewStreamBuilder().Text(5, 77, "abcd", 0).Bytes()
	rd, cur := newRecordDecoder(data, reg)

	rec, err := rd.Next()
	require.NoError(t, err)

	want := math.Float64frombits(binary.LittleEndian.Uint64([]byte{4, 0, 0, 0, 'a', 'b', 'c', 'd'}))
	require.Equal(t, &NumericRecord{ID: 5, Timestamp: 77, Value: want}, rec)
	require.Equal(t, 0, cur.Remaining())
}
