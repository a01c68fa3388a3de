package amqp

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSortedKeys(t *testing.T) {
	b, err := EncodeTable(Table{"foo": "bar", "baz": "Test ✈"})
	require.NoError(t, err)

	want := []byte{
		0x00, 0x00, 0x00, 0x1d,
		0x03, 'b', 'a', 'z', 'S', 0x00, 0x00, 0x00, 0x08, 'T', 'e', 's', 't', ' ', 0xe2, 0x9c, 0x88,
		0x03, 'f', 'o', 'o', 'S', 0x00, 0x00, 0x00, 0x03, 'b', 'a', 'r',
	}
	require.Equal(t, want, b)

	n, table, err := DecodeTable(b)
	require.NoError(t, err)
	require.Equal(t, len(want), n)
	require.Equal(t, Table{"foo": "bar", "baz": "Test ✈"}, table)
}

func TestTableEmpty(t *testing.T) {
	for _, v := range []Table{nil, {}} {
		b, err := EncodeTable(v)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 0}, b)
	}

	n, table, err := DecodeTable([]byte{0, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, Table{}, table)
}

func TestFieldValueKinds(t *testing.T) {
	ts := time.Unix(1234567890, 0).UTC()
	tests := []struct {
		value interface{}
		tag   byte
	}{
		{nil, 'V'},
		{true, 't'},
		{int8(-1), 'b'},
		{uint8(1), 'B'},
		{int16(-1), 's'},
		{uint16(1), 'u'},
		{int32(-1), 'I'},
		{uint32(1), 'i'},
		{int64(1), 'l'},
		{float32(1), 'f'},
		{float64(1), 'd'},
		{Decimal{1, 5}, 'D'},
		{"s", 'S'},
		{[]byte("x"), 'x'},
		{[]interface{}{true}, 'A'},
		{Table{"a": true}, 'F'},
		{ts, 'T'},
	}

	for _, tt := range tests {
		b, err := EncodeFieldValue(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.tag, b[0], "%T", tt.value)

		n, v, err := DecodeFieldValue(b)
		require.NoError(t, err)
		require.Equal(t, len(b), n)
		if !cmp.Equal(tt.value, v) {
			t.Errorf("Roundtrip produced different results:\n %s", cmp.Diff(tt.value, v))
		}
	}
}

func TestFieldValueMap(t *testing.T) {
	b, err := EncodeFieldValue(map[string]interface{}{"k": "v"})
	require.NoError(t, err)
	_, v, err := DecodeFieldValue(b)
	require.NoError(t, err)
	require.Equal(t, Table{"k": "v"}, v)
}

func TestFieldValueUnsupported(t *testing.T) {
	for _, v := range []interface{}{
		struct{}{},
		complex(1, 2),
		map[int]interface{}{},
		[]string{"a"},
		Table{"nested": []interface{}{make(chan int)}},
	} {
		_, err := EncodeFieldValue(v)
		var encErr *EncodeError
		assert.True(t, errors.As(err, &encErr), "%T: %v", v, err)
	}
}

func TestAdaptiveIntegers(t *testing.T) {
	modern := defaultCodec
	legacy, err := NewCodec(CodecLegacyIntegers(true))
	require.NoError(t, err)
	require.True(t, legacy.LegacyIntegers())
	require.False(t, modern.LegacyIntegers())

	tests := []struct {
		value          interface{}
		modern, legacy byte
	}{
		{int(0), 'B', 's'},
		{int(255), 'B', 's'},
		{int(256), 's', 's'},
		{int(-1), 's', 's'},
		{int(-32768), 's', 's'},
		{int(32768), 'u', 'I'},
		{int(65535), 'u', 'I'},
		{int(65536), 'I', 'I'},
		{int(-40000), 'I', 'I'},
		{int(2147483648), 'i', 'l'},
		{int(4294967295), 'i', 'l'},
		{int(4294967296), 'l', 'l'},
		{int(-2147483649), 'l', 'l'},
		{uint(7), 'B', 's'},
		{uint64(1 << 40), 'l', 'l'},
		{uint8(7), 'B', 's'},
		{uint16(7), 'u', 'I'},
		{uint32(7), 'i', 'l'},
		{int8(7), 'b', 'b'},
		{int16(7), 's', 's'},
		{int32(7), 'I', 'I'},
	}

	for _, tt := range tests {
		b, err := modern.EncodeFieldValue(tt.value)
		require.NoError(t, err)
		assert.Equal(t, string(tt.modern), string(b[0]), "modern %T(%v)", tt.value, tt.value)

		b, err = legacy.EncodeFieldValue(tt.value)
		require.NoError(t, err)
		assert.Equal(t, string(tt.legacy), string(b[0]), "legacy %T(%v)", tt.value, tt.value)

		// decoders accept both vocabularies
		_, _, err = DecodeFieldValue(b)
		require.NoError(t, err)
	}

	_, err = EncodeFieldValue(uint64(1 << 63))
	var encErr *EncodeError
	require.True(t, errors.As(err, &encErr))
}

func TestDecodeLegacyVoid(t *testing.T) {
	// \0 decodes as void but is never emitted
	n, table, err := DecodeTable([]byte{0, 0, 0, 3, 1, 'a', 0})
	require.NoError(t, err)
	require.Equal(t, 7, n)
	require.Equal(t, Table{"a": nil}, table)

	b, err := EncodeTable(table)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, 3, 1, 'a', 'V'}, b)
}

func TestDecodeUnknownTag(t *testing.T) {
	_, _, err := DecodeTable([]byte{0, 0, 0, 3, 1, 'a', 'Z'})
	var decErr *DecodeError
	require.True(t, errors.As(err, &decErr))
	require.Contains(t, err.Error(), `table key "a"`)
	require.Contains(t, decErr.Msg, "'Z'")
}

func TestArrayRoundTrip(t *testing.T) {
	a := []interface{}{
		"one", uint8(2), []interface{}{}, Table{"k": int16(-3)}, nil,
	}
	b, err := EncodeArray(a)
	require.NoError(t, err)

	n, got, err := DecodeArray(b)
	require.NoError(t, err)
	require.Equal(t, len(b), n)
	require.Equal(t, a, got)
}

func TestNestedTables(t *testing.T) {
	table := Table{
		"level1": Table{
			"level2": Table{
				"level3": []interface{}{Table{"deep": true}},
			},
		},
		"bytes": []byte{0xff, 0x00},
		"sum":   Decimal{Scale: 2, Value: 199},
	}
	b, err := EncodeTable(table)
	require.NoError(t, err)
	_, got, err := DecodeTable(b)
	require.NoError(t, err)
	require.Equal(t, table, got)
}

func TestTableKeyTruncation(t *testing.T) {
	var (
		mu   sync.Mutex
		logs [][]interface{}
	)
	codec, err := NewCodec(CodecLogger(log.LoggerFunc(func(kv ...interface{}) error {
		mu.Lock()
		defer mu.Unlock()
		logs = append(logs, kv)
		return nil
	})))
	require.NoError(t, err)

	long := strings.Repeat("k", 129)
	b, err := codec.EncodeTable(Table{long: true})
	require.NoError(t, err)

	_, got, err := DecodeTable(b)
	require.NoError(t, err)
	require.Equal(t, Table{long[:128]: true}, got)
	require.Len(t, logs, 1)
	require.Contains(t, logs[0], "truncating field table key")

	// never split a multi-byte character
	split := strings.Repeat("k", 127) + "é"
	b, err = codec.EncodeTable(Table{split: true})
	require.NoError(t, err)
	_, got, err = DecodeTable(b)
	require.NoError(t, err)
	require.Equal(t, Table{split[:127]: true}, got)

	// keys at the limit are kept
	exact := strings.Repeat("k", 128)
	b, err = codec.EncodeTable(Table{exact: true})
	require.NoError(t, err)
	require.True(t, bytes.Contains(b, []byte(exact)))
	require.Len(t, logs, 2)
}

func TestCodecLoggerNil(t *testing.T) {
	_, err := NewCodec(CodecLogger(nil))
	require.Error(t, err)
}
