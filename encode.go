package amqp

import (
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/gmr/pamqp-sub000/internal/buffer"
)

// maxTableKey is the longest field table key the protocol allows.
const maxTableKey = 128

// EncodeValue encodes v as the primitive type t using the default codec.
func EncodeValue(t Type, v interface{}) ([]byte, error) {
	return defaultCodec.EncodeValue(t, v)
}

// EncodeFieldValue encodes v with its leading type tag using the default
// codec.
func EncodeFieldValue(v interface{}) ([]byte, error) {
	return defaultCodec.EncodeFieldValue(v)
}

// EncodeTable encodes t as a field table using the default codec.
func EncodeTable(t Table) ([]byte, error) {
	return defaultCodec.EncodeTable(t)
}

// EncodeArray encodes a as a field array using the default codec.
func EncodeArray(a []interface{}) ([]byte, error) {
	return defaultCodec.EncodeArray(a)
}

// EncodeValue encodes v as the primitive type t.
func (c *Codec) EncodeValue(t Type, v interface{}) ([]byte, error) {
	var buf buffer.Buffer
	err := c.writeValue(&buf, t, v)
	if err != nil {
		return nil, err
	}
	return buf.Detach(), nil
}

// EncodeFieldValue encodes v with its leading type tag.
func (c *Codec) EncodeFieldValue(v interface{}) ([]byte, error) {
	var buf buffer.Buffer
	err := c.writeFieldValue(&buf, v)
	if err != nil {
		return nil, err
	}
	return buf.Detach(), nil
}

// EncodeTable encodes t as a field table.
func (c *Codec) EncodeTable(t Table) ([]byte, error) {
	return c.EncodeValue(TypeFieldTable, t)
}

// EncodeArray encodes a as a field array.
func (c *Codec) EncodeArray(a []interface{}) ([]byte, error) {
	return c.EncodeValue(TypeFieldArray, a)
}

func (c *Codec) writeValue(buf *buffer.Buffer, t Type, v interface{}) error {
	switch t {
	case TypeBit:
		return encodeErr(t, v, "bits are only encoded as method arguments")

	case TypeBoolean:
		b, ok := v.(bool)
		if !ok {
			return encodeErr(t, v, "not a bool")
		}
		if b {
			buf.AppendByte(1)
		} else {
			buf.AppendByte(0)
		}
		return nil

	case TypeShortShortInt, TypeOctet, TypeShortInt, TypeShort,
		TypeLongInt, TypeLong, TypeLongLongInt, TypeLongLong:
		r := intRanges[t]
		n, ok := r.fits(v)
		if !ok {
			return encodeErr(t, v, "out of range")
		}
		writeInt(buf, r.size, n)
		return nil

	case TypeFloat:
		var f float32
		switch n := v.(type) {
		case float32:
			f = n
		case float64:
			if float64(float32(n)) != n && !math.IsNaN(n) {
				return encodeErr(t, v, "loses precision")
			}
			f = float32(n)
		default:
			return encodeErr(t, v, "not a float")
		}
		buf.AppendUint32(math.Float32bits(f))
		return nil

	case TypeDouble:
		var f float64
		switch n := v.(type) {
		case float64:
			f = n
		case float32:
			f = float64(n)
		default:
			return encodeErr(t, v, "not a float")
		}
		buf.AppendUint64(math.Float64bits(f))
		return nil

	case TypeDecimal:
		d, ok := v.(Decimal)
		if !ok {
			return encodeErr(t, v, "not a Decimal")
		}
		buf.AppendByte(d.Scale)
		buf.AppendUint32(uint32(d.Value))
		return nil

	case TypeShortString:
		s, ok := v.(string)
		if !ok {
			return encodeErr(t, v, "not a string")
		}
		if len(s) > math.MaxUint8 {
			return encodeErr(t, v, "%d bytes is longer than 255", len(s))
		}
		if !utf8.ValidString(s) {
			return encodeErr(t, v, "not valid UTF-8")
		}
		buf.AppendByte(uint8(len(s)))
		buf.AppendString(s)
		return nil

	case TypeLongString:
		s, ok := v.(string)
		if !ok {
			return encodeErr(t, v, "not a string")
		}
		if !utf8.ValidString(s) {
			return encodeErr(t, v, "not valid UTF-8")
		}
		return writeRawLongString(buf, s)

	case TypeByteArray:
		b, ok := v.([]byte)
		if !ok {
			return encodeErr(t, v, "not a []byte")
		}
		if uint64(len(b)) > math.MaxUint32 {
			return encodeErr(t, v, "too long")
		}
		buf.AppendUint32(uint32(len(b)))
		buf.Append(b)
		return nil

	case TypeTimestamp:
		var secs uint64
		switch ts := v.(type) {
		case time.Time:
			if ts.Unix() < 0 {
				return encodeErr(t, v, "before the unix epoch")
			}
			secs = uint64(ts.Unix())
		default:
			n, ok := intRanges[TypeTimestamp].fits(v)
			if !ok {
				return encodeErr(t, v, "not a time.Time or non-negative seconds")
			}
			secs = n
		}
		buf.AppendUint64(secs)
		return nil

	case TypeFieldTable:
		switch m := v.(type) {
		case Table:
			return c.writeTable(buf, m)
		case map[string]interface{}:
			return c.writeTable(buf, m)
		case nil:
			buf.AppendUint32(0)
			return nil
		}
		return encodeErr(t, v, "not a Table")

	case TypeFieldArray:
		a, ok := v.([]interface{})
		if !ok && v != nil {
			return encodeErr(t, v, "not a []interface{}")
		}
		return c.writeArray(buf, a)

	case TypeVoid:
		if v != nil {
			return encodeErr(t, v, "not nil")
		}
		return nil
	}
	return encodeErr(t, v, "unknown type")
}

func writeInt(buf *buffer.Buffer, size int, n uint64) {
	switch size {
	case 1:
		buf.AppendByte(uint8(n))
	case 2:
		buf.AppendUint16(uint16(n))
	case 4:
		buf.AppendUint32(uint32(n))
	default:
		buf.AppendUint64(n)
	}
}

// writeTable writes a length prefixed table with sorted keys. The length
// is back-filled once the entries are written.
func (c *Codec) writeTable(buf *buffer.Buffer, m map[string]interface{}) error {
	lenPos := buf.Size()
	buf.AppendUint32(0) // overwrite later

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if len(key) > maxTableKey {
			key = truncateKey(key)
			warn(c.log(), "msg", "truncating field table key", "key", k, "length", len(k), "max", maxTableKey)
		}
		err := c.writeValue(buf, TypeShortString, key)
		if err != nil {
			return errorWrapf(err, "table key %q", key)
		}
		err = c.writeFieldValue(buf, m[k])
		if err != nil {
			return errorWrapf(err, "table key %q", key)
		}
	}

	return putLength(buf, lenPos)
}

func (c *Codec) writeArray(buf *buffer.Buffer, a []interface{}) error {
	lenPos := buf.Size()
	buf.AppendUint32(0) // overwrite later

	for i, v := range a {
		err := c.writeFieldValue(buf, v)
		if err != nil {
			return errorWrapf(err, "array index %d", i)
		}
	}

	return putLength(buf, lenPos)
}

// putLength back-fills the 4 byte length prefix at pos.
// writeRawLongString writes s as a long string without requiring UTF-8.
func writeRawLongString(buf *buffer.Buffer, s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return encodeErr(TypeLongString, s, "too long")
	}
	buf.AppendUint32(uint32(len(s)))
	buf.AppendString(s)
	return nil
}

func putLength(buf *buffer.Buffer, pos int) error {
	size := buf.Size() - pos - 4
	if uint64(size) > math.MaxUint32 {
		return errorNew("amqp: encoded value too large")
	}
	buf.PutUint32At(pos, uint32(size))
	return nil
}

// truncateKey cuts s to at most maxTableKey bytes without splitting a
// UTF-8 sequence.
func truncateKey(s string) string {
	n := maxTableKey
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (c *Codec) writeFieldValue(buf *buffer.Buffer, v interface{}) error {
	t, err := c.fieldType(v)
	if err != nil {
		return err
	}
	buf.AppendByte(typeTags[t])
	return c.writeValue(buf, t, v)
}

// fieldType selects the tagged type used for v inside tables and arrays.
func (c *Codec) fieldType(v interface{}) (Type, error) {
	switch v := v.(type) {
	case nil:
		return TypeVoid, nil
	case bool:
		return TypeBoolean, nil
	case int8:
		return TypeShortShortInt, nil
	case int16:
		return TypeShortInt, nil
	case int32:
		return TypeLongInt, nil
	case int64:
		return TypeLongLongInt, nil
	case uint8:
		if c.legacyIntegers {
			return TypeShortInt, nil
		}
		return TypeOctet, nil
	case uint16:
		if c.legacyIntegers {
			return TypeLongInt, nil
		}
		return TypeShort, nil
	case uint32:
		if c.legacyIntegers {
			return TypeLongLongInt, nil
		}
		return TypeLong, nil
	case int, uint, uint64:
		return c.integerType(v)
	case Decimal:
		return TypeDecimal, nil
	case float32:
		return TypeFloat, nil
	case float64:
		return TypeDouble, nil
	case string:
		return TypeLongString, nil
	case []byte:
		return TypeByteArray, nil
	case []interface{}:
		return TypeFieldArray, nil
	case Table, map[string]interface{}:
		return TypeFieldTable, nil
	case time.Time:
		return TypeTimestamp, nil
	}
	return 0, encodeErr(typeFieldValue, v, "unsupported type")
}

var (
	adaptiveIntegers = []Type{TypeOctet, TypeShortInt, TypeShort, TypeLongInt, TypeLong, TypeLongLongInt}
	legacyIntegers   = []Type{TypeShortInt, TypeLongInt, TypeLongLongInt}
)

// integerType picks the narrowest type holding v, preferring unsigned
// types for non-negative values unless legacy integers are enabled.
func (c *Codec) integerType(v interface{}) (Type, error) {
	candidates := adaptiveIntegers
	if c.legacyIntegers {
		candidates = legacyIntegers
	}
	for _, t := range candidates {
		if _, ok := intRanges[t].fits(v); ok {
			return t, nil
		}
	}
	return 0, encodeErr(typeFieldValue, v, "integer too large")
}
