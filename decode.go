package amqp

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/gmr/pamqp-sub000/internal/buffer"
)

// timestamps above this are taken to be milliseconds
const maxTimestampSeconds = math.MaxUint32

// DecodeValue decodes one value of type t from the start of b, returning
// the number of bytes consumed.
func DecodeValue(t Type, b []byte) (int, interface{}, error) {
	buf := buffer.New(b)
	v, err := readValue(buf, t)
	if err != nil {
		return 0, nil, err
	}
	return buf.Offset(), v, nil
}

// DecodeFieldValue decodes one tagged value from the start of b.
func DecodeFieldValue(b []byte) (int, interface{}, error) {
	buf := buffer.New(b)
	v, err := readFieldValue(buf)
	if err != nil {
		return 0, nil, err
	}
	return buf.Offset(), v, nil
}

// DecodeTable decodes a length prefixed field table from the start of b.
func DecodeTable(b []byte) (int, Table, error) {
	buf := buffer.New(b)
	t, err := readTable(buf)
	if err != nil {
		return 0, nil, err
	}
	return buf.Offset(), t, nil
}

// DecodeArray decodes a length prefixed field array from the start of b.
func DecodeArray(b []byte) (int, []interface{}, error) {
	buf := buffer.New(b)
	a, err := readArray(buf)
	if err != nil {
		return 0, nil, err
	}
	return buf.Offset(), a, nil
}

// Decoding does not depend on codec settings; these methods exist so a
// *Codec can stand in for the package-level functions.

// DecodeValue is the package-level DecodeValue.
func (c *Codec) DecodeValue(t Type, b []byte) (int, interface{}, error) { return DecodeValue(t, b) }

// DecodeFieldValue is the package-level DecodeFieldValue.
func (c *Codec) DecodeFieldValue(b []byte) (int, interface{}, error) { return DecodeFieldValue(b) }

// DecodeTable is the package-level DecodeTable.
func (c *Codec) DecodeTable(b []byte) (int, Table, error) { return DecodeTable(b) }

// DecodeArray is the package-level DecodeArray.
func (c *Codec) DecodeArray(b []byte) (int, []interface{}, error) { return DecodeArray(b) }

func readValue(buf *buffer.Buffer, t Type) (interface{}, error) {
	switch t {
	case TypeBoolean:
		b, err := buf.ReadByte()
		if err != nil {
			return nil, decodeErr(t, "buffer too short")
		}
		return b != 0, nil

	case TypeShortShortInt, TypeOctet:
		b, err := buf.ReadByte()
		if err != nil {
			return nil, decodeErr(t, "buffer too short")
		}
		if t == TypeShortShortInt {
			return int8(b), nil
		}
		return b, nil

	case TypeShortInt, TypeShort:
		n, err := buf.ReadUint16()
		if err != nil {
			return nil, decodeErr(t, "buffer too short")
		}
		if t == TypeShortInt {
			return int16(n), nil
		}
		return n, nil

	case TypeLongInt, TypeLong:
		n, err := buf.ReadUint32()
		if err != nil {
			return nil, decodeErr(t, "buffer too short")
		}
		if t == TypeLongInt {
			return int32(n), nil
		}
		return n, nil

	case TypeLongLongInt, TypeLongLong:
		n, err := buf.ReadUint64()
		if err != nil {
			return nil, decodeErr(t, "buffer too short")
		}
		if t == TypeLongLongInt {
			return int64(n), nil
		}
		return n, nil

	case TypeFloat:
		n, err := buf.ReadUint32()
		if err != nil {
			return nil, decodeErr(t, "buffer too short")
		}
		return math.Float32frombits(n), nil

	case TypeDouble:
		n, err := buf.ReadUint64()
		if err != nil {
			return nil, decodeErr(t, "buffer too short")
		}
		return math.Float64frombits(n), nil

	case TypeDecimal:
		if buf.Len() < 5 {
			return nil, decodeErr(t, "buffer too short")
		}
		scale, _ := buf.ReadByte()
		n, _ := buf.ReadUint32()
		return Decimal{Scale: scale, Value: int32(n)}, nil

	case TypeShortString:
		return readShortString(buf)

	case TypeLongString:
		b, err := readLongBytes(buf, t)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(b) {
			return append([]byte(nil), b...), nil
		}
		return string(b), nil

	case TypeByteArray:
		b, err := readLongBytes(buf, t)
		if err != nil {
			return nil, err
		}
		return append([]byte{}, b...), nil

	case TypeTimestamp:
		n, err := buf.ReadUint64()
		if err != nil {
			return nil, decodeErr(t, "buffer too short")
		}
		if n > maxTimestampSeconds {
			n /= 1000
		}
		return time.Unix(int64(n), 0).UTC(), nil

	case TypeFieldTable:
		return readTable(buf)

	case TypeFieldArray:
		return readArray(buf)

	case TypeVoid:
		return nil, nil
	}
	return nil, decodeErr(t, "cannot be decoded on its own")
}

func readShortString(buf *buffer.Buffer) (string, error) {
	n, err := buf.ReadByte()
	if err != nil {
		return "", decodeErr(TypeShortString, "buffer too short")
	}
	b, ok := buf.Next(int64(n))
	if !ok {
		return "", decodeErr(TypeShortString, "length %d exceeds buffer", n)
	}
	if !utf8.Valid(b) {
		return "", decodeErr(TypeShortString, "not valid UTF-8")
	}
	return string(b), nil
}

// readLongBytes returns the payload of a 4 byte length prefixed value. The
// slice aliases buf.
func readLongBytes(buf *buffer.Buffer, t Type) ([]byte, error) {
	n, err := buf.ReadUint32()
	if err != nil {
		return nil, decodeErr(t, "buffer too short")
	}
	b, ok := buf.Next(int64(n))
	if !ok {
		return nil, decodeErr(t, "length %d exceeds buffer", n)
	}
	return b, nil
}

func readTable(buf *buffer.Buffer) (Table, error) {
	b, err := readLongBytes(buf, TypeFieldTable)
	if err != nil {
		return nil, err
	}

	t := make(Table)
	r := buffer.New(b)
	for r.Len() > 0 {
		key, err := readShortString(r)
		if err != nil {
			return nil, errorWrapf(err, "table key")
		}
		v, err := readFieldValue(r)
		if err != nil {
			return nil, errorWrapf(err, "table key %q", key)
		}
		t[key] = v
	}
	return t, nil
}

func readArray(buf *buffer.Buffer) ([]interface{}, error) {
	b, err := readLongBytes(buf, TypeFieldArray)
	if err != nil {
		return nil, err
	}

	a := []interface{}{}
	r := buffer.New(b)
	for r.Len() > 0 {
		v, err := readFieldValue(r)
		if err != nil {
			return nil, errorWrapf(err, "array index %d", len(a))
		}
		a = append(a, v)
	}
	return a, nil
}

func readFieldValue(buf *buffer.Buffer) (interface{}, error) {
	tag, err := buf.ReadByte()
	if err != nil {
		return nil, decodeErr(typeFieldValue, "buffer too short")
	}
	t, ok := tagTypes[tag]
	if !ok {
		return nil, decodeErr(typeFieldValue, "unknown type tag %q (%#02x)", tag, tag)
	}
	return readValue(buf, t)
}
