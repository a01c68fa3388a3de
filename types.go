package amqp

import (
	"fmt"
	"math/big"
)

// Type is an AMQP 0-9-1 primitive type.
type Type uint8

// Primitive types.
const (
	TypeBit           Type = iota // packed into octets by the method codec
	TypeBoolean                   // t
	TypeShortShortInt             // b
	TypeOctet                     // B, short-short-uint
	TypeShortInt                  // s
	TypeShort                     // u, short-uint
	TypeLongInt                   // I
	TypeLong                      // i, long-uint
	TypeLongLongInt               // l
	TypeLongLong                  // long-long-uint, no field tag
	TypeFloat                     // f
	TypeDouble                    // d
	TypeDecimal                   // D
	TypeShortString               // no field tag
	TypeLongString                // S
	TypeFieldArray                // A
	TypeTimestamp                 // T
	TypeFieldTable                // F
	TypeVoid                      // V
	TypeByteArray                 // x

	typeFieldValue Type = 0xff // any tagged value, used in errors
)

var typeNames = [...]string{
	TypeBit:           "bit",
	TypeBoolean:       "boolean",
	TypeShortShortInt: "short-short-int",
	TypeOctet:         "short-short-uint",
	TypeShortInt:      "short-int",
	TypeShort:         "short-uint",
	TypeLongInt:       "long-int",
	TypeLong:          "long-uint",
	TypeLongLongInt:   "long-long-int",
	TypeLongLong:      "long-long-uint",
	TypeFloat:         "float",
	TypeDouble:        "double",
	TypeDecimal:       "decimal",
	TypeShortString:   "short-string",
	TypeLongString:    "long-string",
	TypeFieldArray:    "field-array",
	TypeTimestamp:     "timestamp",
	TypeFieldTable:    "field-table",
	TypeVoid:          "void",
	TypeByteArray:     "byte-array",
}

// protocol-document aliases accepted by ParseType
var typeAliases = map[string]Type{
	"octet":    TypeOctet,
	"short":    TypeShort,
	"long":     TypeLong,
	"longlong": TypeLongLong,
	"shortstr": TypeShortString,
	"longstr":  TypeLongString,
	"table":    TypeFieldTable,
}

func (t Type) String() string {
	if t == typeFieldValue {
		return "field-value"
	}
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType returns the Type with the given canonical name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	if t, ok := typeAliases[name]; ok {
		return t, nil
	}
	return 0, errorErrorf("amqp: unknown type %q", name)
}

// field value tags
const (
	tagBoolean       = 't'
	tagShortShortInt = 'b'
	tagOctet         = 'B'
	tagShortInt      = 's'
	tagShort         = 'u'
	tagLongInt       = 'I'
	tagLong          = 'i'
	tagLongLongInt   = 'l'
	tagFloat         = 'f'
	tagDouble        = 'd'
	tagDecimal       = 'D'
	tagLongString    = 'S'
	tagFieldArray    = 'A'
	tagTimestamp     = 'T'
	tagFieldTable    = 'F'
	tagVoid          = 'V'
	tagVoidLegacy    = 0x00 // decode only
	tagByteArray     = 'x'
)

var tagTypes = map[byte]Type{
	tagBoolean:       TypeBoolean,
	tagShortShortInt: TypeShortShortInt,
	tagOctet:         TypeOctet,
	tagShortInt:      TypeShortInt,
	tagShort:         TypeShort,
	tagLongInt:       TypeLongInt,
	tagLong:          TypeLong,
	tagLongLongInt:   TypeLongLongInt,
	tagFloat:         TypeFloat,
	tagDouble:        TypeDouble,
	tagDecimal:       TypeDecimal,
	tagLongString:    TypeLongString,
	tagFieldArray:    TypeFieldArray,
	tagTimestamp:     TypeTimestamp,
	tagFieldTable:    TypeFieldTable,
	tagVoid:          TypeVoid,
	tagVoidLegacy:    TypeVoid,
	tagByteArray:     TypeByteArray,
}

var typeTags = map[Type]byte{
	TypeBoolean:       tagBoolean,
	TypeShortShortInt: tagShortShortInt,
	TypeOctet:         tagOctet,
	TypeShortInt:      tagShortInt,
	TypeShort:         tagShort,
	TypeLongInt:       tagLongInt,
	TypeLong:          tagLong,
	TypeLongLongInt:   tagLongLongInt,
	TypeFloat:         tagFloat,
	TypeDouble:        tagDouble,
	TypeDecimal:       tagDecimal,
	TypeLongString:    tagLongString,
	TypeFieldArray:    tagFieldArray,
	TypeTimestamp:     tagTimestamp,
	TypeFieldTable:    tagFieldTable,
	TypeVoid:          tagVoid,
	TypeByteArray:     tagByteArray,
}

// Decimal is an exact decimal number: Value * 10^-Scale.
type Decimal struct {
	Scale uint8
	Value int32
}

// Rat returns d as an exact rational.
func (d Decimal) Rat() *big.Rat {
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale)), nil)
	return new(big.Rat).SetFrac(big.NewInt(int64(d.Value)), den)
}

func (d Decimal) String() string {
	return d.Rat().FloatString(int(d.Scale))
}

// Table is an AMQP field table. Values are any of the Go kinds accepted
// by EncodeFieldValue.
type Table map[string]interface{}

// integer ranges per type
type intRange struct {
	min  int64
	max  uint64
	size int
}

var intRanges = map[Type]intRange{
	TypeShortShortInt: {-1 << 7, 1<<7 - 1, 1},
	TypeOctet:         {0, 1<<8 - 1, 1},
	TypeShortInt:      {-1 << 15, 1<<15 - 1, 2},
	TypeShort:         {0, 1<<16 - 1, 2},
	TypeLongInt:       {-1 << 31, 1<<31 - 1, 4},
	TypeLong:          {0, 1<<32 - 1, 4},
	TypeLongLongInt:   {-1 << 63, 1<<63 - 1, 8},
	TypeLongLong:      {0, 1<<64 - 1, 8},
	TypeTimestamp:     {0, 1<<64 - 1, 8},
}

// integer unpacks any Go integer kind. Unsigned kinds are reported in u,
// signed kinds in i.
func integer(v interface{}) (i int64, u uint64, signed, ok bool) {
	switch n := v.(type) {
	case int:
		return int64(n), 0, true, true
	case int8:
		return int64(n), 0, true, true
	case int16:
		return int64(n), 0, true, true
	case int32:
		return int64(n), 0, true, true
	case int64:
		return n, 0, true, true
	case uint:
		return 0, uint64(n), false, true
	case uint8:
		return 0, uint64(n), false, true
	case uint16:
		return 0, uint64(n), false, true
	case uint32:
		return 0, uint64(n), false, true
	case uint64:
		return 0, n, false, true
	}
	return 0, 0, false, false
}

// fits reports whether v is an integer within r, returning its bit
// pattern.
func (r intRange) fits(v interface{}) (uint64, bool) {
	i, u, signed, ok := integer(v)
	switch {
	case !ok:
		return 0, false
	case signed:
		if i < r.min || (i > 0 && uint64(i) > r.max) {
			return 0, false
		}
		return uint64(i), true
	default:
		return u, u <= r.max
	}
}
