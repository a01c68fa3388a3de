package amqp

import (
	"github.com/gmr/pamqp-sub000/internal/buffer"
)

// argument describes one method argument: its wire name, domain, and a
// pointer to the struct field holding its value.
type argument struct {
	name     string
	domain   *Domain
	value    interface{}
	reserved bool // must hold its zero value
}

func arg(name string, d *Domain, p interface{}) argument {
	return argument{name: name, domain: d, value: p}
}

func reserved(name string, d *Domain, p interface{}) argument {
	return argument{name: name, domain: d, value: p, reserved: true}
}

// load returns the value behind an argument pointer.
func load(p interface{}) interface{} {
	switch p := p.(type) {
	case *bool:
		return *p
	case *uint8:
		return *p
	case *uint16:
		return *p
	case *uint32:
		return *p
	case *uint64:
		return *p
	case *string:
		return *p
	case *Table:
		return *p
	}
	panic(errorErrorf("amqp: unsupported argument %T", p))
}

// store sets the value behind an argument pointer.
func store(p interface{}, v interface{}) error {
	var ok bool
	switch p := p.(type) {
	case *bool:
		*p, ok = v.(bool)
	case *uint8:
		*p, ok = v.(uint8)
	case *uint16:
		*p, ok = v.(uint16)
	case *uint32:
		*p, ok = v.(uint32)
	case *uint64:
		*p, ok = v.(uint64)
	case *string:
		switch v := v.(type) {
		case string:
			*p, ok = v, true
		case []byte:
			// long strings that are not UTF-8, such as SASL responses
			*p, ok = string(v), true
		}
	case *Table:
		*p, ok = v.(Table)
	}
	if !ok {
		return errorErrorf("amqp: cannot store %T in %T", v, p)
	}
	return nil
}

// writeArguments encodes args in order. Runs of bit arguments share
// octets, least significant bit first; any other argument ends the run.
func (c *Codec) writeArguments(buf *buffer.Buffer, args []argument) error {
	var (
		bits    byte
		offset  uint
		inGroup bool
	)
	flush := func() {
		buf.AppendByte(bits)
		bits, offset, inGroup = 0, 0, false
	}

	for _, a := range args {
		if a.domain.Type != TypeBit {
			if inGroup {
				flush()
			}
			if a.domain.Type == TypeLongString {
				// opaque, may hold bytes that are not UTF-8
				err := writeRawLongString(buf, *a.value.(*string))
				if err != nil {
					return errorWrapf(err, "argument %s", a.name)
				}
				continue
			}
			err := c.writeValue(buf, a.domain.Type, load(a.value))
			if err != nil {
				return errorWrapf(err, "argument %s", a.name)
			}
			continue
		}

		inGroup = true
		if *a.value.(*bool) {
			bits |= 1 << offset
		}
		offset++
		if offset == 8 {
			flush()
		}
	}
	if inGroup {
		flush()
	}
	return nil
}

// readArguments is the mirror of writeArguments.
func readArguments(buf *buffer.Buffer, args []argument) error {
	var (
		bits    byte
		offset  uint
		inGroup bool
	)

	for _, a := range args {
		if a.domain.Type != TypeBit {
			inGroup = false
			v, err := readValue(buf, a.domain.Type)
			if err != nil {
				return errorWrapf(err, "argument %s", a.name)
			}
			err = store(a.value, v)
			if err != nil {
				return errorWrapf(err, "argument %s", a.name)
			}
			continue
		}

		if !inGroup || offset == 8 {
			b, err := buf.ReadByte()
			if err != nil {
				return errorWrapf(decodeErr(TypeBit, "buffer too short"), "argument %s", a.name)
			}
			bits, offset, inGroup = b, 0, true
		}
		*a.value.(*bool) = bits&(1<<offset) != 0
		offset++
	}
	return nil
}
