package amqp

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gmr/pamqp-sub000/internal/buffer"
	"github.com/pkg/errors"
)

/*
	frame (7 byte header)
		0:		TYPE (1 method, 2 content header, 3 content body, 8 heartbeat)
		1-2:	CHANNEL (uint16)
		3-6:	SIZE (payload size, uint32)
	payload (SIZE bytes)
	frame end (0xce)

	The protocol header is the only frame without this envelope.
*/

// protocolMagic starts the protocol header.
var protocolMagic = []byte("AMQP")

// ProtocolHeader is sent by a client when it opens a connection.
type ProtocolHeader struct {
	Major    uint8
	Minor    uint8
	Revision uint8
}

// NewProtocolHeader returns the header for AMQP 0-9-1.
func NewProtocolHeader() *ProtocolHeader {
	return &ProtocolHeader{VersionMajor, VersionMinor, VersionRevision}
}

func (p *ProtocolHeader) String() string {
	return fmt.Sprintf("AMQP %d-%d-%d", p.Major, p.Minor, p.Revision)
}

// ContentHeader precedes the body frames of a message.
type ContentHeader struct {
	ClassID    uint16
	Weight     uint16 // unused, must be zero
	BodySize   uint64
	Properties *BasicProperties
}

// NewContentHeader returns a Basic content header.
func NewContentHeader(bodySize uint64, props *BasicProperties) *ContentHeader {
	if props == nil {
		props = new(BasicProperties)
	}
	return &ContentHeader{ClassID: ClassBasic, BodySize: bodySize, Properties: props}
}

// ContentBody carries message content. It is opaque to this package.
type ContentBody struct {
	Body []byte
}

// Heartbeat keeps an idle connection alive. It is always sent on
// channel 0.
type Heartbeat struct{}

var heartbeatFrame = []byte{FrameHeartbeat, 0, 0, 0, 0, 0, 0, FrameEnd}

// Marshal encodes one frame using the default codec. frame is one of
// *ProtocolHeader, Method, *ContentHeader, *ContentBody or *Heartbeat.
func Marshal(channel uint16, frame interface{}) ([]byte, error) {
	return defaultCodec.Marshal(channel, frame)
}

// Marshal encodes one frame.
func (c *Codec) Marshal(channel uint16, frame interface{}) ([]byte, error) {
	switch fr := frame.(type) {
	case *ProtocolHeader:
		return append(append([]byte{}, protocolMagic...), 0, fr.Major, fr.Minor, fr.Revision), nil
	case ProtocolHeader:
		return c.Marshal(channel, &fr)

	case *Heartbeat, Heartbeat:
		return append([]byte{}, heartbeatFrame...), nil

	case Method:
		err := Validate(fr)
		if err != nil {
			return nil, err
		}
		if s := SpecOf(fr); s != nil {
			s.warnDeprecated()
		}
		classID, _ := fr.ID()
		if classID == ClassBasic && channel == 0 {
			return nil, errorErrorf("amqp: %s requires a channel other than 0", methodName(fr))
		}
		return c.writeFrame(FrameMethod, channel, func(buf *buffer.Buffer) error {
			return c.writeMethod(buf, fr)
		})

	case *ContentHeader:
		if channel == 0 {
			return nil, errorNew("amqp: content header requires a channel other than 0")
		}
		return c.writeFrame(FrameHeader, channel, func(buf *buffer.Buffer) error {
			return c.writeContentHeader(buf, fr)
		})

	case *ContentBody:
		if channel == 0 {
			return nil, errorNew("amqp: content body requires a channel other than 0")
		}
		if len(fr.Body) == 0 {
			return nil, errorNew("amqp: content body must not be empty")
		}
		return c.writeFrame(FrameBody, channel, func(buf *buffer.Buffer) error {
			buf.Append(fr.Body)
			return nil
		})
	}
	return nil, encodeErr(typeFieldValue, frame, "not a frame")
}

// writeFrame writes the envelope around the payload written by body. The
// size is back-filled once the payload is known.
func (c *Codec) writeFrame(typ uint8, channel uint16, body func(*buffer.Buffer) error) ([]byte, error) {
	var buf buffer.Buffer
	buf.AppendByte(typ)
	buf.AppendUint16(channel)
	buf.AppendUint32(0) // overwrite later

	err := body(&buf)
	if err != nil {
		return nil, err
	}

	size := buf.Size() - frameHeaderSize
	if uint64(size) > math.MaxUint32 {
		return nil, errorNew("amqp: frame too large")
	}
	buf.PutUint32At(3, uint32(size))
	buf.AppendByte(FrameEnd)
	return buf.Detach(), nil
}

func (c *Codec) writeMethod(buf *buffer.Buffer, m Method) error {
	classID, methodID := m.ID()
	buf.AppendUint16(classID)
	buf.AppendUint16(methodID)
	return c.writeArguments(buf, m.arguments())
}

func (c *Codec) writeContentHeader(buf *buffer.Buffer, h *ContentHeader) error {
	if h.ClassID != ClassBasic {
		return errorErrorf("amqp: content header for class %d not supported", h.ClassID)
	}
	if h.Weight != 0 {
		return errorNew("amqp: content header weight must be zero")
	}
	buf.AppendUint16(h.ClassID)
	buf.AppendUint16(h.Weight)
	buf.AppendUint64(h.BodySize)

	// flags precede the property values but are only known after
	// encoding them
	var props buffer.Buffer
	flags, err := c.writeProperties(&props, h.Properties)
	if err != nil {
		return err
	}
	writePropertyFlags(buf, flags)
	buf.Append(props.Bytes())
	return nil
}

// Unmarshal decodes the first frame in b. It returns the number of bytes
// consumed, the channel, and one of *ProtocolHeader, Method,
// *ContentHeader, *ContentBody or *Heartbeat. Nothing is consumed on
// error.
func Unmarshal(b []byte) (int, uint16, interface{}, error) {
	if bytes.HasPrefix(b, protocolMagic) {
		p, err := readProtocolHeader(b)
		if err != nil {
			return 0, 0, nil, err
		}
		return 8, 0, p, nil
	}

	if len(b) < frameHeaderSize {
		return 0, 0, nil, &FramingError{Err: ErrFrameNoSize}
	}
	buf := buffer.New(b)
	typ, _ := buf.ReadByte()
	channel, _ := buf.ReadUint16()
	size, _ := buf.ReadUint32()

	framingErr := func(err error) (int, uint16, interface{}, error) {
		return 0, 0, nil, &FramingError{FrameType: typ, Channel: channel, Err: err}
	}

	if size == 0 {
		if typ != FrameHeartbeat {
			return framingErr(ErrFrameNoSize)
		}
		// the terminator is consumed when present
		end, err := buf.ReadByte()
		if err != nil {
			return frameHeaderSize, channel, &Heartbeat{}, nil
		}
		if end != FrameEnd {
			return framingErr(ErrFrameEnd)
		}
		return buf.Offset(), channel, &Heartbeat{}, nil
	}
	payload, ok := buf.Next(int64(size))
	if !ok {
		return framingErr(ErrFrameShort)
	}
	end, err := buf.ReadByte()
	if err != nil {
		return framingErr(ErrFrameShort)
	}
	if end != FrameEnd {
		return framingErr(ErrFrameEnd)
	}
	n := buf.Offset()

	var frame interface{}
	switch typ {
	case FrameMethod:
		frame, err = readMethod(payload)
	case FrameHeader:
		frame, err = readContentHeader(payload)
	case FrameBody:
		frame = &ContentBody{Body: append([]byte{}, payload...)}
	case FrameHeartbeat:
		return framingErr(errorWrapf(ErrFrameType, "heartbeat with %d byte payload", size))
	default:
		return framingErr(ErrFrameType)
	}
	if err != nil {
		var (
			uErr *UnmarshalError
			fErr *FramingError
		)
		switch {
		case errors.As(err, &uErr):
			uErr.FrameType, uErr.Channel = typ, channel
		case errors.As(err, &fErr):
			fErr.Channel = channel
		}
		return 0, 0, nil, err
	}
	return n, channel, frame, nil
}

func readProtocolHeader(b []byte) (*ProtocolHeader, error) {
	if len(b) < 8 {
		return nil, &FramingError{Err: errorWrapf(ErrFrameShort, "protocol header")}
	}
	if b[4] != 0 {
		return nil, &FramingError{Err: errorWrapf(ErrFrameType, "protocol id %d", b[4])}
	}
	return &ProtocolHeader{Major: b[5], Minor: b[6], Revision: b[7]}, nil
}

func readMethod(payload []byte) (Method, error) {
	buf := buffer.New(payload)
	index, err := buf.ReadUint32()
	if err != nil {
		return nil, &FramingError{FrameType: FrameMethod, Err: errorWrapf(ErrUnknownMethod, "payload too short")}
	}
	s, ok := LookupMethod(index)
	if !ok {
		return nil, &FramingError{FrameType: FrameMethod, Err: errorWrapf(ErrUnknownMethod, "index %#08x", index)}
	}

	m := s.New()
	err = readArguments(buf, m.arguments())
	if err == nil && buf.Len() > 0 {
		err = errorErrorf("amqp: %d trailing bytes", buf.Len())
	}
	if err == nil {
		err = Validate(m)
	}
	if err != nil {
		return nil, &UnmarshalError{Command: s.Name, Err: err}
	}
	return m, nil
}

func readContentHeader(payload []byte) (*ContentHeader, error) {
	h := new(ContentHeader)
	err := func() error {
		buf := buffer.New(payload)
		if buf.Len() < 12 {
			return decodeErr(TypeLongLong, "content header too short")
		}
		h.ClassID, _ = buf.ReadUint16()
		h.Weight, _ = buf.ReadUint16()
		h.BodySize, _ = buf.ReadUint64()
		if h.ClassID != ClassBasic {
			return errorErrorf("amqp: content header for class %d not supported", h.ClassID)
		}
		if h.Weight != 0 {
			return errorNew("amqp: content header weight must be zero")
		}

		flags, err := readPropertyFlags(buf)
		if err != nil {
			return err
		}
		h.Properties, err = readProperties(buf, flags)
		if err == nil && buf.Len() > 0 {
			err = errorErrorf("amqp: %d trailing bytes", buf.Len())
		}
		return err
	}()
	if err != nil {
		return nil, &UnmarshalError{Command: "ContentHeader", Err: err}
	}
	return h, nil
}

// FrameReader walks a byte slice holding consecutive frames.
type FrameReader struct {
	b   []byte
	off int
}

// NewFrameReader returns a FrameReader over b. b is not copied.
func NewFrameReader(b []byte) *FrameReader {
	return &FrameReader{b: b}
}

// Next decodes the next frame. ok is false once every byte has been
// consumed.
func (r *FrameReader) Next() (channel uint16, frame interface{}, ok bool, err error) {
	if r.off >= len(r.b) {
		return 0, nil, false, nil
	}
	n, channel, frame, err := Unmarshal(r.b[r.off:])
	if err != nil {
		return 0, nil, false, errorWrapf(err, "offset %d", r.off)
	}
	r.off += n
	return channel, frame, true, nil
}

// Offset returns the number of bytes consumed so far.
func (r *FrameReader) Offset() int {
	return r.off
}
