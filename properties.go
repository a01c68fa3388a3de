package amqp

import (
	"time"

	"github.com/gmr/pamqp-sub000/internal/buffer"
	multierror "github.com/hashicorp/go-multierror"
)

// Property flags. Bit 0 of every flag word marks a continuation word.
const (
	FlagContentType     = 0x8000
	FlagContentEncoding = 0x4000
	FlagHeaders         = 0x2000
	FlagDeliveryMode    = 0x1000
	FlagPriority        = 0x0800
	FlagCorrelationID   = 0x0400
	FlagReplyTo         = 0x0200
	FlagExpiration      = 0x0100
	FlagMessageID       = 0x0080
	FlagTimestamp       = 0x0040
	FlagType            = 0x0020
	FlagUserID          = 0x0010
	FlagAppID           = 0x0008
	FlagClusterID       = 0x0004
)

// flagContinuation marks a flag word followed by another.
const flagContinuation = 0x0001

// maxFlagWords bounds the flag words accepted on decode.
const maxFlagWords = 4

// Delivery modes.
const (
	Transient  uint8 = 1
	Persistent uint8 = 2
)

// BasicProperties are the content properties of the Basic class. The zero
// value of a field means it is absent from the wire. A peer that sends
// Priority or DeliveryMode explicitly as 0, or an empty string property,
// decodes to the same struct as one that omits the field, so the flag is
// dropped when the properties are encoded again.
type BasicProperties struct {
	ContentType     string    // MIME content type
	ContentEncoding string    // MIME content encoding
	Headers         Table     // application headers, nil when absent
	DeliveryMode    uint8     // Transient or Persistent
	Priority        uint8     // 0 to 9
	CorrelationID   string    // application correlation identifier
	ReplyTo         string    // address to reply to
	Expiration      string    // message expiration specification
	MessageID       string    // application message identifier
	Timestamp       time.Time // message timestamp
	Type            string    // message type name
	UserID          string    // creating user id
	AppID           string    // creating application id
	ClusterID       string    // reserved, must be empty
}

// property ties a flag to the field holding its value.
type property struct {
	name  string
	flag  uint64
	typ   Type
	value interface{}
}

func (p *BasicProperties) properties() []property {
	return []property{
		{"content-type", FlagContentType, TypeShortString, &p.ContentType},
		{"content-encoding", FlagContentEncoding, TypeShortString, &p.ContentEncoding},
		{"headers", FlagHeaders, TypeFieldTable, &p.Headers},
		{"delivery-mode", FlagDeliveryMode, TypeOctet, &p.DeliveryMode},
		{"priority", FlagPriority, TypeOctet, &p.Priority},
		{"correlation-id", FlagCorrelationID, TypeShortString, &p.CorrelationID},
		{"reply-to", FlagReplyTo, TypeShortString, &p.ReplyTo},
		{"expiration", FlagExpiration, TypeShortString, &p.Expiration},
		{"message-id", FlagMessageID, TypeShortString, &p.MessageID},
		{"timestamp", FlagTimestamp, TypeTimestamp, &p.Timestamp},
		{"type", FlagType, TypeShortString, &p.Type},
		{"user-id", FlagUserID, TypeShortString, &p.UserID},
		{"app-id", FlagAppID, TypeShortString, &p.AppID},
		{"cluster-id", FlagClusterID, TypeShortString, &p.ClusterID},
	}
}

func (pr property) present() bool {
	switch v := pr.value.(type) {
	case *string:
		return *v != ""
	case *uint8:
		return *v != 0
	case *Table:
		return *v != nil
	case *time.Time:
		return !v.IsZero()
	}
	return false
}

func (pr property) load() interface{} {
	if t, ok := pr.value.(*time.Time); ok {
		return *t
	}
	return load(pr.value)
}

func (pr property) store(v interface{}) error {
	if t, ok := pr.value.(*time.Time); ok {
		*t, ok = v.(time.Time)
		if !ok {
			return errorErrorf("amqp: cannot store %T in %s", v, pr.name)
		}
		return nil
	}
	return store(pr.value, v)
}

// Flags returns the flag value of the fields present in p.
func (p *BasicProperties) Flags() uint64 {
	var flags uint64
	for _, pr := range p.properties() {
		if pr.present() {
			flags |= pr.flag
		}
	}
	return flags
}

// Validate checks the reserved cluster-id and the delivery mode.
func (p *BasicProperties) Validate() error {
	var result *multierror.Error
	if p.ClusterID != "" {
		result = multierror.Append(result, &ValidationError{Command: "Basic.Properties", Field: "cluster-id", Msg: "reserved, must be empty"})
	}
	if p.DeliveryMode != 0 && p.DeliveryMode != Transient && p.DeliveryMode != Persistent {
		result = multierror.Append(result, &ValidationError{Command: "Basic.Properties", Field: "delivery-mode", Msg: "must be 1 or 2"})
	}
	return result.ErrorOrNil()
}

// EncodeProperties encodes the present fields of p with the default codec.
func EncodeProperties(p *BasicProperties) (uint64, []byte, error) {
	return defaultCodec.EncodeProperties(p)
}

// EncodeProperties returns the flag value of p and the encoded present
// fields, without the flag words.
func (c *Codec) EncodeProperties(p *BasicProperties) (uint64, []byte, error) {
	var buf buffer.Buffer
	flags, err := c.writeProperties(&buf, p)
	if err != nil {
		return 0, nil, err
	}
	return flags, buf.Detach(), nil
}

func (c *Codec) writeProperties(buf *buffer.Buffer, p *BasicProperties) (uint64, error) {
	if p == nil {
		p = new(BasicProperties)
	}
	err := p.Validate()
	if err != nil {
		return 0, err
	}

	var flags uint64
	for _, pr := range p.properties() {
		if !pr.present() {
			continue
		}
		flags |= pr.flag
		err = c.writeValue(buf, pr.typ, pr.load())
		if err != nil {
			return 0, errorWrapf(err, "property %s", pr.name)
		}
	}
	return flags, nil
}

// DecodeProperties decodes the fields flagged in flags from body.
func DecodeProperties(flags uint64, body []byte) (*BasicProperties, error) {
	p, err := readProperties(buffer.New(body), flags)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DecodeProperties is the package-level DecodeProperties.
func (c *Codec) DecodeProperties(flags uint64, body []byte) (*BasicProperties, error) {
	return DecodeProperties(flags, body)
}

func readProperties(buf *buffer.Buffer, flags uint64) (*BasicProperties, error) {
	p := new(BasicProperties)
	for _, pr := range p.properties() {
		if flags&pr.flag == 0 {
			continue
		}
		v, err := readValue(buf, pr.typ)
		if err == nil {
			err = pr.store(v)
		}
		if err != nil {
			return nil, errorWrapf(err, "property %s", pr.name)
		}
	}
	return p, p.Validate()
}

// writePropertyFlags writes flags as 16 bit words, least significant word
// first, setting the continuation bit on all but the last.
func writePropertyFlags(buf *buffer.Buffer, flags uint64) {
	for {
		word := uint16(flags) &^ flagContinuation
		flags >>= 16
		if flags != 0 {
			word |= flagContinuation
		}
		buf.AppendUint16(word)
		if flags == 0 {
			return
		}
	}
}

// ReadPropertyFlags reads flag words from the start of b until one
// without the continuation bit, returning the bytes consumed and the
// combined flag value.
func ReadPropertyFlags(b []byte) (int, uint64, error) {
	buf := buffer.New(b)
	flags, err := readPropertyFlags(buf)
	if err != nil {
		return 0, 0, err
	}
	return buf.Offset(), flags, nil
}

func readPropertyFlags(buf *buffer.Buffer) (uint64, error) {
	var flags uint64
	for i := 0; ; i++ {
		if i == maxFlagWords {
			return 0, decodeErr(TypeShort, "more than %d property flag words", maxFlagWords)
		}
		word, err := buf.ReadUint16()
		if err != nil {
			return 0, decodeErr(TypeShort, "property flags: buffer too short")
		}
		flags |= uint64(word&^flagContinuation) << (16 * uint(i))
		if word&flagContinuation == 0 {
			return flags, nil
		}
	}
}
