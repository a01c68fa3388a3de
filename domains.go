package amqp

import (
	"regexp"
	"unicode/utf8"

	multierror "github.com/hashicorp/go-multierror"
)

// Domain is a named alias over a primitive type with optional
// constraints.
type Domain struct {
	Name      string
	Type      Type
	MaxLength int            // bytes, 0 for no limit
	Pattern   *regexp.Regexp // nil for no pattern
	NotNull   bool           // strings must be non-empty
}

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]*$`)

// maxNameLength bounds exchange and queue names.
const maxNameLength = 128

var (
	domainBit       = &Domain{Name: "bit", Type: TypeBit}
	domainOctet     = &Domain{Name: "octet", Type: TypeOctet}
	domainShort     = &Domain{Name: "short", Type: TypeShort}
	domainLong      = &Domain{Name: "long", Type: TypeLong}
	domainLongLong  = &Domain{Name: "longlong", Type: TypeLongLong}
	domainShortStr  = &Domain{Name: "shortstr", Type: TypeShortString}
	domainLongStr   = &Domain{Name: "longstr", Type: TypeLongString}
	domainTimestamp = &Domain{Name: "timestamp", Type: TypeTimestamp}
	domainTable     = &Domain{Name: "table", Type: TypeFieldTable}

	domainClassID        = &Domain{Name: "class-id", Type: TypeShort}
	domainConsumerTag    = &Domain{Name: "consumer-tag", Type: TypeShortString}
	domainDeliveryTag    = &Domain{Name: "delivery-tag", Type: TypeLongLong}
	domainExchangeName   = &Domain{Name: "exchange-name", Type: TypeShortString, MaxLength: maxNameLength, Pattern: namePattern}
	domainMessageCount   = &Domain{Name: "message-count", Type: TypeLong}
	domainMethodID       = &Domain{Name: "method-id", Type: TypeShort}
	domainNoAck          = &Domain{Name: "no-ack", Type: TypeBit}
	domainNoLocal        = &Domain{Name: "no-local", Type: TypeBit}
	domainNoWait         = &Domain{Name: "no-wait", Type: TypeBit}
	domainPath           = &Domain{Name: "path", Type: TypeShortString, MaxLength: 127, NotNull: true}
	domainPeerProperties = &Domain{Name: "peer-properties", Type: TypeFieldTable}
	domainQueueName      = &Domain{Name: "queue-name", Type: TypeShortString, MaxLength: maxNameLength, Pattern: namePattern}
	domainRedelivered    = &Domain{Name: "redelivered", Type: TypeBit}
	domainReplyCode      = &Domain{Name: "reply-code", Type: TypeShort}
	domainReplyText      = &Domain{Name: "reply-text", Type: TypeShortString}
)

var domains = map[string]*Domain{}

func init() {
	for _, d := range []*Domain{
		domainBit, domainOctet, domainShort, domainLong, domainLongLong,
		domainShortStr, domainLongStr, domainTimestamp, domainTable,
		domainClassID, domainConsumerTag, domainDeliveryTag, domainExchangeName,
		domainMessageCount, domainMethodID, domainNoAck, domainNoLocal,
		domainNoWait, domainPath, domainPeerProperties, domainQueueName,
		domainRedelivered, domainReplyCode, domainReplyText,
	} {
		domains[d.Name] = d
	}
}

// LookupDomain returns the domain with the given name.
func LookupDomain(name string) (*Domain, bool) {
	d, ok := domains[name]
	return d, ok
}

// check returns a description of the first rule v breaks, or "".
func (d *Domain) check(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	switch {
	case d.NotNull && s == "":
		return "must not be empty"
	case d.MaxLength > 0 && len(s) > d.MaxLength:
		return "max length exceeded"
	case d.Pattern != nil && !d.Pattern.MatchString(s):
		return "does not match " + d.Pattern.String()
	case d.Type == TypeShortString && !utf8.ValidString(s):
		return "not valid UTF-8"
	}
	return ""
}

// Validate checks every argument of m against its domain and reserved
// arguments against their fixed values. All violations are returned
// together as a *multierror.Error of *ValidationError.
func Validate(m Method) error {
	name := methodName(m)
	var result *multierror.Error
	for _, a := range m.arguments() {
		v := load(a.value)
		msg := a.domain.check(v)
		if msg == "" && a.reserved && !isZero(v) {
			msg = "reserved, must be zero"
		}
		if msg != "" {
			result = multierror.Append(result, &ValidationError{Command: name, Field: a.name, Msg: msg})
		}
	}
	return result.ErrorOrNil()
}

func isZero(v interface{}) bool {
	switch v := v.(type) {
	case string:
		return v == ""
	case bool:
		return !v
	case uint16:
		return v == 0
	}
	return false
}
