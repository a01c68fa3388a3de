package amqp

import (
	"github.com/go-kit/log"
)

// Codec holds the encoder settings. A Codec is immutable once built and
// safe for concurrent use; decoding behaves the same for every Codec.
type Codec struct {
	legacyIntegers bool
	logger         log.Logger // nil means the package logger
}

// CodecOption is a function for configuring a Codec.
type CodecOption func(*Codec) error

// CodecLegacyIntegers restricts field table integers to the signed types
// understood by RabbitMQ releases older than 3.6.
//
// Default: false.
func CodecLegacyIntegers(enable bool) CodecOption {
	return func(c *Codec) error {
		c.legacyIntegers = enable
		return nil
	}
}

// CodecLogger sets the logger receiving diagnostics from this codec.
//
// Default: the logger installed with SetLogger.
func CodecLogger(l log.Logger) CodecOption {
	return func(c *Codec) error {
		if l == nil {
			return errorNew("amqp: nil logger")
		}
		c.logger = l
		return nil
	}
}

// NewCodec returns a Codec configured by opts.
func NewCodec(opts ...CodecOption) (*Codec, error) {
	c := new(Codec)
	for _, opt := range opts {
		err := opt(c)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LegacyIntegers reports whether c emits only signed table integers.
func (c *Codec) LegacyIntegers() bool {
	return c.legacyIntegers
}

func (c *Codec) log() log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logger()
}

var defaultCodec = &Codec{}
