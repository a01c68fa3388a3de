package amqp

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-kit/log"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueLookups(t *testing.T) {
	specs := Methods()
	require.Len(t, specs, len(catalogue))

	seen := make(map[uint32]bool)
	var last uint32
	for i, s := range specs {
		require.False(t, seen[s.Index()], "duplicate index for %s", s.Name)
		seen[s.Index()] = true
		if i > 0 {
			require.Greater(t, s.Index(), last, "%s out of order", s.Name)
		}
		last = s.Index()

		byIndex, ok := LookupMethod(s.Index())
		require.True(t, ok)
		require.Same(t, s, byIndex)

		byName, ok := LookupMethodName(s.Name)
		require.True(t, ok)
		require.Same(t, s, byName)

		m := s.New()
		classID, methodID := m.ID()
		require.Equal(t, s.ClassID, classID, s.Name)
		require.Equal(t, s.MethodID, methodID, s.Name)
		require.Same(t, s, SpecOf(m))
	}

	_, ok := LookupMethod(methodIndex(ClassBasic, 999))
	require.False(t, ok)
	_, ok = LookupMethodName("Basic.Teleport")
	require.False(t, ok)
}

func TestCatalogueIndex(t *testing.T) {
	s, ok := LookupMethodName("Basic.Publish")
	require.True(t, ok)
	require.Equal(t, uint32(0x003c0028), s.Index())
	require.True(t, s.Content)
	require.False(t, s.Synchronous)

	s, ok = LookupMethod(0x000a000a)
	require.True(t, ok)
	require.Equal(t, "Connection.Start", s.Name)
}

func TestCatalogueResponses(t *testing.T) {
	for _, s := range Methods() {
		if !s.Synchronous {
			assert.Empty(t, s.Responses, s.Name)
			continue
		}
		require.NotEmpty(t, s.Responses, s.Name)
		for _, r := range s.Responses {
			resp, ok := LookupMethodName(r)
			require.True(t, ok, "%s responds with unknown %s", s.Name, r)
			assert.Equal(t, s.ClassID, resp.ClassID, "%s -> %s", s.Name, r)
		}
	}

	s, _ := LookupMethodName("Basic.Get")
	require.Equal(t, []string{"Basic.GetOk", "Basic.GetEmpty"}, s.Responses)
}

func TestCatalogueDefaults(t *testing.T) {
	tests := []struct {
		name string
		want Method
	}{
		{"Connection.Start", &ConnectionStart{VersionMajor: 0, VersionMinor: 9, Mechanisms: "PLAIN", Locales: "en_US"}},
		{"Connection.StartOk", &ConnectionStartOk{Mechanism: "PLAIN", Locale: "en_US"}},
		{"Connection.Open", &ConnectionOpen{VirtualHost: "/"}},
		{"Channel.Flow", &ChannelFlow{Active: true}},
		{"Exchange.Declare", &ExchangeDeclare{Type: "direct"}},
		{"Basic.Reject", &BasicReject{Requeue: true}},
		{"Basic.Nack", &BasicNack{Requeue: true}},
		{"Basic.Ack", &BasicAck{}},
	}

	for _, tt := range tests {
		m, err := NewMethod(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m, tt.name)
	}

	_, err := NewMethod("Queue.Teleport")
	require.Error(t, err)
}

func TestDeprecatedMethodWarning(t *testing.T) {
	var (
		mu   sync.Mutex
		logs [][]interface{}
	)
	SetLogger(log.LoggerFunc(func(kv ...interface{}) error {
		mu.Lock()
		defer mu.Unlock()
		logs = append(logs, kv)
		return nil
	}))
	defer SetLogger(nil)
	resetDeprecationWarnings()
	defer resetDeprecationWarnings()

	_, err := NewMethod("Basic.Recover")
	require.NoError(t, err)
	require.Empty(t, logs)

	_, err = NewMethod("Basic.RecoverAsync")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Contains(t, logs[0], "Basic.RecoverAsync")

	// later constructions, encodes and decodes stay quiet
	_, err = NewMethod("Basic.RecoverAsync")
	require.NoError(t, err)
	b, err := Marshal(1, &BasicRecoverAsync{Requeue: true})
	require.NoError(t, err)
	_, _, _, err = Unmarshal(b)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	// a method built as a literal warns when it is first encoded
	resetDeprecationWarnings()
	_, err = Marshal(1, &BasicRecoverAsync{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Contains(t, logs[1], "Basic.RecoverAsync")
	_, err = Marshal(1, &BasicRecoverAsync{})
	require.NoError(t, err)
	require.Len(t, logs, 2)
}

func resetDeprecationWarnings() {
	deprecationWarned.Range(func(k, _ interface{}) bool {
		deprecationWarned.Delete(k)
		return true
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		label  string
		method Method
		fields []string
	}{
		{"valid", &QueueDeclare{Queue: "orders.v1:eu-west_1"}, nil},
		{"server named queue", &QueueDeclare{}, nil},
		{"queue name too long", &QueueDeclare{Queue: strings.Repeat("q", 129)}, []string{"queue"}},
		{"queue name at limit", &QueueDeclare{Queue: strings.Repeat("q", 128)}, nil},
		{"queue name pattern", &QueueDeclare{Queue: "no spaces"}, []string{"queue"}},
		{"exchange name pattern", &ExchangeDelete{Exchange: "a/b"}, []string{"exchange"}},
		{"reserved internal", &ExchangeDeclare{Exchange: "ex", Type: "topic", Internal: true}, []string{"internal"}},
		{"reserved ticket", &BasicGet{Ticket: 1}, []string{"ticket"}},
		{"empty path", &ConnectionOpen{}, []string{"virtual-host"}},
		{"path too long", &ConnectionOpen{VirtualHost: strings.Repeat("v", 128)}, []string{"virtual-host"}},
		{"invalid utf-8", &BasicConsumeOk{ConsumerTag: "\xff"}, []string{"consumer-tag"}},
		{
			"aggregated",
			&QueueBind{Ticket: 7, Queue: "bad queue", Exchange: "bad exchange"},
			[]string{"ticket", "queue", "exchange"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			err := Validate(tt.method)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}

			var merr *multierror.Error
			require.True(t, errors.As(err, &merr), "got %v", err)
			require.Len(t, merr.Errors, len(tt.fields))
			for i, e := range merr.Errors {
				var vErr *ValidationError
				require.True(t, errors.As(e, &vErr))
				require.Equal(t, SpecOf(tt.method).Name, vErr.Command)
				require.Equal(t, tt.fields[i], vErr.Field)
			}

			// invalid methods never reach the wire
			b, err := Marshal(1, tt.method)
			require.Error(t, err)
			require.Nil(t, b)
		})
	}
}

func TestLookupDomain(t *testing.T) {
	d, ok := LookupDomain("queue-name")
	require.True(t, ok)
	require.Equal(t, TypeShortString, d.Type)
	require.Equal(t, 128, d.MaxLength)
	require.NotNil(t, d.Pattern)

	d, ok = LookupDomain("path")
	require.True(t, ok)
	require.True(t, d.NotNull)
	require.Equal(t, 127, d.MaxLength)

	_, ok = LookupDomain("no-such-domain")
	require.False(t, ok)
}
