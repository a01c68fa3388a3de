package amqp

import (
	"testing"

	"github.com/gmr/pamqp-sub000/internal/buffer"
	"github.com/stretchr/testify/require"
)

// bitArgs builds an argument list of len(bits) bit fields, optionally
// followed by a short.
func bitArgs(bits []bool, after *uint16) []argument {
	args := make([]argument, 0, len(bits)+1)
	for i := range bits {
		args = append(args, arg("bit", domainBit, &bits[i]))
	}
	if after != nil {
		args = append(args, arg("after", domainShort, after))
	}
	return args
}

func TestBitPacking(t *testing.T) {
	tests := []struct {
		label string
		bits  []bool
		after *uint16
		wire  []byte
	}{
		{"one", []bool{true}, nil, []byte{0x01}},
		{"lsb first", []bool{true, false, true}, nil, []byte{0x05}},
		{"eight share an octet", []bool{true, true, true, true, true, true, true, true}, nil, []byte{0xff}},
		{"ninth starts a new octet", []bool{true, true, true, true, true, true, true, true, true}, nil, []byte{0xff, 0x01}},
		{"last of nine", []bool{false, false, false, false, false, false, false, false, true}, nil, []byte{0x00, 0x01}},
		{"non-bit flushes", []bool{false, true}, uint16Ptr(0x0304), []byte{0x02, 0x03, 0x04}},
		{"all clear", []bool{false, false}, uint16Ptr(0), []byte{0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			var buf buffer.Buffer
			err := defaultCodec.writeArguments(&buf, bitArgs(tt.bits, tt.after))
			require.NoError(t, err)
			require.Equal(t, tt.wire, buf.Bytes())

			got := make([]bool, len(tt.bits))
			var after uint16
			afterPtr := (*uint16)(nil)
			if tt.after != nil {
				afterPtr = &after
			}
			r := buffer.New(buf.Bytes())
			err = readArguments(r, bitArgs(got, afterPtr))
			require.NoError(t, err)
			require.Equal(t, tt.bits, got)
			require.Zero(t, r.Len())
			if tt.after != nil {
				require.Equal(t, *tt.after, after)
			}
		})
	}
}

func TestBitGroupsSeparated(t *testing.T) {
	// bits, short, bits: each group gets its own octet
	var (
		a, b, c bool = true, false, true
		n       uint16
	)
	args := []argument{
		arg("a", domainBit, &a),
		arg("b", domainBit, &b),
		arg("n", domainShort, &n),
		arg("c", domainBit, &c),
	}
	var buf buffer.Buffer
	require.NoError(t, defaultCodec.writeArguments(&buf, args))
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x01}, buf.Bytes())
}

func TestExchangeDeclareBits(t *testing.T) {
	m := &ExchangeDeclare{
		Exchange:   "ex",
		Type:       "topic",
		Passive:    true,
		AutoDelete: true,
		NoWait:     true,
	}
	var buf buffer.Buffer
	require.NoError(t, defaultCodec.writeArguments(&buf, m.arguments()))
	require.Equal(t, []byte{
		0x00, 0x00, // ticket
		0x02, 'e', 'x',
		0x05, 't', 'o', 'p', 'i', 'c',
		0x15,                   // passive, auto-delete, no-wait
		0x00, 0x00, 0x00, 0x00, // arguments
	}, buf.Bytes())

	got := new(ExchangeDeclare)
	require.NoError(t, readArguments(buffer.New(buf.Bytes()), got.arguments()))
	require.Equal(t, m.Exchange, got.Exchange)
	require.True(t, got.Passive)
	require.False(t, got.Durable)
	require.True(t, got.AutoDelete)
	require.False(t, got.Internal)
	require.True(t, got.NoWait)
}

func TestReadArgumentsShort(t *testing.T) {
	m := new(BasicNack)
	// delivery tag present, bit octet missing
	err := readArguments(buffer.New([]byte{0, 0, 0, 0, 0, 0, 0, 1}), m.arguments())
	require.Error(t, err)
	require.Contains(t, err.Error(), "argument multiple")
}

func uint16Ptr(n uint16) *uint16 {
	return &n
}
