package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	amqp "github.com/gmr/pamqp-sub000"
)

func TestParseTable(t *testing.T) {
	table, err := parseTable([]string{"n=300", "ok=true", "name=orders", "expr=a=b"})
	require.NoError(t, err)
	require.Equal(t, amqp.Table{
		"n":    300,
		"ok":   true,
		"name": "orders",
		"expr": "a=b",
	}, table)

	_, err = parseTable([]string{"novalue"})
	require.Error(t, err)
}

func TestDumpFrames(t *testing.T) {
	var stream []byte
	for _, f := range []struct {
		channel uint16
		frame   interface{}
	}{
		{0, amqp.NewProtocolHeader()},
		{1, &amqp.BasicPublish{Exchange: "ex", RoutingKey: "rk"}},
		{1, amqp.NewContentHeader(2048, &amqp.BasicProperties{ContentType: "text/plain"})},
		{1, &amqp.ContentBody{Body: make([]byte, 2048)}},
		{0, &amqp.Heartbeat{}},
	} {
		b, err := amqp.Marshal(f.channel, f.frame)
		require.NoError(t, err)
		stream = append(stream, b...)
	}

	var out bytes.Buffer
	require.NoError(t, dumpFrames(&out, stream, false))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	require.Contains(t, lines[0], "AMQP 0-9-1")
	require.Contains(t, lines[1], "Basic.Publish")
	require.Contains(t, lines[2], "body-size=2.0 kB")
	require.Contains(t, lines[3], "body")
	require.Contains(t, lines[4], "heartbeat")
	require.True(t, strings.HasPrefix(lines[5], "5 frames"), lines[5])

	out.Reset()
	require.NoError(t, dumpFrames(&out, stream, true))
	require.Contains(t, out.String(), "RoutingKey")

	// truncated input reports the framing error
	err := dumpFrames(&out, stream[:len(stream)-3], false)
	require.Error(t, err)
}

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.hex")
	require.NoError(t, os.WriteFile(path, []byte("08 0000 00000000\nce\n"), 0o600))

	data, err := readInput(path, false)
	require.NoError(t, err)
	require.Equal(t, []byte{8, 0, 0, 0, 0, 0, 0, 0xce}, data)

	data, err = readInput(path, true)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("08 ")))

	require.NoError(t, os.WriteFile(path, []byte("zz"), 0o600))
	_, err = readInput(path, false)
	require.Error(t, err)
}

func TestCommands(t *testing.T) {
	var out bytes.Buffer
	app.Writer = &out
	defer func() { app.Writer = os.Stdout }()

	require.NoError(t, app.Run([]string{"amqpdump", "encode", "frame", "--channel", "1", "Basic.Ack"}))
	require.Equal(t, "0100010000000d003c0050000000000000000000ce", strings.TrimSpace(out.String()))

	out.Reset()
	require.NoError(t, app.Run([]string{"amqpdump", "encode", "frame", "heartbeat"}))
	require.Equal(t, hex.EncodeToString([]byte{8, 0, 0, 0, 0, 0, 0, 0xce}), strings.TrimSpace(out.String()))

	out.Reset()
	require.NoError(t, app.Run([]string{"amqpdump", "encode", "table", "--legacy-integers", "n=7"}))
	require.Equal(t, "00000005016e730007", strings.TrimSpace(out.String()))

	out.Reset()
	require.NoError(t, app.Run([]string{"amqpdump", "methods"}))
	require.Contains(t, out.String(), "Basic.RecoverAsync (deprecated)")
	require.Contains(t, out.String(), "Basic.GetOk,Basic.GetEmpty")

	require.Error(t, app.Run([]string{"amqpdump", "encode", "frame", "Basic.Teleport"}))
}
