package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	amqp "github.com/gmr/pamqp-sub000"
)

var decodeCmd = &cli.Command{
	Name:      "decode",
	Usage:     "decode frames from a hex dump (or raw bytes with --raw)",
	ArgsUsage: "[file]",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "raw", Usage: "input is raw bytes instead of hex"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "dump every frame"},
	},
	Action: func(ctx *cli.Context) error {
		data, err := readInput(ctx.Args().First(), ctx.Bool("raw"))
		if err != nil {
			return err
		}
		return dumpFrames(ctx.App.Writer, data, ctx.Bool("verbose"))
	},
}

var encodeCmd = &cli.Command{
	Name:  "encode",
	Usage: "encode a frame or a field table as hex",
	Subcommands: []*cli.Command{
		{
			Name:      "frame",
			Usage:     "encode a catalogue method with its defaults, a heartbeat or a protocol header",
			ArgsUsage: "<Class.Method|heartbeat|protocol-header>",
			Flags: []cli.Flag{
				&cli.UintFlag{Name: "channel", Value: 1, Usage: "channel number"},
			},
			Action: func(ctx *cli.Context) error {
				var frame interface{}
				switch name := ctx.Args().First(); name {
				case "":
					return errors.New("encode.frame: need a frame name")
				case "heartbeat":
					frame = &amqp.Heartbeat{}
				case "protocol-header":
					frame = amqp.NewProtocolHeader()
				default:
					m, err := amqp.NewMethod(name)
					if err != nil {
						return errors.Wrap(err, "encode.frame")
					}
					frame = m
				}
				b, err := amqp.Marshal(uint16(ctx.Uint("channel")), frame)
				if err != nil {
					return errors.Wrap(err, "encode.frame")
				}
				fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(b))
				return nil
			},
		},
		{
			Name:      "table",
			Usage:     "encode key=value pairs as a field table",
			ArgsUsage: "<key=value>...",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "legacy-integers", Usage: "only emit signed integers (RabbitMQ < 3.6)"},
			},
			Action: func(ctx *cli.Context) error {
				codec, err := amqp.NewCodec(
					amqp.CodecLegacyIntegers(ctx.Bool("legacy-integers")),
					amqp.CodecLogger(log),
				)
				if err != nil {
					return err
				}
				table, err := parseTable(ctx.Args().Slice())
				if err != nil {
					return err
				}
				b, err := codec.EncodeTable(table)
				if err != nil {
					return errors.Wrap(err, "encode.table")
				}
				fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(b))
				return nil
			},
		},
	},
}

var methodsCmd = &cli.Command{
	Name:  "methods",
	Usage: "list the method catalogue",
	Action: func(ctx *cli.Context) error {
		w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tNAME\tSYNC\tCONTENT\tRESPONSES")
		for _, s := range amqp.Methods() {
			name := s.Name
			if s.Deprecated {
				name += " (deprecated)"
			}
			fmt.Fprintf(w, "%#08x\t%s\t%t\t%t\t%s\n",
				s.Index(), name, s.Synchronous, s.Content, strings.Join(s.Responses, ","))
		}
		return w.Flush()
	},
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(path string, raw bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode: reading input")
	}
	if raw {
		return data, nil
	}
	data, err = hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, errors.Wrap(err, "decode: input is not hex")
	}
	return data, nil
}

func dumpFrames(w io.Writer, data []byte, verbose bool) error {
	r := amqp.NewFrameReader(data)
	count := 0
	for {
		offset := r.Offset()
		channel, frame, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		count++
		fmt.Fprintf(w, "%6d  ch=%-5d %-14s %s\n", offset, channel, frameKind(frame), describe(frame))
		if verbose {
			fmt.Fprint(w, spew.Sdump(frame))
		}
		level.Debug(log).Log("event", "frame decoded", "offset", offset, "size", r.Offset()-offset)
	}
	fmt.Fprintf(w, "%d frames, %s\n", count, humanize.Bytes(uint64(len(data))))
	return nil
}

func frameKind(frame interface{}) string {
	switch frame.(type) {
	case *amqp.ProtocolHeader:
		return "protocol"
	case amqp.Method:
		return "method"
	case *amqp.ContentHeader:
		return "header"
	case *amqp.ContentBody:
		return "body"
	case *amqp.Heartbeat:
		return "heartbeat"
	}
	return "unknown"
}

func describe(frame interface{}) string {
	switch fr := frame.(type) {
	case *amqp.ProtocolHeader:
		return fr.String()
	case amqp.Method:
		return fmt.Sprintf("%s %+v", amqp.SpecOf(fr).Name, fr)
	case *amqp.ContentHeader:
		return fmt.Sprintf("body-size=%s flags=%#04x", humanize.Bytes(fr.BodySize), fr.Properties.Flags())
	case *amqp.ContentBody:
		return humanize.Bytes(uint64(len(fr.Body)))
	}
	return ""
}

// parseTable turns key=value pairs into a table. Values that parse as
// integers or booleans keep that type, everything else is a string.
func parseTable(pairs []string) (amqp.Table, error) {
	t := make(amqp.Table, len(pairs))
	for _, p := range pairs {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			return nil, errors.Errorf("encode.table: %q is not key=value", p)
		}
		if n, err := strconv.ParseInt(kv[1], 10, 64); err == nil {
			t[kv[0]] = int(n)
		} else if b, err := strconv.ParseBool(kv[1]); err == nil {
			t[kv[0]] = b
		} else {
			t[kv[0]] = kv[1]
		}
	}
	return t, nil
}
