// amqpdump decodes captured AMQP 0-9-1 byte streams and lists the method
// catalogue.
package main

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-kit/log/term"
	"github.com/urfave/cli/v2"

	amqp "github.com/gmr/pamqp-sub000"
)

// Version and Build are set by ldflags
var (
	Version = "snapshot"
	Build   = ""
)

var log kitlog.Logger

func init() {
	log = term.NewColorLogger(os.Stderr, kitlog.NewLogfmtLogger, colorFn)
	amqp.SetLogger(log)
}

var app = cli.App{
	Name:    "amqpdump",
	Usage:   "decode AMQP 0-9-1 frames",
	Version: "0.1.0",

	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "debug", Usage: "log debug events"},
	},

	Before: func(ctx *cli.Context) error {
		lvl := level.AllowInfo()
		if ctx.Bool("debug") {
			lvl = level.AllowDebug()
		}
		log = level.NewFilter(log, lvl)
		amqp.SetLogger(log)
		return nil
	},
	Commands: []*cli.Command{
		decodeCmd,
		encodeCmd,
		methodsCmd,
	},
}

// Color by error type
func colorFn(keyvals ...interface{}) term.FgBgColor {
	for i := 1; i < len(keyvals); i += 2 {
		if _, ok := keyvals[i].(error); ok {
			return term.FgBgColor{Fg: term.Red}
		}
	}
	return term.FgBgColor{}
}

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("%s (rev: %s, built: %s)\n", c.App.Version, Version, Build)
	}

	if err := app.Run(os.Args); err != nil {
		level.Error(log).Log("run-failure", err)
		os.Exit(1)
	}
}
