package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
)

var logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

// legacyModes maps the mode switches of the original tools to commands.
var legacyModes = map[string]string{
	"-c": "compress", "--c": "compress", "/c": "compress",
	"-d": "decompress", "--d": "decompress", "/d": "decompress",
	"-p": "pack", "--p": "pack", "/p": "pack",
	"-v": "verify",
}

func main() {
	app := kingpin.New("bytekiller", "ByteKiller cruncher, little-endian PSX variant.")
	app.HelpFlag.Short('h')

	addCompressCommand(app)
	addPackCommand(app)
	addDecompressCommand(app)
	addVerifyCommand(app)

	if _, err := app.Parse(normalizeArgs(os.Args[1:])); err != nil {
		exitWithErr(err)
	}
}

// normalizeArgs rewrites a legacy mode switch in first position into its command name.
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	if cmd, ok := legacyModes[strings.ToLower(args[0])]; ok {
		return append([]string{cmd}, args[1:]...)
	}

	return args
}

func exitWithErr(err error) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprintln(os.Stderr, "Error!")
	_, _ = fmt.Fprintf(os.Stderr, "    %v\n", err)
	os.Exit(1)
}
