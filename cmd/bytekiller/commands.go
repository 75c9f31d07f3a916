package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/google/renameio/v2"

	"github.com/woozymasta/bytekiller"
	"github.com/woozymasta/bytekiller/internal/psxexe"
)

// randomInput is the input name that selects generated test data.
const randomInput = "random"

// fileArgs are the two positional arguments shared by every command.
type fileArgs struct {
	input  *string
	output *string
}

func bindFileArgs(cmd *kingpin.CmdClause) fileArgs {
	return fileArgs{
		input:  cmd.Arg("input", "Input file, or 'random' for generated test data.").Required().String(),
		output: cmd.Arg("output", "Output file; an existing file is replaced.").Required().String(),
	}
}

// compressCommand crunches a file, optionally moving a PSX-EXE header into a mini header.
type compressCommand struct {
	files     fileArgs
	scanWidth *int
	psx       bool
}

func addCompressCommand(app *kingpin.Application) {
	cmd := &compressCommand{}
	clause := app.Command("compress", "Crunch a file (legacy: -c, --c, /c).")
	cmd.files = bindFileArgs(clause)
	cmd.scanWidth = scanWidthFlag(clause)
	clause.Action(cmd.run)
}

func addPackCommand(app *kingpin.Application) {
	cmd := &compressCommand{psx: true}
	clause := app.Command("pack", "Crunch a PSX-EXE, replacing its 2048-byte header with a 16-byte mini header (legacy: -p, --p, /p).")
	cmd.files = bindFileArgs(clause)
	cmd.scanWidth = scanWidthFlag(clause)
	clause.Action(cmd.run)
}

func scanWidthFlag(clause *kingpin.CmdClause) *int {
	return clause.Flag("scan-width", "Match finder look-ahead in bytes (8..4096).").
		Default(fmt.Sprint(bytekiller.DefaultScanWidth)).Int()
}

func (cmd *compressCommand) run(_ *kingpin.ParseContext) error {
	data, err := readInput(*cmd.files.input)
	if err != nil {
		return err
	}

	var exe psxexe.Header
	if cmd.psx && *cmd.files.input != randomInput {
		exe, data, err = psxexe.Strip(data)
		if err != nil {
			return err
		}
		level.Info(logger).Log("msg", "read psx-exe header",
			"jump_addr", fmt.Sprintf("%08X", exe.JumpAddr),
			"file_size", fmt.Sprintf("%08X", exe.FileSize),
			"write_addr", fmt.Sprintf("%08X", exe.WriteAddr),
			"stack_addr", fmt.Sprintf("%08X", exe.StackAddr))
	}

	enc, err := bytekiller.Compress(data, &bytekiller.CompressOptions{ScanWidth: *cmd.scanWidth})
	if err != nil {
		return err
	}
	logSizes("crunched", len(data), len(enc))

	if cmd.psx {
		enc = exe.Prepend(enc)
	}

	return writeOutput(*cmd.files.output, enc)
}

// decompressCommand restores a crunched file.
type decompressCommand struct {
	files   fileArgs
	psx     *bool
	lenient *bool
}

func addDecompressCommand(app *kingpin.Application) {
	cmd := &decompressCommand{}
	clause := app.Command("decompress", "Uncrunch a file (legacy: -d, --d, /d).")
	cmd.files = bindFileArgs(clause)
	cmd.psx = clause.Flag("psx", "Input starts with the 16-byte mini header written by pack.").Bool()
	cmd.lenient = clause.Flag("lenient", "Do not fail on a checksum mismatch.").Bool()
	clause.Action(cmd.run)
}

func (cmd *decompressCommand) run(_ *kingpin.ParseContext) error {
	data, err := readInput(*cmd.files.input)
	if err != nil {
		return err
	}

	if *cmd.psx {
		var exe psxexe.Header
		exe, data, err = psxexe.ParseMini(data)
		if err != nil {
			return err
		}
		level.Info(logger).Log("msg", "skipped mini header",
			"jump_addr", fmt.Sprintf("%08X", exe.JumpAddr),
			"write_addr", fmt.Sprintf("%08X", exe.WriteAddr))
	}

	opts := bytekiller.DefaultDecompressOptions()
	if *cmd.lenient {
		opts = bytekiller.LenientDecompressOptions()
	}

	dec, err := bytekiller.Decompress(data, opts)
	if err != nil {
		return fmt.Errorf("cannot uncrunch %s: %w", *cmd.files.input, err)
	}
	logSizes("uncrunched", len(dec), len(data))

	return writeOutput(*cmd.files.output, dec)
}

// verifyCommand crunches and uncrunches in memory, compares, and writes the decoded bytes.
type verifyCommand struct {
	files fileArgs
}

func addVerifyCommand(app *kingpin.Application) {
	cmd := &verifyCommand{}
	clause := app.Command("verify", "Crunch, uncrunch and compare; writes the uncrunched bytes (legacy: -v).")
	cmd.files = bindFileArgs(clause)
	clause.Action(cmd.run)
}

func (cmd *verifyCommand) run(_ *kingpin.ParseContext) error {
	data, err := readInput(*cmd.files.input)
	if err != nil {
		return err
	}

	enc, err := bytekiller.Verify(data, nil)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}
	logSizes("files match", len(data), len(enc))

	// Verify proved the decoded bytes equal the input.
	return writeOutput(*cmd.files.output, data)
}

func readInput(name string) ([]byte, error) {
	if name == randomInput {
		data := randomData(newRand(), randomSize)
		level.Info(logger).Log("msg", "generated random input", "size", humanize.Bytes(uint64(len(data))))
		return data, nil
	}

	level.Info(logger).Log("msg", "reading input", "file", name)
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file: %w", err)
	}

	return data, nil
}

func writeOutput(name string, data []byte) error {
	if err := renameio.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	level.Info(logger).Log("msg", "done", "file", name, "size", humanize.Bytes(uint64(len(data))))

	return nil
}

func logSizes(msg string, raw, crunched int) {
	ratio := 0.0
	if raw > 0 {
		ratio = float64(crunched) / float64(raw) * 100
	}
	level.Info(logger).Log("msg", msg,
		"uncrunched", humanize.Bytes(uint64(raw)),
		"crunched", humanize.Bytes(uint64(crunched)),
		"ratio", fmt.Sprintf("%.1f%%", ratio))
}
