// Command huff compresses and decompresses text files with a Huffman code.
//
// Usage:
//
//	huff enc [options] <input>   text → artifact (use "-" for stdin)
//	huff dec [options] <input>   artifact → text (use "-" for stdin, -o - for stdout)
//	huff codes <input>           print the frequency and code tables of a text
//
// The default log level comes from the HUFF_LOG_LEVEL environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	huffman "github.com/chronos-tachyon/texthuffman"
	"github.com/chronos-tachyon/texthuffman/internal/log"
)

var defaultLogLevel = getEnv("HUFF_LOG_LEVEL", "info")

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	ctx := context.Background()
	log.SetLevel(defaultLogLevel)
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf(ctx, "huff: %v", err)
	}
}

// run dispatches to a subcommand.  stdin and stdout stand in for the "-"
// input and output paths.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		printUsage(stdout)
		return errors.New("missing command")
	}

	switch args[0] {
	case "enc":
		return runEnc(ctx, args[1:], stdin, stdout)
	case "dec":
		return runDec(ctx, args[1:], stdin, stdout)
	case "codes":
		return runCodes(ctx, args[1:], stdin, stdout)
	case "-h", "-help", "--help", "help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  huff enc [options] <input>   Compress a text file
  huff dec [options] <input>   Decompress an artifact
  huff codes <input>           Print the frequency and code tables of a text

Use "-" as input to read from stdin, "-o -" to write to stdout.

Run "huff <command> -h" for command-specific options.
`)
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	logLevel *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		logLevel: fs.String("log-level", defaultLogLevel, "minimum log level: debug/info/warning/error"),
	}
}

func (c commonFlags) apply() {
	log.SetLevel(*c.logLevel)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o666)
}

func formatFor(packed bool) huffman.Format {
	if packed {
		return huffman.FormatPacked
	}
	return huffman.FormatText
}

// --- enc ---

func runEnc(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("enc", flag.ContinueOnError)
	common := addCommonFlags(fs)
	packed := fs.Bool("packed", false, "pack eight bits per payload byte")
	output := fs.String("o", "", `output path (default: <input>.huff, "-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	common.apply()
	if fs.NArg() < 1 {
		return fmt.Errorf("enc: missing input file\nUsage: huff enc [options] <input>")
	}
	inputPath := fs.Arg(0)

	outputPath := *output
	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = inputPath + ".huff"
		}
	}

	ctx = log.NewContextWithFile(ctx, inputPath)
	f := formatFor(*packed)
	if inputPath != "-" && outputPath != "-" {
		if err := huffman.EncodeFile(inputPath, outputPath, f); err != nil {
			return err
		}
		logSizes(ctx, "encoded", inputPath, outputPath)
		return nil
	}

	text, err := readInput(inputPath, stdin)
	if err != nil {
		return err
	}
	artifact, err := huffman.Compress(text, f)
	if err != nil {
		return err
	}
	if err := writeOutput(outputPath, artifact, stdout); err != nil {
		return err
	}
	log.Infof(ctx, "encoded %d bytes into %d bytes (%v)", len(text), len(artifact), f)
	return nil
}

// logSizes logs the sizes of a file-to-file conversion.
func logSizes(ctx context.Context, verb, inputPath, outputPath string) {
	in, err := os.Stat(inputPath)
	if err != nil {
		log.Errorf(ctx, "stat %s: %v", inputPath, err)
		return
	}
	out, err := os.Stat(outputPath)
	if err != nil {
		log.Errorf(ctx, "stat %s: %v", outputPath, err)
		return
	}
	log.Infof(ctx, "%s %d bytes into %d bytes", verb, in.Size(), out.Size())
	if verb == "encoded" && out.Size() > in.Size() {
		log.Warningf(ctx, "artifact is larger than its input")
	}
}

// --- dec ---

func runDec(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("dec", flag.ContinueOnError)
	common := addCommonFlags(fs)
	packed := fs.Bool("packed", false, "payload packs eight bits per byte")
	output := fs.String("o", "", `output path (default: <input> without .huff, "-" for stdout)`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	common.apply()
	if fs.NArg() < 1 {
		return fmt.Errorf("dec: missing input file\nUsage: huff dec [options] <input>")
	}
	inputPath := fs.Arg(0)

	outputPath := *output
	if outputPath == "" {
		switch {
		case inputPath == "-":
			outputPath = "-"
		case strings.HasSuffix(inputPath, ".huff"):
			outputPath = strings.TrimSuffix(inputPath, ".huff")
		default:
			outputPath = inputPath + ".out"
		}
	}

	ctx = log.NewContextWithFile(ctx, inputPath)
	f := formatFor(*packed)
	if inputPath != "-" && outputPath != "-" {
		if err := huffman.DecodeFile(inputPath, outputPath, f); err != nil {
			return err
		}
		logSizes(ctx, "decoded", inputPath, outputPath)
		return nil
	}

	artifact, err := readInput(inputPath, stdin)
	if err != nil {
		return err
	}
	text, err := huffman.Decompress(artifact, f)
	if err != nil {
		return err
	}
	if err := writeOutput(outputPath, text, stdout); err != nil {
		return err
	}
	log.Infof(ctx, "decoded %d bytes into %d bytes", len(artifact), len(text))
	return nil
}

// --- codes ---

func runCodes(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("codes", flag.ContinueOnError)
	common := addCommonFlags(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}
	common.apply()
	if fs.NArg() < 1 {
		return fmt.Errorf("codes: missing input file\nUsage: huff codes <input>")
	}
	inputPath := fs.Arg(0)

	ctx = log.NewContextWithFile(ctx, inputPath)
	r := stdin
	if inputPath != "-" {
		file, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	freqs, err := huffman.ReadFrequencies(r)
	if err != nil {
		return err
	}
	log.Debugf(ctx, "%d distinct bytes in %d", freqs.NumPresent(), freqs.Total())

	if _, err := freqs.Dump(stdout); err != nil {
		return err
	}
	codes := huffman.NewEncoder(freqs).Codes()
	_, err = codes.Dump(stdout)
	return err
}
