// Command hufftext compresses or decompresses a file with package hufftext.
//
// Usage:
//
//     hufftext [-c | -d] [-p] [-o OUTPUT] [INPUT]
//
// With no INPUT, data is read from stdin.  With no -o, the output is written
// next to INPUT as NAME_encoded.txt or NAME_decoded.txt, or to stdout when
// reading from stdin.
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chronos-tachyon/hufftext"
)

type Mode uint8

const (
	CompressMode Mode = iota
	DecompressMode
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hufftext: ")

	var (
		compress    bool
		decompress  bool
		doPrintTree bool
		foutName    string
	)
	flag.BoolVar(&compress, "c", false, "compress INPUT (the default)")
	flag.BoolVar(&decompress, "d", false, "decompress INPUT")
	flag.BoolVar(&doPrintTree, "p", false, "print the code tree to stderr")
	flag.StringVar(&foutName, "o", "", "write output to `FILE`")
	flag.Parse()

	mode, err := selectMode(compress, decompress)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		flag.Usage()
		os.Exit(2)
	}

	var finName string
	switch flag.NArg() {
	case 0:
	case 1:
		finName = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if foutName == "" && finName != "" {
		foutName = outputName(finName, mode)
	}

	if err := run(mode, finName, foutName, doPrintTree); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

// selectMode maps the -c and -d flags to a Mode.  Giving both is an error.
func selectMode(compress, decompress bool) (Mode, error) {
	switch {
	case compress && decompress:
		return CompressMode, errors.New("-c and -d are mutually exclusive")
	case decompress:
		return DecompressMode, nil
	default:
		return CompressMode, nil
	}
}

func run(mode Mode, finName, foutName string, doPrintTree bool) error {
	input, err := readInput(finName)
	if err != nil {
		return err
	}

	var output []byte
	var tree hufftext.Node
	switch mode {
	case CompressMode:
		result, err := hufftext.Encode(input)
		if err != nil {
			return fmt.Errorf("encoding failed: %w", err)
		}
		output, tree = result.Artifact, result.Tree
		log.Printf("[INFO] compression complete. %s", result.Report())

	case DecompressMode:
		decoded, err := hufftext.Decode(input)
		if err != nil {
			return fmt.Errorf("decoding failed: %w", err)
		}
		output, tree = decoded.Data, decoded.Tree
		log.Printf("[INFO] decompression complete. %d bytes restored", len(output))
	}

	if doPrintTree {
		if _, err := hufftext.DumpTree(os.Stderr, tree); err != nil {
			return err
		}
	}

	if err := writeOutput(foutName, output); err != nil {
		return err
	}
	if foutName != "" {
		log.Printf("[INFO] wrote %s", foutName)
	}
	return nil
}

func readInput(name string) ([]byte, error) {
	if name == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func writeOutput(name string, data []byte) error {
	if name == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o666)
}

// outputName derives "dir/NAME_encoded.txt" or "dir/NAME_decoded.txt" from
// the input path, where NAME is the base name up to its first dot.
func outputName(finName string, mode Mode) string {
	dir, base := filepath.Split(finName)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	suffix := "_encoded.txt"
	if mode == DecompressMode {
		suffix = "_decoded.txt"
	}
	return filepath.Join(dir, base+suffix)
}
