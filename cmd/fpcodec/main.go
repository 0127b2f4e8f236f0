// Command fpcodec is a thin CLI wrapping the gorilla and entropy codecs,
// built only to support round-trip testing against an external process.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sivukhin/fp-compression/fpcodec"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("fpcodec: usage: fpcodec <compress|decompress|load|dump> [flags]")
	}

	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	inputPath := fs.String("i", "", "input path (stdin if absent)")
	outputPath := fs.String("o", "", "output path (stdout if absent)")
	algFlag := fs.String("a", "gorilla", "algorithm: gorilla|entropy")
	widthFlag := fs.Int("w", 32, "width: 32|64")
	typeFlag := fs.String("t", "float", "number type: int|float (load/dump only)")

	if err := fs.Parse(os.Args[2:]); err != nil {
		log.Fatalf("fpcodec: %v", err)
	}

	if err := run(command, *inputPath, *outputPath, *algFlag, *widthFlag, *typeFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(command, inputPath, outputPath, algFlag string, widthFlag int, typeFlag string) error {
	alg, err := fpcodec.ParseAlgorithm(algFlag)
	if err != nil {
		return err
	}
	width, err := fpcodec.ParseWidth(widthFlag)
	if err != nil {
		return err
	}
	numType, err := fpcodec.ParseNumberType(typeFlag)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}

	switch command {
	case "compress":
		err = runCompress(in, out, alg, width)
	case "decompress":
		err = runDecompress(in, out, alg, width)
	case "load":
		err = runLoad(in, out, width, numType)
	case "dump":
		err = runDump(in, out, width, numType)
	default:
		err = fmt.Errorf("fpcodec: unknown command %q (want compress, decompress, load, or dump)", command)
	}
	if err != nil {
		return err
	}

	return closeOut()
}
