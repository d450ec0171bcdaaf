package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/hufftap"
)

var log = logging.MustGetLogger("hufftap")

const progName = "hufftap"

const usageMessageRaw = `
Usage: hufftap [OPTIONS] FILE...

Compresses each FILE to FILE.htap, or decompresses archives back to their
original bytes.  Files are processed whole, in memory.

Options:
  -d	Decompress the given archives instead of compressing.
  -j	Write the encode result as JSON (packed payload base64-encoded)
	instead of the binary archive format.
  -o PATH
	Write output to PATH instead of deriving it from the input name.
	Requires exactly one input file.
  -t	Dump each archive's code table as JSON to standard output.
  -q	No progress bar.
  -debug
	Log code tables and padding details to standard error.
`

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-12s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func main() {
	startLogging()

	flags := flag.NewFlagSet(progName, flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usageMessage())
	}
	decompress := flags.Bool("d", false, "decompress instead of compressing")
	asJSON := flags.Bool("j", false, "write JSON instead of a binary archive")
	output := flags.String("o", "", "output path (single input only)")
	dumpTable := flags.Bool("t", false, "dump archive code tables")
	quiet := flags.Bool("q", false, "no progress bar")
	debug := flags.Bool("debug", false, "debug logging")
	_ = flags.Parse(os.Args[1:])

	if *debug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	files := flags.Args()
	if len(files) == 0 {
		flags.Usage()
		os.Exit(64)
	}
	if *output != "" && len(files) != 1 {
		fmt.Fprintf(os.Stderr, "%s: -o requires exactly one input file\n", progName)
		os.Exit(64)
	}

	contents := make([][]byte, len(files))
	var totalBytes int
	for i, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		contents[i] = data
		totalBytes += len(data)
	}

	var bar *pb.ProgressBar
	if !*quiet && !*dumpTable {
		bar = pb.New(totalBytes)
		bar.Set(pb.Bytes, true)
		bar.Start()
	}

	ok := true
	for i, name := range files {
		var err error
		switch {
		case *dumpTable:
			err = dumpArchiveTable(name, contents[i])
		case *decompress:
			err = decompressFile(name, contents[i], *output)
		default:
			err = compressFile(name, contents[i], *output, *asJSON)
		}
		if err != nil {
			log.Errorf("%s: %v", name, err)
			ok = false
		}
		if bar != nil {
			bar.Add(len(contents[i]))
		}
	}
	if bar != nil {
		bar.Finish()
	}
	if !ok {
		os.Exit(1)
	}
}

func compressFile(name string, data []byte, output string, asJSON bool) error {
	result, err := hufftap.Encode(data)
	if err != nil {
		return err
	}
	log.Debugf("code table for %s:\n%s", name, result.Table.DebugString())

	outName := output
	if outName == "" {
		outName = name + ".htap"
		if asJSON {
			outName += ".json"
		}
	}

	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	if asJSON {
		err = json.NewEncoder(out).Encode(result)
	} else {
		_, err = result.WriteTo(out)
	}
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	saved := color.New(color.FgGreen, color.Bold)
	if result.Stats.RatioPercent < 0 {
		saved = color.New(color.FgRed, color.Bold)
	}
	fmt.Printf("%s -> %s: %d bytes in, %d bytes packed, saved %s\n",
		name, outName, len(data), len(result.Packed), saved.Sprintf("%.2f%%", result.Stats.RatioPercent))
	return nil
}

func decompressFile(name string, raw []byte, output string) error {
	result, err := loadResult(name, raw)
	if err != nil {
		return err
	}
	data := result.Decode()

	outName := output
	if outName == "" {
		outName = strings.TrimSuffix(strings.TrimSuffix(name, ".json"), ".htap")
		if outName == name {
			outName = name + ".out"
		}
	}
	if err := os.WriteFile(outName, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s -> %s: %d bytes restored\n", name, outName, len(data))
	return nil
}

func dumpArchiveTable(name string, raw []byte) error {
	result, err := loadResult(name, raw)
	if err != nil {
		return err
	}
	rendered, err := json.MarshalIndent(result.Table, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s:\n%s\n", name, rendered)
	return nil
}

func loadResult(name string, raw []byte) (hufftap.Result, error) {
	var result hufftap.Result
	if strings.HasSuffix(name, ".json") {
		if err := json.Unmarshal(raw, &result); err != nil {
			return hufftap.Result{}, err
		}
		return result, nil
	}
	if _, err := result.ReadFrom(bytes.NewReader(raw)); err != nil {
		return hufftap.Result{}, err
	}
	return result, nil
}
