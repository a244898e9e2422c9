package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ellery/record/internal/record"
	"github.com/ellery/record/internal/record/config"
	"github.com/ellery/record/internal/record/driver"
	"github.com/ellery/record/internal/record/input"
)

var (
	flagVersion = flag.Bool("version", false, "Show the version number and exit")
	flagDebug   = flag.Bool("debug", false, "Enable the debug overlay and write record-debug.log")
	flagDump    = flag.String("dump", "", "Write the resulting RecordState to this path (\"~\" for ~/.record-dump.json)")
	flagNoUnicode = flag.Bool("no-unicode", false, "Use ASCII glyphs instead of Unicode for checkboxes/arrows")

	version = "dev"
)

func init() {
	flag.Usage = func() {
		fmt.Println("Usage: record [OPTIONS] <state.json>")
		fmt.Println("")
		fmt.Println("  record <state.json>   Review and select changes from a dumped RecordState")
		fmt.Println("")
		fmt.Println("Options:")
		fmt.Println("  -version       Show version and exit")
		fmt.Println("  -debug         Enable the debug overlay")
		fmt.Println("  -dump PATH     Write the resulting state to PATH (or ~ for the default)")
		fmt.Println("  -no-unicode    Use ASCII glyphs")
	}
}

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Println("record version", version)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args[0]); err != nil {
		var engErr *record.EngineError
		if errors.As(err, &engErr) && engErr.Kind == record.ErrCancelled {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "record:", err)
		os.Exit(1)
	}
}

func run(statePath string) error {
	data, err := os.ReadFile(statePath)
	if err != nil {
		return record.ErrWriteFileWith(err)
	}
	state, err := record.UnmarshalState(data)
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	cfg.Debug = cfg.Debug || *flagDebug
	cfg.UseUnicode = cfg.UseUnicode && !*flagNoUnicode
	if *flagDump != "" {
		cfg.DumpPath = *flagDump
	}

	src, err := input.NewTerminalSource()
	if err != nil {
		return err
	}

	d := driver.New(state, src, cfg)
	result, err := d.Run()
	if err != nil {
		return err
	}

	out, err := record.MarshalState(result)
	if err != nil {
		return err
	}
	return os.WriteFile(statePath, out, 0644)
}
