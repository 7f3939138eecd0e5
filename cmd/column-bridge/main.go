// Package main provides the CLI entrypoint for column-bridge.
//
// column-bridge maintains the Go side of the bridge to the columnar query
// engine:
//   - Regenerates the WrapN adapter builders from the arity template
//   - Prints the scalar wire vocabulary the schema resolver emits
//   - Dumps a manifest of the sample vector functions as the engine sees them
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"column-bridge/examples/udfs"
	"column-bridge/internal/gen"
	"column-bridge/registry"
	"column-bridge/schema"
	"column-bridge/udf"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "column-bridge:", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Debug)
	defer func() { _ = log.Sync() }()

	if cfg.Debug {
		spew.Dump(cfg)
	}

	switch cmd := flag.Arg(0); cmd {
	default:
		usage()
		os.Exit(2)
	case "gen":
		err = runGen(log, cfg)
	case "vocab":
		err = runVocab()
	case "manifest":
		err = runManifest(log, cfg)
	}

	if err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}

	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}

	return log
}

// runGen renders the adapter builders and writes them under cfg.AdapterDir.
func runGen(log *zap.Logger, cfg Config) error {
	file, err := gen.AdapterFile(cfg.AdapterPkg, cfg.MinArity, cfg.MaxArity)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{file}, cfg.AdapterDir); err != nil {
		return err
	}

	log.Info("wrote adapter builders",
		zap.String("dir", cfg.AdapterDir),
		zap.String("file", file.Filename),
		zap.Int("min_arity", cfg.MinArity),
		zap.Int("max_arity", cfg.MaxArity))

	return nil
}

// runVocab prints every scalar wire name, one per line.
func runVocab() error {
	for _, name := range schema.Vocabulary() {
		fmt.Println(name)
	}

	return nil
}

// runManifest registers the sample vector functions and prints each catalog
// entry the way the engine would see it.
func runManifest(log *zap.Logger, cfg Config) error {
	reg := registry.New(log)

	entries := []struct {
		name string
		fn   any
		ad   udf.Adapter
	}{
		{"add_int64", udfs.AddInt64, udf.Wrap2(udfs.AddInt64)},
		{"upper", udfs.Upper, udf.Wrap1(udfs.Upper)},
		{"clamp_float64", udfs.ClampFloat64, udf.Wrap3(udfs.ClampFloat64)},
	}

	for _, e := range entries {
		if err := reg.Register(e.name, e.fn, e.ad); err != nil {
			return err
		}
	}

	for _, name := range reg.Names() {
		entry, err := reg.Lookup(name)
		if err != nil {
			return err
		}

		fmt.Printf("%s(%s) -> %s\n", entry.Name, strings.Join(entry.ArgTypes, ", "), entry.ReturnType)

		if cfg.Debug {
			spew.Dump(entry.Func)
		}
	}

	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "column-bridge - tooling for the columnar engine bridge")
	fmt.Fprintln(os.Stderr, "Commands: gen | vocab | manifest")
	fmt.Fprintln(os.Stderr, "Run with -config <file> to load a YAML config")
}
