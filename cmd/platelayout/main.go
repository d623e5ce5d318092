/*
Command platelayout lays out a plate job.

It reads a YAML plate job, runs the layout engines on it and writes the
resulting placements, Braille dots and divider segments as JSON. Optionally
it draws a preview of the plate as PDF or SVG.

	platelayout -in door.yaml -out door.json -pdf door.pdf

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/nameplate/glyphs"
	"github.com/npillmayer/nameplate/job"
	"github.com/npillmayer/nameplate/preview"
	"github.com/npillmayer/schuko/tracing"
)

var traceKeys = []string{
	"nameplate",
	"nameplate.arctext",
	"nameplate.braille",
	"nameplate.divider",
	"nameplate.polygon",
	"nameplate.glyphs",
	"nameplate.job",
	"nameplate.preview",
}

type options struct {
	input, output string
	pdf, svg      string
	font          string
	metrics       string
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "in", "", "plate job (YAML)")
	flag.StringVar(&opts.output, "out", "", "layout output (JSON), default stdout")
	flag.StringVar(&opts.pdf, "pdf", "", "preview output (PDF)")
	flag.StringVar(&opts.svg, "svg", "", "preview output (SVG)")
	flag.StringVar(&opts.font, "font", "", "font file, overrides the job's font")
	flag.StringVar(&opts.metrics, "metrics", "", "glyph metrics: sfnt, gotext or fixed")
	level := flag.String("trace", "error", "trace level: error, info or debug")
	flag.Parse()

	if opts.input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := setTraceLevel(*level); err != nil {
		log.Fatal(err)
	}
	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("platelayout: %v", err)
	}
}

func setTraceLevel(name string) error {
	level := tracing.LevelError
	switch strings.ToLower(name) {
	case "error", "":
	case "info":
		level = tracing.LevelInfo
	case "debug":
		level = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", name)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}

// run reads the job, lays it out and writes all requested outputs. The JSON
// layout goes to stdout unless an output file is given.
func run(opts options, stdout io.Writer) error {
	j, err := job.Load(opts.input)
	if err != nil {
		return fmt.Errorf("cannot read plate job %s: %w", opts.input, err)
	}
	fontPath := j.Font.Path
	if opts.font != "" {
		fontPath = opts.font
	} else if fontPath != "" && !filepath.IsAbs(fontPath) {
		fontPath = filepath.Join(filepath.Dir(opts.input), fontPath)
	}
	kind := j.Font.Metrics
	if opts.metrics != "" {
		kind = glyphs.Kind(opts.metrics)
	}
	provider, err := glyphs.Open(kind, fontPath)
	if err != nil {
		return err
	}
	scene, err := job.Run(j, provider)
	if err != nil {
		return err
	}
	for _, o := range scene.Overflows() {
		tracing.Select("nameplate.job").Infof("%s reaches beyond the plate", o)
	}

	if opts.output == "" {
		err = scene.WriteJSON(stdout)
	} else {
		err = writeFile(opts.output, scene.WriteJSON)
	}
	if err != nil {
		return fmt.Errorf("cannot write layout: %w", err)
	}

	popts := preview.DefaultOptions()
	if fontPath != "" {
		if popts.Font, err = os.ReadFile(fontPath); err != nil {
			return fmt.Errorf("cannot read font: %w", err)
		}
	}
	if opts.pdf != "" {
		if err := writeFile(opts.pdf, func(w io.Writer) error {
			return preview.RenderPDF(w, scene, popts)
		}); err != nil {
			return err
		}
	}
	if opts.svg != "" {
		if err := writeFile(opts.svg, func(w io.Writer) error {
			return preview.RenderSVG(w, scene, popts)
		}); err != nil {
			return err
		}
	}
	return nil
}

// writeFile creates path and writes to it. The error of closing the file
// is returned as well.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}
	return os.Create(path)
}
