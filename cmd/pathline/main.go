package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"

	pathline "github.com/gucio321/pathline/pkg"
	"github.com/gucio321/pathline/pkg/pathd"
)

type Flags struct {
	Description    string
	InputFilePath  string
	OutputFilePath string
	Scale          float64
	Points         bool
	Round          bool
	Inkscape       bool
	preset         string
	makePreset     bool
}

func main() {
	var f Flags
	flag.StringVar(&f.Description, "d", "", "path description to parse (e.g. \"m100 100l0 100z\")")
	flag.StringVar(&f.InputFilePath, "i", "", "input SVG file path")
	flag.StringVar(&f.OutputFilePath, "o", "", "output file path")
	flag.Float64Var(&f.Scale, "s", 1.0, "Scale factor")
	flag.BoolVar(&f.Points, "points", false, "print point sequences as JSON instead of canonical descriptions")
	flag.BoolVar(&f.Round, "round", false, "round non-integer SVG coordinates instead of failing")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "pre-process input with inkscape (object-to-path)")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		glg.Infof("Presets generated")
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	var paths []*pathd.Path

	switch {
	case f.Description != "":
		path, err := pathd.Parse(f.Description)
		if err != nil {
			glg.Fatalf("Cannot parse description %q: %v", f.Description, err)
		}

		paths = append(paths, path)
	case f.InputFilePath != "":
		paths = importFile(&f)
	default:
		flag.Usage()
		os.Exit(1)
	}

	out := render(&f, paths)

	if f.OutputFilePath == "" {
		fmt.Println(out)
		return
	}

	if err := os.WriteFile(f.OutputFilePath, []byte(out+"\n"), 0644); err != nil {
		glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
	}
}

func importFile(f *Flags) []*pathd.Path {
	if _, err := os.Stat(f.InputFilePath); os.IsNotExist(err) {
		glg.Fatalf("Input file %s does not exist", f.InputFilePath)
	}

	inputFile := f.InputFilePath
	if f.Inkscape {
		inkscapeProxy := inkscape.NewProxy(inkscape.Verbose(true))
		if err := inkscapeProxy.Run(); err != nil {
			glg.Fatalf("Cannot run inkscape: %v", err)
		}

		defer inkscapeProxy.Close()

		glg.Infof("running inkscape pre-processing")
		convertedFile := f.InputFilePath + ".pathline.svg"
		inkscapeProxy.RawCommands(
			fmt.Sprintf("file-open:%s", f.InputFilePath),
			fmt.Sprintf("export-filename:%s", convertedFile),
			"export-type:svg",
			"select-all",
			"object-to-path",
			"path-simplify",
			"export-do",
		)

		glg.Info("inkscape done.")
		inputFile = convertedFile
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		glg.Fatalf("Cannot read file %s: %v", inputFile, err)
	}

	importer, err := pathline.Parse(data)
	if err != nil {
		glg.Fatalf("Cannot parse file %s: %v", inputFile, err)
	}

	importer.Scale(f.Scale)
	if f.Round {
		importer.Round()
	}

	paths, err := importer.Paths()
	if err != nil {
		glg.Fatalf("Cannot import paths from %s: %v", inputFile, err)
	}

	if len(paths) == 0 {
		glg.Fatalf("No line paths found in %s", inputFile)
	}

	return paths
}

func render(f *Flags, paths []*pathd.Path) string {
	if !f.Points {
		lines := make([]string, len(paths))
		for i, p := range paths {
			lines[i] = p.String()
		}

		return strings.Join(lines, "\n")
	}

	pairs := make([][][2]int, len(paths))
	for i, p := range paths {
		pairs[i] = p.Pairs()
	}

	out, err := json.Marshal(pairs)
	if err != nil {
		glg.Fatalf("Cannot marshal points: %v", err)
	}

	return string(out)
}
