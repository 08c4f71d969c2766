package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ogier/pflag"
)

var (
	optPrompt  = pflag.StringP("prompt", "p", "", "Use the given string as the command prompt")
	optSilent  = pflag.BoolP("silent", "s", false, "Suppress diagnostics such as the byte count of a loaded file")
	optVerbose = pflag.BoolP("verbose", "v", false, "Print full error messages instead of ?")
	optConfig  = pflag.StringP("config", "c", "", "Read settings from the given TOML file")
	optSample  = pflag.Bool("sample-config", false, "Print a sample config file and exit")
	optDebug   = pflag.Bool("debug", false, "Print debug logs to stderr")
)

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Edit [file] with the %s line editor.\n\n", editorName)
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}
}

func main() {
	pflag.Parse()
	if *optSample {
		fmt.Print(GenerateSampleConfig())
		return
	}
	if !*optDebug {
		log.SetOutput(io.Discard)
	}
	if pflag.NArg() > 1 {
		pflag.Usage()
		os.Exit(1)
	}

	path, required := *optConfig, true
	if path == "" {
		path, required = ConfigFile(), false
	}
	cfg, err := LoadConfig(path, required)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := cfg.Options()
	pflag.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "prompt":
			opts = append(opts, WithPrompt(*optPrompt))
		case "silent":
			opts = append(opts, WithSilent(*optSilent))
		case "verbose":
			opts = append(opts, WithVerbose(*optVerbose))
		}
	})
	if pflag.NArg() == 1 {
		opts = append(opts, WithFile(pflag.Arg(0)))
	}

	if err := NewEditor(opts...).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
