// GoGradient - Linear gradient PNG generator.
//
// Usage:
//
//	gogradient vertical -o <file> --height <px> [--start <color>] [--stop <color>]
//	gogradient horizontal -o <file> --width <px> [--start <color>] [--stop <color>]
//	gogradient batch --manifest <path>
//	gogradient init
//	gogradient serve [--port 8080]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/xob0t/GoGradient/clients/server"
	"github.com/xob0t/GoGradient/internal/config"
	"github.com/xob0t/GoGradient/internal/logging"
	"github.com/xob0t/GoGradient/pkg/gradient"
	"github.com/xob0t/GoGradient/pkg/pngenc"
	"github.com/xob0t/GoGradient/pkg/preset"
)

var log = logrus.New()

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := setup()
	if err != nil {
		fatal(err)
	}

	switch os.Args[1] {
	case "vertical", "v":
		err = runGradient(gradient.Vertical, os.Args[2:], cfg)
	case "horizontal", "h":
		err = runGradient(gradient.Horizontal, os.Args[2:], cfg)
	case "batch":
		err = runBatch(os.Args[2:])
	case "init":
		err = runInit(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:], cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fatal(err)
	}
}

// setup loads .env/environment defaults and configures logging.
func setup() (config.Config, error) {
	cfg, warnings, err := config.Load()
	if err != nil {
		return cfg, err
	}

	l, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return cfg, err
	}
	log = l
	gradient.SetLogger(log)

	for _, w := range warnings {
		log.Debug(w)
	}
	return cfg, nil
}

func runGradient(axis gradient.Axis, args []string, cfg config.Config) error {
	fs := flag.NewFlagSet(axis.String(), flag.ExitOnError)

	var (
		output      string
		start       string
		stop        string
		extent      int
		compression string
	)

	fs.StringVar(&output, "o", "", "Output file path (.png)")
	fs.StringVar(&output, "output", "", "Output file path (.png)")
	fs.StringVar(&start, "start", cfg.Start, "Start color: hex, r,g,b, name or 'random'")
	fs.StringVar(&stop, "stop", cfg.Stop, "Stop color: hex, r,g,b, name or 'random'")
	fs.StringVar(&compression, "compression", cfg.Compression, "zlib level: default, none, speed, best")
	if axis == gradient.Vertical {
		fs.IntVar(&extent, "h", 0, "Height in pixels")
		fs.IntVar(&extent, "height", 0, "Height in pixels")
	} else {
		fs.IntVar(&extent, "w", 0, "Width in pixels")
		fs.IntVar(&extent, "width", 0, "Width in pixels")
	}

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		return fmt.Errorf("output file is required (-o)")
	}

	startColor, err := gradient.ParseColor(start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	stopColor, err := gradient.ParseColor(stop)
	if err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	level, err := pngenc.ParseCompressionLevel(compression)
	if err != nil {
		return err
	}

	gc := gradient.Config{
		Axis:        axis,
		Start:       startColor,
		Stop:        stopColor,
		Extent:      extent,
		Compression: level,
	}
	if err := gradient.Generate(output, gc); err != nil {
		return err
	}

	w, h := axis.Dimensions(extent)
	log.WithFields(logrus.Fields{
		"output": output,
		"size":   fmt.Sprintf("%dx%d", w, h),
		"start":  startColor.String(),
		"stop":   stopColor.String(),
	}).Info("Done")
	return nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	var (
		manifestPath string
		dryRun       bool
	)
	fs.StringVar(&manifestPath, "manifest", "gradients.json", "Path to gradients manifest JSON")
	fs.StringVar(&manifestPath, "m", "gradients.json", "Path to gradients manifest JSON")
	fs.BoolVar(&dryRun, "dry-run", false, "Print the planned outputs without writing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := preset.LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	for _, w := range preset.ValidateManifest(m) {
		log.Warn(w)
	}

	jobs, err := preset.Resolve(m)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Print(preset.FormatPlan(m, jobs))
		return nil
	}

	_, err = preset.Run(jobs, log)
	return err
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var manifestOut string
	fs.StringVar(&manifestOut, "manifest", "gradients.json", "Output path for sample manifest")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(manifestOut, []byte(preset.GetExampleJSON()), 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	fmt.Printf("Created: %s\n", manifestOut)
	fmt.Printf("Run: gogradient batch --manifest %s\n", manifestOut)
	return nil
}

func runServe(args []string, cfg config.Config) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var port string
	fs.StringVar(&port, "port", cfg.Port, "HTTP port")
	fs.StringVar(&port, "p", cfg.Port, "HTTP port")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return server.RunServe(port, server.Options{
		Log:   log,
		Start: cfg.Start,
		Stop:  cfg.Stop,
	})
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	io.WriteString(os.Stdout, usage)
}

const usage = `GoGradient - Linear Gradient PNG Generator (Pure Go)

USAGE:
    gogradient vertical -o <file> --height <px> [options]
    gogradient horizontal -o <file> --width <px> [options]
    gogradient batch --manifest <path> [--dry-run]
    gogradient init [--manifest <path>]
    gogradient serve [--port 8080]

GRADIENT OPTIONS:
    -o, --output <path>    Output file (.png)
    -h, --height <px>      Height in pixels (vertical)
    -w, --width <px>       Width in pixels (horizontal)
    --start <color>        Start color (default: #e6e6e6)
    --stop <color>         Stop color (default: #b4b4b4)
    --compression <level>  default, none, speed, best

    Colors: "#rrggbb", "#rgb", "r,g,b", an SVG name like "lightgray", or "random".

BATCH:
    -m, --manifest <path>  Manifest JSON (default: gradients.json)
    --dry-run              List outputs without writing

SERVER:
    gogradient serve [--port 8080]
        GET  /api/gradient?axis=vertical&extent=150&start=%23e6e6e6&stop=%23b4b4b4
        POST /api/gradient  {"axis":"horizontal","extent":600,"start":"...","stop":"..."}

ENVIRONMENT (.env is read when present):
    GRADIENT_START, GRADIENT_STOP, GRADIENT_COMPRESSION,
    GRADIENT_LOG_LEVEL, GRADIENT_LOG_FORMAT, GRADIENT_PORT

EXAMPLES:
    gogradient vertical -o vgradient.png --height 150 --start 230,230,230 --stop 180,180,180
    gogradient horizontal -o hgradient.png --width 600
    gogradient init && gogradient batch
`
