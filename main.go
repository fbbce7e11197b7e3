package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DarkhanShakhan/rt-new/pkg/renderer"
	"github.com/DarkhanShakhan/rt-new/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "default", "Scene to render: 'default', 'glass' or 'showcase'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	output := flag.String("o", "", "Output file; .png or .ppm decides the format (default output/<scene>.ppm)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Ray Tracer")
		fmt.Println("Usage: rt-new [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default  - Two-sphere test world")
		fmt.Println("  glass    - Hollow glass sphere over a checkered floor")
		fmt.Println("  showcase - Every primitive and pattern in one room")
		return
	}

	if err := run(*sceneName, *width, *height, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, width, height int, output string) error {
	s, err := scene.New(sceneName, width, height)
	if err != nil {
		return err
	}

	if output == "" {
		output = filepath.Join("output", sceneName+".ppm")
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	fmt.Printf("Rendering %q at %dx%d...\n", sceneName, width, height)
	start := time.Now()
	canvas := s.Camera.Render(s.World)
	fmt.Printf("Render completed in %v\n", time.Since(start))

	if err := writeCanvas(canvas, output); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", output)
	return nil
}

// writeCanvas serializes the canvas as PNG or PPM based on file extension
func writeCanvas(canvas *renderer.Canvas, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, canvas.Image())
	default:
		err = canvas.WritePPM(file)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
