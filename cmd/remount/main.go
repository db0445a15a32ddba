package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/wippyai/remote-mount/fetch"
	"github.com/wippyai/remote-mount/manifest"
	"github.com/wippyai/remote-mount/typegen"
)

func main() {
	var (
		manifestPath = flag.String("manifest", "", "Path to a local component manifest")
		manifestURL  = flag.String("url", "", "URL of a remote component manifest")
		outDir       = flag.String("out", ".", "Output directory for generated types")
		fileName     = flag.String("name", "", "Output file name (default <package>_types.go)")
		pkgName      = flag.String("pkg", "", "Package name for generated types (default from manifest name)")
		interactive  = flag.Bool("i", false, "Interactive manifest inspector")
	)
	flag.Parse()

	if *manifestPath == "" && *manifestURL == "" {
		fmt.Fprintln(os.Stderr, "Usage: remount -manifest <file.json> [-out dir] [-name file.go] [-pkg name]")
		fmt.Fprintln(os.Stderr, "       remount -url <https://.../manifest.json> [-out dir]")
		fmt.Fprintln(os.Stderr, "       remount -manifest <file.json> -i  (interactive inspector)")
		os.Exit(1)
	}
	if *manifestPath != "" && *manifestURL != "" {
		fmt.Fprintln(os.Stderr, "Error: -manifest and -url are mutually exclusive")
		os.Exit(1)
	}

	doc, err := loadDocument(*manifestPath, *manifestURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(doc, *outDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generate(doc, *outDir, *fileName, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadDocument(path, url string) (*manifest.Document, error) {
	if path != "" {
		return manifest.Load(path)
	}

	// Remote manifests embed JSON Schema sections; translate them to the
	// flat form before generation.
	data, err := fetch.New().Fetch(context.Background(), url, "")
	if err != nil {
		return nil, err
	}
	doc, err := typegen.FromJSONSchema(data)
	if err == nil {
		return doc, nil
	}
	// Fall back to the flat form for hosts that serve it directly.
	if flat, flatErr := manifest.Parse(data); flatErr == nil {
		return flat, nil
	}
	return nil, err
}

func generate(doc *manifest.Document, outDir, fileName, pkgName string) error {
	path, err := typegen.WriteFile(doc, outDir, fileName, typegen.Options{PackageName: pkgName})
	if err != nil {
		return err
	}

	fmt.Printf("Component: %s@%s (<%s>)\n", doc.Name, doc.Version, doc.TagName)
	fmt.Printf("Props: %d\n", len(doc.Props))
	fmt.Printf("Events: %d\n", len(doc.Events))
	fmt.Printf("Capabilities: %d\n", len(doc.Capabilities))
	fmt.Printf("\nWrote %s\n", path)
	return nil
}
