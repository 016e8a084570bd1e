// Command swat-render builds a form from an OpenAPI operation and writes it
// as a full HTML page. Optionally it applies a YAML theme manifest and, with
// -console, fills the form interactively before rendering.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	gotheme "github.com/goliatone/go-theme"

	"github.com/cviebrock/swat/pkg/console"
	"github.com/cviebrock/swat/pkg/layout"
	"github.com/cviebrock/swat/pkg/schema"
	"github.com/cviebrock/swat/pkg/theme"
)

func main() {
	source := flag.String("source", "", "OpenAPI document path")
	opID := flag.String("operation", "", "operation ID to render")
	title := flag.String("title", "swat", "page title")
	baseHref := flag.String("base-href", "", "prefix prepended to asset URIs")
	manifestPath := flag.String("theme", "", "YAML theme manifest path")
	variant := flag.String("variant", "", "theme variant name")
	interactive := flag.Bool("console", false, "fill the form interactively before rendering")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *source == "" || *opID == "" {
		log.Fatal("both -source and -operation are required")
	}

	ctx := context.Background()

	document, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("Failed to read document: %v", err)
	}

	form, err := schema.BuildForm(ctx, document, *opID)
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	if *interactive {
		if err := console.Fill(ctx, form, console.NewSurveyDriver()); err != nil {
			log.Fatalf("Failed to fill form: %v", err)
		}
	}

	opts := []layout.PageOption{layout.WithBaseHref(*baseHref)}
	if *manifestPath != "" {
		cfg, err := loadTheme(*manifestPath, *variant)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		opts = append(opts, layout.WithTheme(cfg))
	}

	page, err := layout.NewPage(*title, form, opts...)
	if err != nil {
		log.Fatalf("Failed to build page: %v", err)
	}
	html, err := page.Render()
	if err != nil {
		log.Fatalf("Failed to render page: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, html, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Page written to %s\n", *output)
	} else {
		fmt.Println(string(html))
	}
}

func loadTheme(path, variant string) (*theme.Config, error) {
	manifest, err := theme.LoadManifestFile(path)
	if err != nil {
		return nil, err
	}
	return theme.FromSelection(&gotheme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	})
}
