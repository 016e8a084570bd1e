// Package swat is a server-side widget toolkit for building HTML user
// interfaces. Widgets form a tree that moves through a three-phase
// lifecycle: Init assigns identifiers and registers page resources, Process
// consumes a form submission, and Display writes markup. Sub-packages carry
// the pieces: ui holds the tree primitives and the form, controls the input
// widgets, table the tabular view, layout the page shell, theme the design
// tokens, schema the OpenAPI form builder, and console the terminal fill
// driver.
package swat

import (
	"embed"
	"io/fs"
)

//go:embed styles/*.css
var embeddedStyles embed.FS

// StylesFS exposes the stock widget stylesheets (committed under styles) so
// applications can serve them without copying files around.
//
// Typical mount:
//
//	mux.Handle("/styles/",
//	  http.StripPrefix("/styles/",
//	    http.FileServerFS(swat.StylesFS()),
//	  ),
//	)
func StylesFS() fs.FS {
	sub, err := fs.Sub(embeddedStyles, "styles")
	if err != nil {
		return embeddedStyles
	}
	return sub
}
