// Command gallery-manifest writes the gallery manifest for a directory of
// <category>/<image> files.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/JunoAX/cafe-fausse/internal/gallery"
)

func main() {
	dir := flag.String("dir", "assets/cafe", "directory holding one folder per category")
	anchor := flag.String("anchor", "cafe", "path segment preceding the category")
	urlPrefix := flag.String("url-prefix", "/assets/cafe", "URL prefix the images are served under")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	entries, err := gallery.BuildManifest(os.DirFS(*dir), *anchor, *urlPrefix)
	if err != nil {
		log.Fatalf("Failed to build manifest: %v", err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := gallery.WriteManifest(w, entries); err != nil {
		log.Fatalf("Failed to write manifest: %v", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d images\n", len(entries))
}
