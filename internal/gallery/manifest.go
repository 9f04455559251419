package gallery

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"
)

// Entry is one image as published by the asset pipeline
type Entry struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Manifest is the JSON document listing every gallery image
type Manifest struct {
	Images []Entry `json:"images"`
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// LoadManifest reads a manifest file written by BuildManifest or by the
// deployment pipeline
func LoadManifest(filename string) ([]Entry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse gallery manifest %s: %w", filename, err)
	}

	entries := make([]Entry, 0, len(m.Images))
	for _, e := range m.Images {
		if e.URL == "" {
			e.URL = e.Path
		}
		if e.URL == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// BuildManifest enumerates <category>/<file> images in fsys and returns
// entries whose paths sit under /<anchor>/ and whose URLs are rooted at
// urlPrefix. Path segments are percent-encoded the way a bundler would.
func BuildManifest(fsys fs.FS, anchor, urlPrefix string) ([]Entry, error) {
	matches, err := fs.Glob(fsys, "*/*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan gallery assets: %w", err)
	}

	prefix := strings.TrimSuffix(urlPrefix, "/")
	entries := make([]Entry, 0, len(matches))
	for _, match := range matches {
		if !imageExtensions[strings.ToLower(path.Ext(match))] {
			continue
		}
		info, err := fs.Stat(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", match, err)
		}
		if info.IsDir() {
			continue
		}

		category, file := path.Split(match)
		encoded := url.PathEscape(strings.TrimSuffix(category, "/")) + "/" + url.PathEscape(file)
		entries = append(entries, Entry{
			Path: "/" + anchor + "/" + encoded,
			URL:  prefix + "/" + encoded,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// WriteManifest encodes entries as an indented manifest document
func WriteManifest(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Manifest{Images: entries})
}
