package gallery

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
)

func TestBuildManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"Dishes/pasta.jpg":              {Data: []byte("x")},
		"Dishes/notes.txt":              {Data: []byte("x")},
		"Behind The Scenes/kitchen.PNG": {Data: []byte("x")},
		"Location/front.webp":           {Data: []byte("x")},
		"stray.jpg":                     {Data: []byte("x")},
		"Dishes/nested/too-deep.jpg":    {Data: []byte("x")},
	}

	got, err := BuildManifest(fsys, "cafe", "/assets/")
	if err != nil {
		t.Fatalf("BuildManifest() error = %v", err)
	}

	want := []Entry{
		{Path: "/cafe/Behind%20The%20Scenes/kitchen.PNG", URL: "/assets/Behind%20The%20Scenes/kitchen.PNG"},
		{Path: "/cafe/Dishes/pasta.jpg", URL: "/assets/Dishes/pasta.jpg"},
		{Path: "/cafe/Location/front.webp", URL: "/assets/Location/front.webp"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildManifest() = %+v, want %+v", got, want)
	}

	idx := NewIndex(got, Options{})
	if names := categoryNames(idx); !reflect.DeepEqual(names, []string{"Location", "Dishes", "Behind The Scenes"}) {
		t.Errorf("Categories() = %v", names)
	}
}

func TestManifestRoundTrip(t *testing.T) {
	entries := []Entry{{Path: "/cafe/Dishes/a.jpg", URL: "https://cdn.example/a.jpg"}}

	var buf bytes.Buffer
	if err := WriteManifest(&buf, entries); err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}
	file := filepath.Join(t.TempDir(), "gallery.json")
	if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadManifest(file)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("LoadManifest() = %+v, want %+v", got, entries)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadManifest(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadManifest(missing) error = nil")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("<html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadManifest(bad); err == nil {
		t.Error("LoadManifest(html) error = nil")
	}
}
