package longform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSinkValidation(t *testing.T) {
	if _, err := NewSink(nil); err == nil {
		t.Errorf("NewSink accepted a nil config")
	}

	if _, err := NewSink(&SinkConfig{}); err == nil {
		t.Errorf("NewSink accepted an empty OutputPath")
	}
}

func TestSinkWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink, err := NewSink(&SinkConfig{OutputPath: dir})
	if err != nil {
		t.Fatalf("NewSink failed: %v", err)
	}

	compilation := &Compilation{
		Destinations: []string{"first", "second"},
		Compiled:     "3+1-",
	}

	if err := sink.Write(compilation); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for _, name := range compilation.Destinations {
		path := filepath.Join(dir, name+LongExtension)
		contents, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("Expected output file [%s] missing: %v", path, err)
			continue
		}
		if string(contents) != compilation.Compiled {
			t.Errorf("File [%s] holds |%s|, expected |%s|", path, contents, compilation.Compiled)
		}
	}
}

func TestSinkWriteEmptyCompiled(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(&SinkConfig{OutputPath: dir})
	if err != nil {
		t.Fatalf("NewSink failed: %v", err)
	}

	compilation := &Compilation{Destinations: []string{"empty"}, Compiled: ""}
	if err := sink.Write(compilation); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	contents, err := os.ReadFile(filepath.Join(dir, "empty"+LongExtension))
	if err != nil {
		t.Fatalf("Expected output file missing: %v", err)
	}

	if len(contents) != 0 {
		t.Errorf("Empty compilation wrote [%d] bytes", len(contents))
	}
}
