package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testDoc struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf, 4)

	data := testDoc{Name: "test", Value: 123}
	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testDoc
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if result.Name != "test" || result.Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf, 2)

	data := testDoc{Name: "test", Value: 123}
	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testDoc
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Name != "test" || result.Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_IndentWidth(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf, 2)

	if err := writer.Serialize(map[string]string{"key": "value"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"key\"") {
		t.Errorf("Expected two-space indent, got:\n%s", buf.String())
	}

	buf.Reset()
	writer = NewWriter(FormatJSON, &buf, 4)
	if err := writer.Serialize(map[string]string{"key": "value"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\n    \"key\"") {
		t.Errorf("Expected four-space indent, got:\n%s", buf.String())
	}
}

func TestWriter_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf, 4)

	data := map[string]int{"zeta": 1, "alpha": 2, "mid": 3}
	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	alpha := strings.Index(out, "alpha")
	mid := strings.Index(out, "mid")
	zeta := strings.Index(out, "zeta")
	if !(alpha < mid && mid < zeta) {
		t.Errorf("Expected sorted keys, got:\n%s", out)
	}
}

func TestNewWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf, 4)

	if err := writer.Serialize(testDoc{Name: "test", Value: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	var result testDoc
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Expected JSON fallback output: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	for _, path := range []string{"", "  ", "-"} {
		writer, err := NewFileWriterOrStdout(FormatJSON, path, 4)
		if err != nil {
			t.Fatalf("Expected no error for path %q, got: %v", path, err)
		}
		if writer == nil {
			t.Fatalf("Expected non-nil writer for path %q", path)
		}
		if err := writer.Close(); err != nil {
			t.Errorf("Close failed for path %q: %v", path, err)
		}
	}
}

func TestNewFileWriterOrStdout_File(t *testing.T) {
	path := t.TempDir() + "/inventory.json"

	writer, err := NewFileWriterOrStdout(FormatJSON, path, 4)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := writer.Serialize(testDoc{Name: "test", Value: 123}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Multiple Close calls are safe.
	if err := writer.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	var result testDoc
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}
	if result.Name != "test" {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	writer, err := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/file.json", 4)
	if err == nil {
		t.Fatal("Expected error for invalid path")
	}
	if writer != nil {
		t.Error("Expected nil writer when error is returned")
	}
	if !strings.Contains(err.Error(), "failed to create output file") {
		t.Errorf("Expected helpful error message, got: %v", err)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{Format("table"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
