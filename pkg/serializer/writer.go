// Package serializer renders the finished inventory document (or a single
// host's variable map) as an indented textual serialization with sorted
// keys.
package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Writer serializes values to an output stream in the configured format.
type Writer struct {
	format Format
	out    io.Writer
	indent int
	closer io.Closer
}

// NewWriter creates a writer for the given format and stream. An unknown
// format falls back to JSON. Indent widths below 1 fall back to the
// default.
func NewWriter(format Format, out io.Writer, indent int) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	if indent < 1 {
		indent = DefaultIndent
	}
	return &Writer{format: format, out: out, indent: indent}
}

// NewStdoutWriter creates a writer targeting stdout.
func NewStdoutWriter(format Format, indent int) *Writer {
	return NewWriter(format, os.Stdout, indent)
}

// NewFileWriterOrStdout creates a writer for the given path, or a stdout
// writer when the path is empty, whitespace, or "-".
func NewFileWriterOrStdout(format Format, path string, indent int) (*Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format, indent), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	w := NewWriter(format, f, indent)
	w.closer = f
	return w, nil
}

// Serialize writes v to the output stream. JSON output is indented with the
// configured width and map keys are emitted sorted; YAML output uses the
// same indent width.
func (w *Writer) Serialize(v any) error {
	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(w.indent)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", strings.Repeat(" ", w.indent))
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.out, string(data))
		return err
	}
}

// Close releases the underlying file, if any. Safe to call on stdout
// writers and safe to call more than once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	c := w.closer
	w.closer = nil
	return c.Close()
}
