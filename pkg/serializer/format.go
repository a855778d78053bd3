package serializer

// Format selects the output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultIndent is the indent width used when none is configured, matching
// the four-space output the downstream tooling expects.
const DefaultIndent = 4

// StdoutURI is the special path indicating output should be written to
// stdout.
const StdoutURI = "-"

// IsUnknown reports whether the format is not a supported one.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return false
	}
	return true
}

// SupportedFormats lists the valid format names for flag usage strings.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}
