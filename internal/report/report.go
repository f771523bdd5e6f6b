package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/scoop-searchr/scoop-searchr/internal/bucket"
	"github.com/scoop-searchr/scoop-searchr/internal/search"
	"go.yaml.in/yaml/v3"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported output formats.
func Formats() []Format { return []Format{FormatText, FormatJSON, FormatYAML} }

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// NoMatchMessage is printed by the text format when nothing matched.
const NoMatchMessage = "No match found"

// entry is the machine-readable form of one match.
type entry struct {
	Bucket      string `json:"bucket" yaml:"bucket"`
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Bin         string `json:"bin,omitempty" yaml:"bin,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Write renders results in the given format. For the text format an empty
// result set prints NoMatchMessage; the other formats print an empty list.
func Write(w io.Writer, format Format, results []bucket.Result) error {
	switch format {
	case FormatJSON:
		return JSON(w, results)
	case FormatYAML:
		return YAML(w, results)
	case FormatText, "":
		if !bucket.Found(results) {
			return NoMatch(w)
		}
		return Text(w, results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Text prints each bucket with matches as a header followed by one indented
// line per match, and a blank line after each bucket:
//
//	'main' bucket:
//		git (2.43.0)
//		gitui (0.24.3) --> includes 'gitui.exe'
func Text(w io.Writer, results []bucket.Result) error {
	header := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	var b strings.Builder
	for _, r := range results {
		if len(r.Matches) == 0 {
			continue
		}
		b.WriteString(header.Render(fmt.Sprintf("'%s' bucket:", r.Bucket.Name)))
		b.WriteByte('\n')
		for _, m := range r.Matches {
			b.WriteString(Line(m))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Line formats one match without styling.
func Line(m search.Match) string {
	line := fmt.Sprintf("\t%s (%s)", m.Name, m.Version)
	if m.Bin != nil {
		line += fmt.Sprintf(" --> includes '%s'", *m.Bin)
	}
	if m.Description != nil {
		line += ": " + *m.Description
	}
	return line
}

// NoMatch prints the no-result message.
func NoMatch(w io.Writer) error {
	_, err := fmt.Fprintln(w, NoMatchMessage)
	return err
}

// JSON prints all matches as an indented JSON array.
func JSON(w io.Writer, results []bucket.Result) error {
	data, err := json.MarshalIndent(entries(results), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// YAML prints all matches as a YAML sequence.
func YAML(w io.Writer, results []bucket.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries(results)); err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	return enc.Close()
}

func entries(results []bucket.Result) []entry {
	out := make([]entry, 0)
	for _, r := range results {
		for _, m := range r.Matches {
			e := entry{Bucket: r.Bucket.Name, Name: m.Name, Version: m.Version}
			if m.Bin != nil {
				e.Bin = *m.Bin
			}
			if m.Description != nil {
				e.Description = *m.Description
			}
			out = append(out, e)
		}
	}
	return out
}
