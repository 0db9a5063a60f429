package predict

import (
	"fmt"
	"strings"

	"sig-harness/shared"
	"sig-harness/signature"
)

// ParseCompletion extracts the declared output fields from a model
// completion. Fields are recognised by "Marker:" lines; a value runs until
// the next recognised marker. The completion continues the prompt's trailing
// "Reasoning:" line, so any text before the first marker belongs to the
// reasoning field.
func ParseCompletion(sig *signature.Signature, text string) (shared.Fields, error) {
	markers := map[string]string{
		fieldMarker(ReasoningField): ReasoningField,
	}
	for _, f := range sig.Outputs {
		markers[fieldMarker(f.Name)] = f.Name
	}

	values := map[string][]string{}
	current := ReasoningField
	for _, line := range strings.Split(text, "\n") {
		name, rest, ok := matchMarker(markers, line)
		if ok {
			current = name
			values[current] = append(values[current], rest)
			continue
		}
		values[current] = append(values[current], line)
	}

	result := shared.Fields{}
	result[ReasoningField] = strings.TrimSpace(strings.Join(values[ReasoningField], "\n"))
	for _, f := range sig.Outputs {
		lines, ok := values[f.Name]
		if !ok {
			return nil, fmt.Errorf("completion is missing output field %q", f.Name)
		}
		result[f.Name] = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return result, nil
}

// matchMarker reports whether line starts with one of the expected field
// markers. The marker match is case-insensitive and must sit at the start of
// the line, directly followed by a colon.
func matchMarker(markers map[string]string, line string) (string, string, bool) {
	for marker, name := range markers {
		if len(line) <= len(marker) || line[len(marker)] != ':' {
			continue
		}
		if strings.EqualFold(line[:len(marker)], marker) {
			return name, strings.TrimSpace(line[len(marker)+1:]), true
		}
	}
	return "", "", false
}
