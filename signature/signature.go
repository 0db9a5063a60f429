package signature

import (
	"fmt"
	"strings"
)

// Field is one named slot of a signature. The type is a hint carried into the
// prompt, it never constrains the value.
type Field struct {
	Name string
	Type string
}

// Signature is the parsed form of a task specification like
// "question -> answer" or "context, question: str -> answer: str".
// Inputs are supplied by the caller, outputs are extracted from the model
// completion.
type Signature struct {
	Raw     string
	Inputs  []Field
	Outputs []Field
}

// Parse turns a task-specification string into a Signature. The accepted
// grammar is two comma-separated field lists joined by a single "->", each
// field a lower_snake identifier with an optional ": type" hint.
func Parse(text string) (*Signature, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil, fmt.Errorf("empty signature")
	}
	parts := strings.Split(raw, "->")
	if len(parts) != 2 {
		return nil, fmt.Errorf("signature %q must contain exactly one '->'", raw)
	}
	inputs, err := parseFieldList(parts[0])
	if err != nil {
		return nil, fmt.Errorf("signature inputs: %w", err)
	}
	outputs, err := parseFieldList(parts[1])
	if err != nil {
		return nil, fmt.Errorf("signature outputs: %w", err)
	}

	seen := map[string]bool{}
	for _, f := range append(append([]Field{}, inputs...), outputs...) {
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate field %q in signature %q", f.Name, raw)
		}
		seen[f.Name] = true
	}
	return &Signature{Raw: raw, Inputs: inputs, Outputs: outputs}, nil
}

func parseFieldList(list string) ([]Field, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("field list is empty")
	}
	fields := []Field{}
	for _, part := range strings.Split(list, ",") {
		field, err := parseField(part)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func parseField(part string) (Field, error) {
	name := strings.TrimSpace(part)
	typ := "str"
	if idx := strings.Index(name, ":"); idx >= 0 {
		typ = strings.TrimSpace(name[idx+1:])
		name = strings.TrimSpace(name[:idx])
		if typ == "" {
			return Field{}, fmt.Errorf("field %q has an empty type hint", name)
		}
	}
	if !validIdentifier(name) {
		return Field{}, fmt.Errorf("invalid field name %q", name)
	}
	return Field{Name: name, Type: typ}, nil
}

func validIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// InputNames lists the input field names in declaration order.
func (sig *Signature) InputNames() []string {
	return fieldNames(sig.Inputs)
}

// OutputNames lists the output field names in declaration order.
func (sig *Signature) OutputNames() []string {
	return fieldNames(sig.Outputs)
}

func fieldNames(fields []Field) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

// Instructions is the task line rendered at the top of the prompt, derived
// from the field lists.
func (sig *Signature) Instructions() string {
	return fmt.Sprintf("Given the fields %s, produce the fields %s.",
		quoteJoin(sig.InputNames()), quoteJoin(sig.OutputNames()))
}

func quoteJoin(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, "`"+name+"`")
	}
	return strings.Join(quoted, ", ")
}
