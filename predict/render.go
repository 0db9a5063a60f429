package predict

import (
	"encoding/json"
	"fmt"
	"strings"

	"sig-harness/shared"
	"sig-harness/signature"
)

// ReasoningField is the extra output a chain-of-thought module prepends to
// the signature's declared outputs.
const ReasoningField = "reasoning"

const reasoningCue = "Let's think step by step in order to"

// fieldMarker renders a field name as its prompt label, "query_text"
// becomes "Query Text".
func fieldMarker(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func formatValue(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("format input value: %w", err)
	}
	return string(data), nil
}

// Render builds the chain-of-thought prompt for a signature and its input
// values: the instruction line, a format block listing every field, then the
// filled inputs ending at the reasoning cue so the model continues from
// there.
func Render(sig *signature.Signature, inputs shared.Fields) (string, error) {
	var builder strings.Builder
	builder.WriteString(sig.Instructions())
	builder.WriteString("\n\n---\n\n")
	builder.WriteString("Follow the following format.\n\n")
	for _, f := range sig.Inputs {
		builder.WriteString(fmt.Sprintf("%s: ${%s}\n", fieldMarker(f.Name), f.Name))
	}
	builder.WriteString(fmt.Sprintf("%s: %s ${produce the %s}. We ...\n",
		fieldMarker(ReasoningField), reasoningCue, sig.OutputNames()[0]))
	for _, f := range sig.Outputs {
		builder.WriteString(fmt.Sprintf("%s: ${%s}\n", fieldMarker(f.Name), f.Name))
	}
	builder.WriteString("\n---\n\n")
	for _, f := range sig.Inputs {
		value, err := formatValue(inputs[f.Name])
		if err != nil {
			return "", err
		}
		builder.WriteString(fmt.Sprintf("%s: %s\n", fieldMarker(f.Name), value))
	}
	builder.WriteString(fmt.Sprintf("%s: %s", fieldMarker(ReasoningField), reasoningCue))
	return builder.String(), nil
}
