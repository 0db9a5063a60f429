package predict

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sig-harness/llm"
	"sig-harness/shared"
	"sig-harness/signature"
)

// ChainOfThought runs one signature against a hosted model: render the
// prompt, one completion round-trip, parse the output fields.
type ChainOfThought struct {
	sig    *signature.Signature
	client llm.Client
}

func NewChainOfThought(sig *signature.Signature, client llm.Client) *ChainOfThought {
	return &ChainOfThought{sig: sig, client: client}
}

// Forward executes the module with the caller's input fields and returns the
// output fields, reasoning included.
func (m *ChainOfThought) Forward(ctx context.Context, inputs shared.Fields) (shared.Fields, error) {
	err := m.validateInputs(inputs)
	if err != nil {
		return nil, err
	}
	prompt, err := Render(m.sig, inputs)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("model", m.client.Model()).Str("signature", m.sig.Raw).Msg("forward start")
	completion, err := m.client.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	result, err := ParseCompletion(m.sig, completion)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("fields", len(result)).Msg("forward done")
	return result, nil
}

func (m *ChainOfThought) validateInputs(inputs shared.Fields) error {
	for _, name := range m.sig.InputNames() {
		_, exist := inputs[name]
		if !exist {
			return fmt.Errorf("missing input field %q required by signature %q", name, m.sig.Raw)
		}
	}
	declared := map[string]bool{}
	for _, name := range m.sig.InputNames() {
		declared[name] = true
	}
	for name := range inputs {
		if !declared[name] {
			return fmt.Errorf("unexpected input field %q not declared by signature %q", name, m.sig.Raw)
		}
	}
	return nil
}
