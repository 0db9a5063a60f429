// Package harness glues the command-line contract to signature execution:
// argv carries a task specification and a JSON object of input fields, stdout
// carries the result fields or a {"error": ...} envelope.
package harness

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"sig-harness/llm"
	"sig-harness/predict"
	"sig-harness/shared"
	"sig-harness/signature"
)

// MissingArgsMessage is the fixed envelope text for an argv underflow.
const MissingArgsMessage = "Missing signature or input"

// ClientFactory defers provider construction until the arguments are
// decoded, an argv underflow or malformed payload never opens a network
// client.
type ClientFactory func(ctx context.Context) (llm.Client, error)

// Execute runs one signature against the given client and returns the
// result fields.
func Execute(ctx context.Context, client llm.Client, sigText string, inputs shared.Fields) (shared.Fields, error) {
	sig, err := signature.Parse(sigText)
	if err != nil {
		return nil, err
	}
	mod := predict.NewChainOfThought(sig, client)
	return mod.Forward(ctx, inputs)
}

// Run implements the process contract. args is argv without the program
// name. The return value is the process exit code:
//
//	0 — success, result JSON on stdout
//	1 — recognized failure, {"error": ...} envelope on stdout
//	2 — malformed JSON input, nothing on stdout
func Run(ctx context.Context, args []string, newClient ClientFactory, stdout io.Writer) int {
	if len(args) < 2 {
		writeJSON(stdout, shared.ErrorEnvelope(MissingArgsMessage))
		return 1
	}
	sigText := args[0]
	inputs, err := shared.DecodeFields(args[1])
	if err != nil {
		log.Error().Err(err).Msg("input is not a JSON object")
		return 2
	}

	client, err := newClient(ctx)
	if err != nil {
		writeJSON(stdout, shared.ErrorEnvelope(err.Error()))
		return 1
	}
	result, err := Execute(ctx, client, sigText, inputs)
	if err != nil {
		log.Error().Err(err).Msg("signature execution failed")
		writeJSON(stdout, shared.ErrorEnvelope(err.Error()))
		return 1
	}
	writeJSON(stdout, result)
	return 0
}

func writeJSON(w io.Writer, v any) {
	data, err := shared.EncodeJSON(v)
	if err != nil {
		// Fields marshalling only fails on non-serializable values, which
		// DecodeFields cannot produce.
		data, _ = shared.EncodeJSON(shared.ErrorEnvelope(err.Error()))
	}
	fmt.Fprintln(w, data)
}
