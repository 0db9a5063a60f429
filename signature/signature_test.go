package signature_test

import (
	"strings"
	"testing"

	"sig-harness/signature"
)

func TestParse(t *testing.T) {
	t.Run("accepted forms", func(t *testing.T) {
		testCases := []struct {
			text    string
			inputs  []string
			outputs []string
		}{
			{"question -> answer", []string{"question"}, []string{"answer"}},
			{"context, question -> answer", []string{"context", "question"}, []string{"answer"}},
			{"  document  ->  summary , title ", []string{"document"}, []string{"summary", "title"}},
			{"query_text: str -> score: float", []string{"query_text"}, []string{"score"}},
			{"a1, b2 -> c3", []string{"a1", "b2"}, []string{"c3"}},
		}
		for _, tc := range testCases {
			sig, err := signature.Parse(tc.text)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.text, err)
			}
			if got := strings.Join(sig.InputNames(), ","); got != strings.Join(tc.inputs, ",") {
				t.Errorf("Parse(%q) inputs = %s, want %s", tc.text, got, strings.Join(tc.inputs, ","))
			}
			if got := strings.Join(sig.OutputNames(), ","); got != strings.Join(tc.outputs, ",") {
				t.Errorf("Parse(%q) outputs = %s, want %s", tc.text, got, strings.Join(tc.outputs, ","))
			}
		}
	})

	t.Run("rejected forms", func(t *testing.T) {
		testCases := []string{
			"",
			"   ",
			"question",
			"question -> answer -> more",
			"-> answer",
			"question ->",
			"question, -> answer",
			"Question -> answer",
			"1question -> answer",
			"question -> answer, answer",
			"question -> question",
			"question: -> answer",
		}
		for _, text := range testCases {
			if _, err := signature.Parse(text); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", text)
			}
		}
	})

	t.Run("type hints", func(t *testing.T) {
		sig, err := signature.Parse("query: str -> score: float")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if sig.Inputs[0].Type != "str" || sig.Outputs[0].Type != "float" {
			t.Errorf("type hints = %s/%s, want str/float", sig.Inputs[0].Type, sig.Outputs[0].Type)
		}
		sig, err = signature.Parse("query -> score")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if sig.Inputs[0].Type != "str" {
			t.Errorf("default type = %s, want str", sig.Inputs[0].Type)
		}
	})

	t.Run("instructions", func(t *testing.T) {
		sig, err := signature.Parse("context, question -> answer")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		want := "Given the fields `context`, `question`, produce the fields `answer`."
		if got := sig.Instructions(); got != want {
			t.Errorf("Instructions() = %q, want %q", got, want)
		}
	})
}
