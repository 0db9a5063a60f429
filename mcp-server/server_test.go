package mcpserver_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	mcpserver "sig-harness/mcp-server"
)

type fakeClient struct {
	completion string
	err        error
}

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.completion, nil
}

func (f *fakeClient) Model() string { return "fake-model" }

func callRequest(args map[string]any) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Name = "execute_signature"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	var builder strings.Builder
	for _, content := range res.Content {
		text, ok := content.(mcplib.TextContent)
		if ok {
			builder.WriteString(text.Text)
		}
	}
	return builder.String()
}

func TestHandleExecuteSignature(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := mcpserver.NewServer(&fakeClient{completion: "Reasoning: add.\nAnswer: 2"})
		res, err := s.HandleExecuteSignature(context.Background(), callRequest(map[string]any{
			"signature": "a -> answer",
			"input":     `{"a": 1}`,
		}))
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if res.IsError {
			t.Fatalf("result is an error: %s", resultText(t, res))
		}
		if !strings.Contains(resultText(t, res), `"answer":"2"`) {
			t.Errorf("result text = %s", resultText(t, res))
		}
	})

	t.Run("missing parameter", func(t *testing.T) {
		s := mcpserver.NewServer(&fakeClient{})
		res, err := s.HandleExecuteSignature(context.Background(), callRequest(map[string]any{
			"signature": "a -> answer",
		}))
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if !res.IsError {
			t.Error("want tool error for missing input parameter")
		}
	})

	t.Run("malformed input json", func(t *testing.T) {
		s := mcpserver.NewServer(&fakeClient{})
		res, err := s.HandleExecuteSignature(context.Background(), callRequest(map[string]any{
			"signature": "a -> answer",
			"input":     "not-json",
		}))
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if !res.IsError {
			t.Error("want tool error for malformed input")
		}
	})

	t.Run("execution failure", func(t *testing.T) {
		s := mcpserver.NewServer(&fakeClient{err: fmt.Errorf("boom")})
		res, err := s.HandleExecuteSignature(context.Background(), callRequest(map[string]any{
			"signature": "a -> answer",
			"input":     `{"a": 1}`,
		}))
		if err != nil {
			t.Fatalf("handler failed: %v", err)
		}
		if !res.IsError || !strings.Contains(resultText(t, res), "boom") {
			t.Errorf("want boom tool error, got %s", resultText(t, res))
		}
	})
}
