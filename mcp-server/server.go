package mcpserver

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"sig-harness/harness"
	"sig-harness/llm"
	"sig-harness/shared"
)

// ExecuteSignatureTool mirrors the CLI contract over MCP so external
// processes can call the executor without spawning it per request.
var ExecuteSignatureTool = mcplib.NewTool("execute_signature",
	mcplib.WithDescription("Execute a task specification against a hosted language model with chain-of-thought prompting and return the output fields as JSON"),
	mcplib.WithString("signature",
		mcplib.Required(),
		mcplib.Description("The task specification, e.g. 'question -> answer'"),
	),
	mcplib.WithString("input",
		mcplib.Required(),
		mcplib.Description("A JSON-encoded object of the signature's input fields"),
	),
)

type Server struct {
	client llm.Client
}

func NewServer(client llm.Client) *Server {
	return &Server{client: client}
}

func (s *Server) HandleExecuteSignature(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	sigText, err := request.RequireString("signature")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	inputJSON, err := request.RequireString("input")
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	inputs, err := shared.DecodeFields(inputJSON)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	result, err := harness.Execute(ctx, s.client, sigText, inputs)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}

	data, err := shared.EncodeJSON(result)
	if err != nil {
		return mcplib.NewToolResultError(err.Error()), nil
	}
	return mcplib.NewToolResultText(data), nil
}
