package main

import (
	"context"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"sig-harness/llm"
	mcpserver "sig-harness/mcp-server"
	_ "sig-harness/shared"
)

func main() {
	ctx := context.Background()

	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		log.Error().Err(err).Msg("resolve model config failed")
		return
	}
	client, err := llm.NewClient(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("create model client failed")
		return
	}
	log.Info().Str("provider", cfg.Provider).Str("model", cfg.Model).Msg("create model client success")

	s := server.NewMCPServer("Signature Harness Mcp Server", "v1.0", server.WithToolCapabilities(true))
	srv := mcpserver.NewServer(client)
	s.AddTool(mcpserver.ExecuteSignatureTool, srv.HandleExecuteSignature)

	err = server.ServeStdio(s)
	if err != nil {
		log.Error().Err(err).Msg("serve stdio failed")
		return
	}
}
