package main

import (
	"context"
	"os"

	"sig-harness/harness"
	"sig-harness/llm"
	_ "sig-harness/shared"
)

func main() {
	ctx := context.Background()
	newClient := func(ctx context.Context) (llm.Client, error) {
		cfg, err := llm.ConfigFromEnv()
		if err != nil {
			return nil, err
		}
		return llm.NewClient(ctx, cfg)
	}
	os.Exit(harness.Run(ctx, os.Args[1:], newClient, os.Stdout))
}
