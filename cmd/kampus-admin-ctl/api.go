package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kampus/admin-console/internal/adapters/kampusapi"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// runPingAPI builds only the API client; Redis is not needed to probe the API.
func runPingAPI(cmdCtx *commandContext, _ []string) error {
	api, err := kampusapi.New(kampusapi.Config{
		BaseURL: cmdCtx.Config.API.BaseURL,
		Timeout: cmdCtx.Config.API.Timeout,
		Logger:  cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("build api client: %w", err)
	}
	return pingAPI(cmdCtx.Ctx, cmdCtx.Stdout, api, api.BaseURL())
}

func pingAPI(ctx context.Context, w io.Writer, api pinger, baseURL string) error {
	start := time.Now()
	if err := api.Ping(ctx); err != nil {
		if werr := writef(w, "API %s unreachable: %v\n", baseURL, err); werr != nil {
			return werr
		}
		return fmt.Errorf("ping api: %w", err)
	}
	return writef(w, "API %s reachable (%s)\n", baseURL, time.Since(start).Round(time.Millisecond))
}
