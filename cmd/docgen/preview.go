package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/chat-api-docs/internal/config"
	"github.com/JaimeStill/chat-api-docs/internal/routes"
	"github.com/JaimeStill/chat-api-docs/internal/server"
	"github.com/JaimeStill/chat-api-docs/pkg/middleware"
	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
	pkgroutes "github.com/JaimeStill/chat-api-docs/pkg/routes"
	"github.com/JaimeStill/chat-api-docs/web/docs"
)

func previewHandler(spec []byte, logger *slog.Logger) http.Handler {
	rs := routes.New(logger)

	rs.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/{$}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/docs", http.StatusFound)
		},
	})
	rs.RegisterGroup(docs.NewHandler(spec).Routes())
	logger.Debug("preview routes", "routes", rs.Patterns())

	return middleware.Apply(rs.Build(), middleware.Logger(logger), middleware.TrimSlash())
}

// preview serves the document until ctx is cancelled.
func preview(ctx context.Context, cfg *config.PreviewConfig, spec *openapi.Spec, logger *slog.Logger) error {
	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal spec: %w", err)
	}

	logger.Info("preview available", "url", fmt.Sprintf("http://%s/docs", cfg.Addr()))
	return server.New(cfg, previewHandler(data, logger), logger).Run(ctx)
}
