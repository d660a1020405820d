package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"urdusimplify/internal/config"
	"urdusimplify/internal/handler"
	"urdusimplify/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	generator, err := newGenerator(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error creating llm client: %v", err)
	}
	if closer, ok := generator.(io.Closer); ok {
		defer closer.Close()
	}

	simplifier := llm.NewSimplifier(generator, cfg.ModelTimeout)
	simplifyHandler := handler.NewSimplifyHandler(simplifier)

	r := handler.NewRouter(gin.Default(), simplifyHandler, cfg.AllowedOrigins)

	slog.Info("AllowOrigins URL:", "urls", cfg.AllowedOrigins)
	slog.Info("Backend running on http://localhost:"+cfg.Port, "provider", generator.Name(), "model_timeout", cfg.ModelTimeout)

	err = r.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newGenerator(ctx context.Context, cfg *config.Config) (llm.Generator, error) {
	primary, err := llm.NewGenerator(ctx, cfg.Provider, cfg.APIKeys[cfg.Provider], cfg.Model)
	if err != nil {
		return nil, err
	}

	if cfg.FallbackProvider == "" {
		return primary, nil
	}

	// LLM_MODEL names a model of the primary provider only.
	secondary, err := llm.NewGenerator(ctx, cfg.FallbackProvider, cfg.APIKeys[cfg.FallbackProvider], "")
	if err != nil {
		return nil, err
	}

	return &llm.Fallback{Primary: primary, Secondary: secondary}, nil
}
