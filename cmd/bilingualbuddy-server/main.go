package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/cj5427533/BilingualBuddy/internal/config"
	"github.com/cj5427533/BilingualBuddy/internal/provider"
	"github.com/cj5427533/BilingualBuddy/internal/provider/openai"
	"github.com/cj5427533/BilingualBuddy/internal/provider/rulebased"
	"github.com/cj5427533/BilingualBuddy/internal/repository"
	"github.com/cj5427533/BilingualBuddy/internal/server"
	"github.com/cj5427533/BilingualBuddy/internal/translate/papago"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("BUDDY_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	var answerProvider provider.Provider
	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, provider.DefaultMaxRetryAttempts)
		defer func() {
			_ = client.Close()
		}()
		answerProvider = client
	default:
		answerProvider = rulebased.NewProvider()
	}

	translator := papago.NewClient(papago.Config{
		ClientID:     cfg.Papago.ClientID,
		ClientSecret: cfg.Papago.ClientSecret,
	})

	handler := server.NewHandler(
		repository.NewAnswerRepository(answerProvider),
		repository.NewTranslateRepository(translator),
	)
	mux := handler.NewMux()

	log.Printf("Starting server on %s", cfg.Server.Address)
	return http.ListenAndServe(cfg.Server.Address, corsMiddleware(h2c.NewHandler(mux, &http2.Server{})))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
