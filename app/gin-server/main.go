package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/parleyhq/parley/config"
	"github.com/parleyhq/parley/internal/api/handlers"
	"github.com/parleyhq/parley/internal/api/middleware"
	"github.com/parleyhq/parley/internal/api/routes"
	"github.com/parleyhq/parley/internal/cache"
	"github.com/parleyhq/parley/internal/logger"
	"github.com/parleyhq/parley/internal/providers/llm"
	sqliterepo "github.com/parleyhq/parley/internal/repositories/sqlite"
	"github.com/parleyhq/parley/internal/services"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	// Init conversation store (schema created if absent)
	if err := config.InitSQLite(); err != nil {
		log.Fatalf("SQLite init error: %v", err)
	}
	log.WithField("path", config.DBPath()).Info("conversation store ready")

	// Init optional history cache
	cacheEnabled, err := config.InitRedis()
	if err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	if cacheEnabled {
		log.Info("history cache enabled")
	}

	// Warm up the completion provider before accepting requests; loading a
	// backend is expensive and must happen once, not per request.
	ctx := context.Background()
	oracle, err := buildProvider(ctx)
	if err != nil {
		log.Fatalf("LLM provider init error: %v", err)
	}
	defer oracle.Close()

	repo := sqliterepo.NewConversationRepo(config.SQLiteDB)

	var hc cache.Cache
	if cacheEnabled {
		hc = cache.NewRedisCache(config.RedisClient)
	}

	svc := services.NewConversationService(repo, oracle, hc)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))
	routes.RegisterRoutes(r, routes.Deps{
		Conversation: handlers.NewConversationHandler(svc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}
	log.WithFields(logrus.Fields{"port": port}).Info("serving")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildProvider selects the completion backend from the env. Provider, model
// identifier, and endpoint are fixed at startup; the API never changes them.
func buildProvider(ctx context.Context) (llm.Provider, error) {
	model := os.Getenv("LLM_MODEL")

	switch kind := strings.ToLower(os.Getenv("LLM_PROVIDER")); kind {
	case "", "local", "openai":
		p := llm.NewOpenAICompat(os.Getenv("LLM_BASE_URL"), model)
		if err := p.Warmup(ctx); err != nil {
			return nil, err
		}
		// Local single-slot runtimes are not safe to invoke concurrently;
		// serialize unless the operator opts out.
		if os.Getenv("LLM_SERIALIZE") != "false" {
			return llm.Serialized(p), nil
		}
		return p, nil

	case "vertex":
		return llm.NewVertexGemini(ctx, os.Getenv("VERTEX_PROJECT_ID"), os.Getenv("VERTEX_LOCATION"), model)

	case "anthropic":
		maxTokens, _ := strconv.ParseInt(os.Getenv("LLM_MAX_TOKENS"), 10, 64)
		return llm.NewAnthropic(model, maxTokens), nil

	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", kind)
	}
}
