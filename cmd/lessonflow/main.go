package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/tbxark/lessonflow/agent"
	"github.com/tbxark/lessonflow/config"
	"github.com/tbxark/lessonflow/document"
	"github.com/tbxark/lessonflow/server"
	"github.com/tbxark/lessonflow/types"
)

func main() {
	conf := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}
	cfg := config.MustLoad(*conf)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := startApp(ctx, cfg, logger); err != nil {
		logger.Error("lessonflow stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func startApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	temperature := cfg.OpenAI.Temperature
	maxTokens := cfg.OpenAI.MaxTokens
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      cfg.OpenAI.ApiKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Timeout:     cfg.OpenAI.Timeout,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
	if err != nil {
		return fmt.Errorf("init chat model: %w", err)
	}

	sessions, closeSessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	srv := server.New(
		logger,
		agent.NewChatModelLessonFlow(cm),
		sessions,
		document.NewPandocRenderer(cfg.Pandoc.Binary, cfg.Pandoc.PDFEngine),
		server.Options{GenerationTimeout: cfg.Listen.GenerationTimeout},
	)
	address := fmt.Sprintf("%s:%s", cfg.Listen.BindIP, cfg.Listen.Port)
	return srv.ListenAndServe(ctx, address, 10*time.Second)
}

func newSessionStore(ctx context.Context, cfg *config.Config) (agent.StateReadWriter, func(), error) {
	if cfg.Session.Backend != config.SessionRedis {
		return agent.NewMemoryStateReadWriter(), func() {}, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}
	cache := agent.NewRedisCache[types.SessionState](client, cfg.Session.TTL)
	return agent.NewCacheStateReadWriter(cache, "lessonflow:session"), func() { _ = client.Close() }, nil
}
