// Command invoke runs one handler against a single event read from stdin,
// the way a function runtime would, and prints the response envelope.
//
//	echo '{"httpMethod":"GET","queryStringParameters":{"subject":"math"}}' | invoke -handler lesson-likes
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"school_portal/internal/app"
	"school_portal/internal/config"
	"school_portal/internal/handler"
	"school_portal/internal/logger"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	name := flag.String("handler", "", "handler to invoke: contacts, lesson-likes, messages or news")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.LoadConfig()

	zl, err := logger.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ev, err := readEvent(os.Stdin)
	if err != nil {
		zl.Fatal("Failed to read event", zap.Error(err))
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		zl.Fatal("Failed to load DB config", zap.Error(err))
	}
	dbCfg.MaxConns = 1

	ctx := context.Background()
	pool, err := config.ConnectDB(ctx, dbCfg, zl)
	if err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	handlers := app.NewHandlers(pool, zl)
	h, ok := handlers.Lookup(*name)
	if !ok {
		zl.Fatal("Unknown handler",
			zap.String("handler", *name),
			zap.String("available", strings.Join(handlers.Names(), ", ")),
		)
	}

	out, err := json.MarshalIndent(h.Handle(ctx, ev), "", "  ")
	if err != nil {
		zl.Fatal("Failed to encode response", zap.Error(err))
	}
	fmt.Println(string(out))
}

func readEvent(r io.Reader) (handler.Event, error) {
	var ev handler.Event
	raw, err := io.ReadAll(r)
	if err != nil {
		return ev, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return ev, nil
	}
	if err := json.Unmarshal(raw, &ev); err != nil {
		return ev, fmt.Errorf("invalid event JSON: %w", err)
	}
	return ev, nil
}
