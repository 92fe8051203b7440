// DocMatrix orchestrator server — serves the job callback API, runs the
// QA worker pool and durable workflows, and enforces retention.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/docmatrix-ai/docmatrix/ent"
	entdocument "github.com/docmatrix-ai/docmatrix/ent/document"
	"github.com/docmatrix-ai/docmatrix/pkg/answers"
	"github.com/docmatrix-ai/docmatrix/pkg/api"
	"github.com/docmatrix-ai/docmatrix/pkg/chunks"
	"github.com/docmatrix-ai/docmatrix/pkg/cleanup"
	"github.com/docmatrix-ai/docmatrix/pkg/config"
	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/database"
	"github.com/docmatrix-ai/docmatrix/pkg/executor"
	"github.com/docmatrix-ai/docmatrix/pkg/llm"
	"github.com/docmatrix-ai/docmatrix/pkg/locks"
	"github.com/docmatrix-ai/docmatrix/pkg/matrix"
	"github.com/docmatrix-ai/docmatrix/pkg/messaging"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
	"github.com/docmatrix-ai/docmatrix/pkg/queue"
	"github.com/docmatrix-ai/docmatrix/pkg/quota"
	"github.com/docmatrix-ai/docmatrix/pkg/storage"
	"github.com/docmatrix-ai/docmatrix/pkg/tools"
	"github.com/docmatrix-ai/docmatrix/pkg/version"
	"github.com/docmatrix-ai/docmatrix/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting DocMatrix",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Object storage
	store, err := storage.NewMinIOStore(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Object storage ready", "bucket", cfg.Storage.Bucket)

	// 4. Message bus and distributed locks
	bus, err := messaging.NewNATSBus(cfg.Messaging)
	if err != nil {
		slog.Error("Failed to connect to NATS", "url", cfg.Messaging.URL, "error", err)
		os.Exit(1)
	}
	defer bus.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisClient.Close() }()
	lockMgr := locks.NewManager(redisClient, cfg.Redis.LockTTL)
	slog.Info("Messaging and locks initialized", "nats_url", cfg.Messaging.URL, "redis_addr", cfg.Redis.Addr)

	// 5. Matrix engine and quota gate
	engine := matrix.NewEngine(dbClient.Client, bus, lockMgr)
	quotas := quota.NewService(dbClient.Client)

	// 6. Local QA path: LLM sidecar, hybrid search, grounding
	// Note: grpc.NewClient dials lazily; the connection happens on first RPC.
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := llm.NewClient(llmAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", llmAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	provider, err := chunks.NewOpenAIProvider(cfg.Search)
	if err != nil {
		slog.Error("Failed to initialize embedding provider", "error", err)
		os.Exit(1)
	}
	searcher := chunks.NewHybridSearcher(
		chunks.NewKeywordIndex(dbClient.DB()),
		chunks.NewVectorIndex(dbClient.DB()),
		provider,
		cfg.Search,
	)

	answerStore := answers.NewStore(dbClient.Client)
	loader := extractedContentLoader(dbClient.Client, store)

	// 7. Durable workflow engine
	temporalClient, err := workflow.NewClient(cfg.Workflow)
	if err != nil {
		slog.Error("Failed to connect to Temporal", "error", err)
		os.Exit(1)
	}
	defer temporalClient.Close()

	jobExecutor, err := executor.New(cfg.Executor)
	if err != nil {
		slog.Error("Failed to initialize job executor", "mode", cfg.Executor.Mode, "error", err)
		os.Exit(1)
	}
	broker := credentials.NewBroker(dbClient.Client)

	activities := &workflow.Activities{
		Client:   dbClient.Client,
		Executor: jobExecutor,
		Broker:   broker,
		Store:    store,
		Engine:   engine,
		ExecCfg:  cfg.Executor,
	}
	workerErrCh := make(chan error, 1)
	go func() {
		if err := workflow.RunWorker(temporalClient, cfg.Workflow, activities); err != nil {
			workerErrCh <- err
		}
	}()
	starter := workflow.NewStarter(temporalClient, cfg.Workflow)
	slog.Info("Workflow worker started", "task_queue", cfg.Workflow.TaskQueue)

	// 8. QA dispatcher and worker pool
	questions := qa.NewWorkspaceSource(
		getEnv("WORKSPACE_API_URL", "http://localhost:8081"),
		os.Getenv("WORKSPACE_API_KEY"),
	)
	dispatcher := qa.NewDispatcher(
		dbClient.Client, quotas, engine, answerStore,
		questions, llmClient, starter, loader,
		cfg.Defaults.AgentQACharThreshold, cfg.Defaults.GroundingMaxRetries,
	)

	pool := queue.NewPool(podID, dbClient.Client, cfg.Queue, bus, dispatcher, engine)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Retention janitor
	janitor := cleanup.NewService(cfg.Retention, dbClient.Client, broker, store)
	janitor.Start(ctx)

	// 10. Callback API server
	registry := tools.NewRegistry(tools.Deps{
		Client:    dbClient.Client,
		Store:     store,
		Searcher:  searcher,
		Answers:   answerStore,
		Engine:    engine,
		Validator: answers.NewValidator(loader),
	})
	httpServer := api.NewServer(dbClient.Client, dbClient.DB(), broker, registry, store)
	httpServer.SetWorkerPool(pool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("DocMatrix started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 11. Wait for shutdown signal or fatal component error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	case err := <-workerErrCh:
		slog.Error("Workflow worker error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: stop intake first, then the pool, then HTTP.
	janitor.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// extractedContentLoader loads a document's extracted markdown for
// citation grounding.
func extractedContentLoader(client *ent.Client, store storage.ObjectStore) answers.ContentLoader {
	return func(ctx context.Context, documentID int) (string, error) {
		doc, err := client.Document.Query().
			Where(entdocument.ID(documentID), entdocument.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load document %d: %w", documentID, err)
		}
		if doc.ExtractedContentPath == nil || *doc.ExtractedContentPath == "" {
			return "", fmt.Errorf("document %d has no extracted content", documentID)
		}
		data, err := store.Get(ctx, *doc.ExtractedContentPath)
		if err != nil {
			return "", fmt.Errorf("failed to read extracted content of document %d: %w", documentID, err)
		}
		return string(data), nil
	}
}
