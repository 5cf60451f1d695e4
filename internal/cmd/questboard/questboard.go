// Package questboard parses dashboard flags and launches the service.
package questboard

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/louisbranch/questboard/internal/platform/cmd"
	"github.com/louisbranch/questboard/internal/platform/grpc"
	"github.com/louisbranch/questboard/internal/platform/i18n/catalog"
	"github.com/louisbranch/questboard/internal/progress"
	"github.com/louisbranch/questboard/internal/progress/storage/memory"
	"github.com/louisbranch/questboard/internal/progress/storage/sqlite"
	"github.com/louisbranch/questboard/internal/random"
	mcpservice "github.com/louisbranch/questboard/internal/services/mcp/service"
	"github.com/louisbranch/questboard/internal/services/web"
	"github.com/louisbranch/questboard/internal/services/web/platform/i18n"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds dashboard command configuration.
type Config struct {
	HTTPAddr     string `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	GRPCAddr     string `env:"GRPC_ADDR"`
	Storage      string `env:"STORAGE" envDefault:"memory"`
	SQLiteName   string `env:"SQLITE_NAME" envDefault:"questboard"`
	DailySize    int    `env:"DAILY_SIZE" envDefault:"3"`
	Seed         uint64 `env:"SEED"`
	Language     string `env:"LANGUAGE" envDefault:"en-US"`
	MCPTransport string `env:"MCP_TRANSPORT" envDefault:"http"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health listen address (empty disables)")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: memory or sqlite")
	fs.StringVar(&cfg.SQLiteName, "sqlite-name", cfg.SQLiteName, "Name of the in-memory sqlite database")
	fs.IntVar(&cfg.DailySize, "daily-size", cfg.DailySize, "Number of tasks on the daily board")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Selector seed (0 draws a random seed)")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "Default UI language")
	fs.StringVar(&cfg.MCPTransport, "mcp", cfg.MCPTransport, "MCP transport: http, stdio or off")
}

func (c Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Storage)) {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("storage %q is not supported", c.Storage)
	}
	if c.DailySize < 0 {
		return fmt.Errorf("daily size must not be negative: %d", c.DailySize)
	}
	if _, err := mcpservice.ParseTransport(c.MCPTransport); err != nil {
		return fmt.Errorf("mcp: %w", err)
	}
	return nil
}

// Run starts the dashboard service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceQuestboard, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	svc, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.close()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return svc.web.ListenAndServe(groupCtx)
	})
	if svc.health != nil {
		group.Go(func() error {
			return svc.health.Serve(groupCtx)
		})
		svc.health.MarkServing()
	}
	if svc.stdio != nil {
		group.Go(func() error {
			return svc.stdio.ServeStdio(groupCtx)
		})
	}
	return group.Wait()
}

type service struct {
	store  progress.Store
	web    *web.Server
	health *grpc.HealthServer
	stdio  *mcpservice.Server
}

func build(ctx context.Context, cfg Config) (*service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc := &service{store: store}
	if err := progress.Seed(ctx, store, progress.DefaultCatalog()); err != nil {
		svc.close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	seed, err := random.ResolveSeed(cfg.Seed)
	if err != nil {
		svc.close()
		return nil, err
	}
	log.Printf("questboard starting storage=%s daily_size=%d seed=%d", cfg.Storage, cfg.DailySize, seed)

	tracker, err := progress.NewTracker(store, progress.NewSelector(seed),
		progress.WithDailySize(cfg.DailySize),
		progress.WithTracer(otel.Tracer("questboard/progress")),
	)
	if err != nil {
		svc.close()
		return nil, fmt.Errorf("init tracker: %w", err)
	}

	transport, _ := mcpservice.ParseTransport(cfg.MCPTransport)
	var mcpServer *mcpservice.Server
	if transport != mcpservice.TransportOff {
		mcpServer, err = mcpservice.New(tracker, log.Default())
		if err != nil {
			svc.close()
			return nil, fmt.Errorf("init mcp: %w", err)
		}
	}
	webConfig := web.Config{
		HTTPAddr:  cfg.HTTPAddr,
		Tracker:   tracker,
		Languages: i18n.NewResolver(catalog.Default(), cfg.Language),
	}
	switch transport {
	case mcpservice.TransportHTTP:
		webConfig.MCP = mcpServer.HTTPHandler()
	case mcpservice.TransportStdio:
		svc.stdio = mcpServer
	}
	svc.web, err = web.NewServer(webConfig)
	if err != nil {
		svc.close()
		return nil, fmt.Errorf("init web server: %w", err)
	}

	if addr := strings.TrimSpace(cfg.GRPCAddr); addr != "" {
		svc.health, err = grpc.NewHealthServer(addr, entrypoint.ServiceQuestboard)
		if err != nil {
			svc.close()
			return nil, fmt.Errorf("init health server: %w", err)
		}
	}
	return svc, nil
}

func openStore(ctx context.Context, cfg Config) (progress.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage)) {
	case StorageSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLiteName)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case StorageMemory:
		return memory.New(), nil
	default:
		return nil, errors.New("storage backend is required")
	}
}

func (s *service) close() {
	if s.health != nil {
		s.health.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}
}
