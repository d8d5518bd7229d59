// Package wire provides dependency injection for the ivrprompts application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	cliadapter "github.com/example/ivrprompts/internal/adapters/cli"
	"github.com/example/ivrprompts/internal/adapters/filesystem"
	"github.com/example/ivrprompts/internal/adapters/sqlite"
	"github.com/example/ivrprompts/internal/app"
	"github.com/example/ivrprompts/internal/config"
	"github.com/example/ivrprompts/internal/db"
	"github.com/example/ivrprompts/internal/ports/primary"
)

var (
	promptService   primary.PromptService
	campaignService primary.CampaignService
	cfg             *config.Config
	logger          *zap.Logger
	verbose         bool
	once            sync.Once
)

// SetVerbose forces debug logging. It must be called before the first service is requested.
func SetVerbose(v bool) {
	verbose = v
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// PromptService returns the singleton PromptService instance.
func PromptService() primary.PromptService {
	once.Do(initServices)
	return promptService
}

// CampaignService returns the singleton CampaignService instance.
func CampaignService() primary.CampaignService {
	once.Do(initServices)
	return campaignService
}

// Sync flushes buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err = config.LoadConfig(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err = NewLogger(cfg.LogLevel, verbose)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Secondary adapters
	source := filesystem.NewFlowSource(cfg.FlowsDir, cfg.AudioDir)
	reader := filesystem.NewCampaignCSVReader()
	campaignRepo := sqlite.NewCampaignRepository(database)
	indexRepo := sqlite.NewPromptIndexRepository(database)

	batch := app.NewBatchExtractor(source, cfg.Workers, logger.Named("batch"))

	promptService = app.NewPromptService(source, campaignRepo, indexRepo, batch, logger.Named("prompts"))
	campaignService = app.NewCampaignService(reader, campaignRepo, source, logger.Named("campaigns"))

	logger.Debug("services initialized",
		zap.String("flows_dir", cfg.FlowsDir),
		zap.String("audio_dir", cfg.AudioDir),
		zap.String("db_path", cfg.DBPath),
		zap.Int("workers", cfg.Workers),
	)
}

// NewLogger builds the production logger at the given level. Verbose forces debug.
func NewLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	return zc.Build()
}

// PromptAdapter returns a new PromptAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func PromptAdapter() *cliadapter.PromptAdapter {
	return PromptAdapterWithOutput(os.Stdout)
}

// PromptAdapterWithOutput returns a new PromptAdapter writing to the given output.
func PromptAdapterWithOutput(out io.Writer) *cliadapter.PromptAdapter {
	once.Do(initServices)
	return cliadapter.NewPromptAdapter(promptService, out)
}

// CampaignAdapter returns a new CampaignAdapter writing to stdout.
func CampaignAdapter() *cliadapter.CampaignAdapter {
	return CampaignAdapterWithOutput(os.Stdout)
}

// CampaignAdapterWithOutput returns a new CampaignAdapter writing to the given output.
func CampaignAdapterWithOutput(out io.Writer) *cliadapter.CampaignAdapter {
	once.Do(initServices)
	return cliadapter.NewCampaignAdapter(campaignService, out)
}
