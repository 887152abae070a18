package cli

import (
	"fmt"

	"github.com/prodcat/prodcat/internal/adapters/outbound/config"
	"github.com/prodcat/prodcat/internal/adapters/outbound/gitinfo"
	"github.com/prodcat/prodcat/internal/adapters/outbound/history"
	"github.com/prodcat/prodcat/internal/adapters/outbound/logging"
	"github.com/prodcat/prodcat/internal/adapters/outbound/storage"
	"github.com/prodcat/prodcat/internal/application"
	"github.com/prodcat/prodcat/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session bundles what one command invocation works with.
type session struct {
	cfg domain.Config
	log *zap.Logger
	svc *application.CatalogService
}

// openSession resolves configuration, wires the adapters and, when load is
// set, reads the catalog.
func openSession(cmd *cobra.Command, flags *globalFlags, load bool) (*session, error) {
	var loader domain.ConfigLoader = config.New()
	cfg, err := loader.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flags.catalogPath != "" {
		cfg.CatalogFile = flags.catalogPath
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	var opts []application.Option
	if cfg.HistoryEnabled() {
		opts = append(opts,
			application.WithHistory(history.ForCatalog(cfg.CatalogFile)),
			application.WithGitInfo(gitinfo.New()),
		)
	}

	svc := application.NewCatalogService(storage.New(cfg.CatalogFile), log, opts...)
	s := &session{cfg: cfg, log: log, svc: svc}
	if load {
		if err := svc.Load(); err != nil {
			s.close()
			return nil, err
		}
	}
	return s, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}
