package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/thronesquiz/internal/app"
	"github.com/abhisek/thronesquiz/internal/config"
	"github.com/abhisek/thronesquiz/internal/logger"
	"github.com/abhisek/thronesquiz/internal/portrait"
	"github.com/abhisek/thronesquiz/internal/quiz"
	"github.com/abhisek/thronesquiz/internal/thrones"
)

// deps are the collaborators every command builds from configuration.
type deps struct {
	cfg *config.Config
	log *zap.Logger
	api thrones.API
}

// loadDeps reads configuration, opens the log and builds the API client.
func loadDeps(cmd *cobra.Command) (*deps, error) {
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(config.Options{ConfigFile: cfgFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	client := thrones.NewClient(
		thrones.WithBaseURL(cfg.API.BaseURL),
		thrones.WithTimeout(cfg.API.Timeout),
		thrones.WithUserAgent(cfg.API.UserAgent),
		thrones.WithSaveObserver(thrones.SaveResponseLogger(log)),
	)

	return &deps{
		cfg: cfg,
		log: log,
		api: thrones.WithLogging(client, log),
	}, nil
}

func (d *deps) close() {
	_ = d.log.Sync()
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := loadDeps(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	opts := app.Options{
		API:           d.api,
		Game:          quiz.NewGame(nil),
		PortraitWidth: d.cfg.Portrait.Width,
		Logger:        d.log,
	}
	if d.cfg.Portrait.Enabled {
		opts.Portraits = portrait.NewFetcher(portrait.WithTimeout(d.cfg.API.Timeout))
	}

	d.log.Info("starting",
		zap.String("version", version),
		zap.String("api", d.cfg.API.BaseURL),
		zap.Bool("portraits", d.cfg.Portrait.Enabled),
	)
	return app.Run(opts)
}
