package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/ledgerbrain/internal/accounts"
	"github.com/cleared-dev/ledgerbrain/internal/brain"
	"github.com/cleared-dev/ledgerbrain/internal/config"
	"github.com/cleared-dev/ledgerbrain/internal/id"
	"github.com/cleared-dev/ledgerbrain/internal/interpret"
	"github.com/cleared-dev/ledgerbrain/internal/journal"
	"github.com/cleared-dev/ledgerbrain/internal/logging"
	"github.com/cleared-dev/ledgerbrain/internal/model"
)

// project bundles everything a command needs from an initialized directory.
type project struct {
	root     string
	cfg      *config.Config
	chart    *accounts.Chart
	log      *logrus.Logger
	pipeline *brain.Pipeline
	store    *journal.Store
}

func openProject(repoDir string, logOut io.Writer) (*project, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, err
	}

	log := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)

	chart, err := accounts.LoadFile(resolve(root, cfg.Chart.Path))
	if err != nil {
		return nil, err
	}

	ids, err := id.ForStrategy(cfg.Posting.IDStrategy)
	if err != nil {
		return nil, err
	}

	pipeline, err := brain.New(
		brain.WithChart(chart),
		brain.WithIDSource(ids),
		brain.WithDefaultStatus(model.Status(cfg.Posting.DefaultStatus)),
		brain.WithLogger(log),
		brain.WithInterpretOptions(
			interpret.WithAmountDigitsForRate(cfg.Interpret.ReuseAmountDigitsForRate),
			interpret.WithDefaultGSTRate(cfg.Interpret.DefaultGSTRate),
		),
	)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"root":        root,
		"business_id": cfg.Business.ID,
		"accounts":    len(chart.All()),
	}).Debug("Opened project")

	return &project{
		root:     root,
		cfg:      cfg,
		chart:    chart,
		log:      log,
		pipeline: pipeline,
		store:    journal.NewStore(resolve(root, cfg.Ledger.Dir), chart),
	}, nil
}

// businessID picks the flag value when set, else the configured business.
func (p *project) businessID(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p.cfg.Business.ID == "" {
		return "", fmt.Errorf("no business id: set business.id in %s or pass --business", config.FileName)
	}
	return p.cfg.Business.ID, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
