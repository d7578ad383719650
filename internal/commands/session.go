package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/deeppockets-dev/deeppockets/internal/catalog"
	"github.com/deeppockets-dev/deeppockets/internal/config"
	"github.com/deeppockets-dev/deeppockets/internal/engine"
	"github.com/deeppockets-dev/deeppockets/internal/logging"
)

// session is the loaded profile plus a catalog with its edits applied and
// recommendations computed. Commands run one at a time against it.
type session struct {
	path    string
	cfg     *config.Config
	log     *logrus.Logger
	catalog *catalog.Catalog
	engine  *engine.Engine
	income  float64
}

func (o *rootOptions) profilePath() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.Path()
}

func openSession(cmd *cobra.Command, o *rootOptions) (*session, error) {
	path := o.profilePath()

	cfg, err := config.Load(path)
	missing := errors.Is(err, fs.ErrNotExist)
	switch {
	case missing:
		cfg = config.Default("", 0)
	case err != nil:
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	level := cfg.Logging.Level
	if env := os.Getenv("DEEPPOCKETS_LOG_LEVEL"); env != "" {
		level = env
	}
	if o.logLevel != "" {
		level = o.logLevel
	}
	log := logging.New(level, cmd.ErrOrStderr())
	if missing {
		log.WithField("path", path).Debug("no profile found, using defaults")
	}

	income := cfg.Profile.MonthlyIncome
	if cmd.Flags().Changed("income") {
		income = o.income
	}
	if err := checkAmount("monthly income", income); err != nil {
		return nil, err
	}

	cat := catalog.Default(catalog.WithLogger(log))
	for _, edit := range cfg.Edits() {
		if !cat.EditAssumption(edit.CategoryID, edit.Title, edit.Text) {
			log.WithFields(logrus.Fields{
				"category":   edit.CategoryID,
				"assumption": edit.Title,
			}).Warn("assumption edit not applied")
		}
	}

	eng := engine.New(engine.WithLogger(log))
	eng.Recompute(cat, income)

	return &session{
		path:    path,
		cfg:     cfg,
		log:     log,
		catalog: cat,
		engine:  eng,
		income:  income,
	}, nil
}

// checkAmount rejects negative and non-finite amounts.
func checkAmount(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number, got %v", what, v)
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %v", what, v)
	}
	return nil
}

// wholeDollars rounds for display only.
func wholeDollars(v float64) string {
	return "$" + displayAmount(v).StringFixed(0)
}

func cents(v float64) string {
	return "$" + displayAmount(v).StringFixed(2)
}

func displayAmount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
