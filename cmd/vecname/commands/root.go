// Package commands implements the vecname command line.
package commands

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/crimson-sun/vecname/internal/config"
	"github.com/crimson-sun/vecname/internal/engine"
	"github.com/crimson-sun/vecname/internal/engine/dictionary"
	"github.com/crimson-sun/vecname/internal/engine/keyword"
	"github.com/crimson-sun/vecname/internal/logging"
	"github.com/crimson-sun/vecname/internal/output"
)

// flagKeys maps command line flags onto config keys. A flag set on the
// command line beats the config file and the environment.
var flagKeys = map[string]string{
	"log-level":        "log.level",
	"log-json":         "log.json",
	"legacy-table":     "engine.legacy_table",
	"keyword-resolver": "engine.keyword_resolver",
	"format":           "output.format",
	"pretty":           "output.pretty",
	"verbosity":        "output.verbosity",
	"output":           "output.file",
}

// app is the state shared by every subcommand, filled in before it runs.
type app struct {
	cfg    config.Config
	eng    *engine.Engine
	logger *zap.Logger
}

// NewRootCmd builds the vecname command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "vecname",
		Short: "Classify reservoir simulation summary vector names",
		Long: `vecname places summary vector mnemonics (FOPT, WOPR:OP_1, ROFT, ...) into
their structural category and resolves their long names.

Examples:
  vecname classify WOPR RPR ROFTG     # classify names given as arguments
  vecname classify < vectors.txt      # classify one or more names per line
  vecname describe FOPT_DIFF          # print the long name
  vecname address "COFR:OP_1:10,12,3" # parse a summary address
  vecname list --category region      # dump dictionary entries`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("log-json", false, "log to stderr as JSON")
	pf.Bool("legacy-table", true, "merge the older keyword table into the dictionary")
	pf.String("keyword-resolver", "opm", "external keyword step (opm, none)")
	pf.StringP("format", "f", "json", "record format (json, yaml, text)")
	pf.Bool("pretty", false, "indent JSON records")

	root.AddCommand(
		newClassifyCmd(a),
		newDescribeCmd(a),
		newAddressCmd(a),
		newListCmd(a),
		newCategoriesCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New()
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.Init(cfg.Log.JSON, logging.ParseLevel(cfg.Log.Level))
	a.eng = buildEngine(cfg.Engine)
	a.logger.Debug("engine ready",
		zap.Int("entries", a.eng.Dictionary().Len()),
		zap.Bool("legacy_table", cfg.Engine.LegacyTable),
		zap.String("keyword_resolver", cfg.Engine.KeywordResolver))
	return nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}
	return nil
}

func buildEngine(cfg config.EngineConfig) *engine.Engine {
	if cfg.LegacyTable && cfg.KeywordResolver == "opm" {
		return engine.Default()
	}
	dict := dictionary.Default()
	if !cfg.LegacyTable {
		dict = dictionary.BuildPrimary()
	}
	var resolver keyword.Resolver
	if cfg.KeywordResolver == "opm" {
		resolver = keyword.OPM
	}
	return engine.New(dict, resolver)
}

func (a *app) format() (output.Format, error) {
	return output.ParseFormat(a.cfg.Output.Format)
}

// encoder writes command results to w in the configured record format.
func (a *app) encoder(w io.Writer) (*output.Encoder, error) {
	f, err := a.format()
	if err != nil {
		return nil, err
	}
	return output.NewEncoder(w, f, a.cfg.Output.Pretty), nil
}
