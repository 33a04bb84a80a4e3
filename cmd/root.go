package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dotcommander/geoscore/internal/checks"
	"github.com/dotcommander/geoscore/internal/config"
	"github.com/dotcommander/geoscore/internal/engine"
	"github.com/dotcommander/geoscore/internal/geoapi"
	"github.com/dotcommander/geoscore/internal/identity"
	"github.com/dotcommander/geoscore/internal/outputters"
	"github.com/dotcommander/geoscore/internal/scoring"
)

var (
	apiBase      string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	exportFile   string
)

var rootCmd = &cobra.Command{
	Use:   "geoscore [url...]",
	Short: "GEO Score - generative engine optimization scorecards for websites",
	Long: `geoscore measures how visible a website is to generative-AI answer
engines. It submits each URL to a scoring service and renders a scorecard
with a 0-100 total, a category breakdown, suggestions, and history links.

When the scoring service is unreachable or errors, geoscore computes a local
estimate from independent signal checks and shows it together with the
service's error as a non-fatal warning.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		if err := runScore(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&apiBase, "api-base", "", "Scoring service API base URL (overrides config and GEOSCORE_APIBASE)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().StringVar(&exportFile, "export", "", "Also export the report as printable HTML to this file")

	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("export", rootCmd.PersistentFlags().Lookup("export"))
}

func initConfig() {
	for _, path := range config.ConfigFiles {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

// runScore scores every URL through one engine instance, so duplicate URLs
// in the argument list are suppressed by the engine's guard.
func runScore(urls []string) error {
	cfg, err := config.LoadConfig(apiBase)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	log := newLogger(cfg.Verbose)
	defer log.Sync()

	eng, err := buildEngine(cfg, log)
	if err != nil {
		return err
	}

	report := &engine.Report{StartTime: time.Now()}
	ctx := context.Background()

	for _, u := range urls {
		if host := identity.Hostname(u); cfg.SkipHost(host) {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Skipping %s (matches skipHosts)\n", u)
			}
			continue
		}
		snap, ok := eng.Compute(ctx, u)
		if !ok {
			log.Debug("calculation suppressed", zap.String("url", u))
			continue
		}
		report.Snapshots = append(report.Snapshots, snap)
	}

	outputter := outputters.NewOutputter(cfg)
	if err := outputter.Format(report, cfg.Format); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

// buildEngine wires the remote client and the local fallback scorer.
func buildEngine(cfg *config.Config, log *zap.Logger) (*engine.Engine, error) {
	client, err := geoapi.New(cfg.APIBase, cfg.TimeoutDuration(), log)
	if err != nil {
		return nil, fmt.Errorf("error creating scoring client: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	fallback := scoring.NewFallbackScorer(
		rand.New(rand.NewSource(seed)),
		checks.NewWikipedia(cfg.WikiBase, nil, log),
		checks.NewMarkupProbe(cfg.RelayBase, nil, log),
	)

	return engine.New(client, fallback, log), nil
}

// newLogger returns a development logger on stderr when verbose, otherwise
// a no-op logger.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{"stderr"}
	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
