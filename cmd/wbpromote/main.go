package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/wb-promote-cli/infrastructure/database/postgres"
	"github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb"
	"github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/promoteclient"
	"github.com/vfg2006/wb-promote-cli/infrastructure/repository"
	"github.com/vfg2006/wb-promote-cli/internal/config"
	"github.com/vfg2006/wb-promote-cli/internal/output"
	"github.com/vfg2006/wb-promote-cli/internal/usecases/optimizing"
	"github.com/vfg2006/wb-promote-cli/pkg/clierrors"
	"github.com/vfg2006/wb-promote-cli/pkg/log"
)

var version = "dev"

var (
	flagFrom   string
	flagTo     string
	flagIDs    []int64
	flagPretty bool

	flagStatuses    []int
	flagPaymentType string

	flagPlacement  string
	flagTargetCPA  float64
	flagMinCTR     float64
	flagMaxBid     int64
	flagMaxChanges int
	flagApply      bool

	flagTargetRunway float64
	flagMaxCPA       float64
	flagMinROAS      float64
)

func main() {
	configureLogger()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(clierrors.Render(os.Stderr, err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "wbpromote",
	Short: "WB Promote campaign toolkit",
	Long: `wbpromote inspects WB Promote advertising campaigns and plans bid and
budget changes. Every command is a single pass: resolve the period, fetch,
decide, emit a JSON document to stdout. Nothing is scheduled or persisted.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Consolidated campaign view for a period",
	RunE:  instrumented("snapshot", runSnapshot),
}

var bidsPlanCmd = &cobra.Command{
	Use:   "bids-plan",
	Short: "Plan (and optionally apply) bid changes for CPM campaigns",
	RunE:  instrumented("bids-plan", runBidsPlan),
}

var budgetPlanCmd = &cobra.Command{
	Use:   "budget-plan",
	Short: "Plan (and optionally apply) budget top-ups",
	RunE:  instrumented("budget-plan", runBudgetPlan),
}

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Campaign commands",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	RunE:  instrumented("campaigns list", runCampaignsList),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wbpromote version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "period start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "period end date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Int64SliceVar(&flagIDs, "ids", nil, "campaign ids (comma separated)")
	rootCmd.PersistentFlags().BoolVar(&flagPretty, "pretty", false, "indent the JSON output")

	snapshotCmd.Flags().IntSliceVar(&flagStatuses, "statuses", nil, "campaign statuses for discovery")

	bidsPlanCmd.Flags().StringVar(&flagPlacement, "placement", "auto", "placement to adjust: auto, search, recommendations, combined")
	bidsPlanCmd.Flags().Float64Var(&flagTargetCPA, "target-cpa", 0, "target cost per order, rubles")
	bidsPlanCmd.Flags().Float64Var(&flagMinCTR, "min-ctr", 0, "minimum acceptable CTR, percent")
	bidsPlanCmd.Flags().Int64Var(&flagMaxBid, "max-bid", 0, "bid ceiling, kopecks")
	bidsPlanCmd.Flags().IntVar(&flagMaxChanges, "max-changes", 0, "maximum number of changes in the plan (0 = no limit)")
	bidsPlanCmd.Flags().BoolVar(&flagApply, "apply", false, "submit the plan to the API")

	budgetPlanCmd.Flags().IntSliceVar(&flagStatuses, "statuses", nil, "campaign statuses for discovery")
	budgetPlanCmd.Flags().Float64Var(&flagTargetRunway, "target-runway", 0, "target budget runway, days")
	budgetPlanCmd.Flags().Float64Var(&flagMaxCPA, "max-cpa", 0, "skip campaigns with CPA above this, rubles")
	budgetPlanCmd.Flags().Float64Var(&flagMinROAS, "min-roas", 0, "skip campaigns with ROAS below this")
	budgetPlanCmd.Flags().BoolVar(&flagApply, "apply", false, "execute the suggested deposits")

	campaignsListCmd.Flags().IntSliceVar(&flagStatuses, "statuses", nil, "campaign statuses for discovery")
	campaignsListCmd.Flags().StringVar(&flagPaymentType, "payment-type", "", "filter by payment type (cpm, cpc)")

	campaignsCmd.AddCommand(campaignsListCmd)
	rootCmd.AddCommand(snapshotCmd, bidsPlanCmd, budgetPlanCmd, campaignsCmd, versionCmd)
}

// instrumented embrulha a execução de um comando com ID de correlação e
// medição de duração, no mesmo papel do middleware de logging de uma API
func instrumented(name string, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, _ := log.WithCorrelationID(context.Background())
		logger := log.ForContext(ctx).WithField("command", name)

		logger.Debug("wbpromote: command started")
		start := time.Now()

		err := run(cmd, args)

		if err != nil {
			logger.WithError(err).WithField("duration_ms", time.Since(start).Milliseconds()).
				Warn("wbpromote: command failed")
			return err
		}

		logger.WithField("duration_ms", time.Since(start).Milliseconds()).
			Debug("wbpromote: command finished")
		return nil
	}
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	service, cfg, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := service.Snapshot(optimizing.SnapshotOptions{
		CampaignIDs: flagIDs,
		Statuses:    flagStatuses,
		From:        flagFrom,
		To:          flagTo,
		Now:         time.Now(),
	})
	if err != nil {
		return err
	}

	return output.Emit(os.Stdout, result, prettyOutput(cfg))
}

func runBidsPlan(cmd *cobra.Command, args []string) error {
	service, cfg, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	opts := optimizing.BidsPlanOptions{
		CampaignIDs: flagIDs,
		From:        flagFrom,
		To:          flagTo,
		Placement:   flagPlacement,
		MaxChanges:  flagMaxChanges,
		Apply:       flagApply,
		Now:         time.Now(),
	}
	if cmd.Flags().Changed("target-cpa") {
		opts.TargetCPA = &flagTargetCPA
	}
	if cmd.Flags().Changed("min-ctr") {
		opts.MinCTR = &flagMinCTR
	}
	if cmd.Flags().Changed("max-bid") {
		opts.MaxBidKopecks = &flagMaxBid
	}

	result, err := service.BidsPlan(opts)
	if err != nil {
		return err
	}

	return output.Emit(os.Stdout, result, prettyOutput(cfg))
}

func runBudgetPlan(cmd *cobra.Command, args []string) error {
	service, cfg, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	opts := optimizing.BudgetPlanOptions{
		CampaignIDs: flagIDs,
		Statuses:    flagStatuses,
		From:        flagFrom,
		To:          flagTo,
		Apply:       flagApply,
		Now:         time.Now(),
	}
	if cmd.Flags().Changed("target-runway") {
		opts.TargetRunwayDays = &flagTargetRunway
	}
	if cmd.Flags().Changed("max-cpa") {
		opts.MaxCPARub = &flagMaxCPA
	}
	if cmd.Flags().Changed("min-roas") {
		opts.MinROAS = &flagMinROAS
	}

	result, err := service.BudgetPlan(opts)
	if err != nil {
		return err
	}

	return output.Emit(os.Stdout, result, prettyOutput(cfg))
}

func runCampaignsList(cmd *cobra.Command, args []string) error {
	service, cfg, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	campaigns, err := service.ListCampaigns(flagIDs, flagStatuses, flagPaymentType)
	if err != nil {
		return err
	}

	return output.Emit(os.Stdout, campaigns, prettyOutput(cfg))
}

// buildService monta a cadeia completa: config, cliente HTTP, cache local
// opcional e o serviço de otimização. A função de limpeza fecha a conexão
// com o banco quando houver uma.
func buildService() (*optimizing.Service, *config.Config, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, nil, clierrors.Newf(clierrors.ErrInternal, "failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	cleanup := func() {}

	var statsCache repository.StatsCacheRepository
	if cfg.StatsCache.Enabled {
		ctx := context.Background()
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			// Cache é acelerador, não dependência: sem banco o CLI segue na API
			logrus.WithError(err).Warn("wbpromote: stats cache disabled, could not connect to PostgreSQL")
		} else {
			cleanup = func() { conn.Close() }
			statsCache = repository.NewStatsCacheRepository(conn)

			if err := statsCache.EnsureSchema(); err != nil {
				logrus.WithError(err).Warn("wbpromote: stats cache disabled, could not ensure schema")
				statsCache = nil
			} else if cfg.StatsCache.RetentionDays > 0 {
				if removed, err := statsCache.DeleteOlderThan(cfg.StatsCache.RetentionDays); err != nil {
					logrus.WithError(err).Warn("wbpromote: stats cache retention sweep failed")
				} else if removed > 0 {
					logrus.WithField("rows", removed).Debug("wbpromote: stats cache retention sweep")
				}
			}
		}
	}

	client := promoteclient.NewClient(cfg)
	integrator := wb.NewIntegrator(cfg, client, statsCache)
	service := optimizing.NewService(cfg, integrator)

	return service, cfg, cleanup, nil
}

func prettyOutput(cfg *config.Config) bool {
	return flagPretty || cfg.App.Pretty
}

// configureLogger manda os logs para stderr: stdout é reservado ao documento
// JSON de resultado
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
