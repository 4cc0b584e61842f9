package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/awais-ramzan/log-security-analyzer/internal/adapters/input"
	"github.com/awais-ramzan/log-security-analyzer/internal/adapters/output"
	"github.com/awais-ramzan/log-security-analyzer/internal/app"
)

var (
	cfgFile    string
	logFile    string
	outputPath string
	jsonOut    bool
	colorOut   bool
	serveAddr  string

	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "logsec",
	Short: "Brute-force detection for authentication logs",
	Long: `logsec analyzes a log file for failed authentication activity and
reports suspicious source IPs.

Detection Heuristics:
  - Threshold: total failed attempts per IP
  - Time-Window: failure bursts within a rolling duration
  - Usernames: distinct usernames attempted per IP (reconnaissance)`,

	SilenceUsage: true,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a log file and print the security report",
	Long: `Run all detection heuristics over the given log file and render
the report to the console or a file.

Examples:
  logsec analyze --log-file /var/log/auth.log
  logsec analyze -f ./access.log -o reports/scan.txt
  logsec analyze -f ./auth.log --json
  logsec analyze -f ./auth.log --serve :9090`,
	RunE: runAnalyze,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("logsec %s\n", Version)
		fmt.Printf("Commit:  %s\n", Commit)
		fmt.Printf("Built:   %s\n", BuildTime)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./config.json)")

	analyzeCmd.Flags().StringVarP(&logFile, "log-file", "f", "", "path to log file to analyze (required)")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "save report to file instead of stdout")
	analyzeCmd.Flags().BoolVar(&jsonOut, "json", false, "output the report as JSON")
	analyzeCmd.Flags().BoolVar(&colorOut, "color", false, "colorize the console report")
	analyzeCmd.Flags().StringVar(&serveAddr, "serve", "", "serve report metrics on this address after analysis (e.g. :9090)")
	_ = analyzeCmd.MarkFlagRequired("log-file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/logsec")
	}

	app.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("LOGSEC")
	viper.AutomaticEnv()
}

func setupLogging(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Malformed config is a hard failure; a missing file just means
	// defaults.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	setupLogging(viper.GetString("log_level"))

	cfg, err := app.Load(viper.GetViper())
	if err != nil {
		return err
	}

	log.Info().
		Str("source", logFile).
		Int("brute_force_threshold", cfg.Detection.BruteForceThreshold).
		Int("time_window_minutes", cfg.Detection.TimeWindowMinutes).
		Msg("logsec started")

	lines, err := input.NewFileReader().ReadLines(logFile)
	if err != nil {
		return err
	}

	report := app.NewDefaultAnalyzer(cfg).Analyze(lines, logFile)

	switch {
	case jsonOut:
		writer, err := output.NewJSONWriter(output.JSONWriterConfig{Stdout: true, Pretty: true})
		if err != nil {
			return fmt.Errorf("creating JSON writer: %w", err)
		}
		if err := writer.Write(report); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}
		if err := writer.Close(); err != nil {
			return err
		}
	case outputPath != "":
		if err := output.SaveReport(report, output.NewTextRenderer(false), outputPath); err != nil {
			return err
		}
		fmt.Printf("Report saved to: %s\n", outputPath)
	default:
		fmt.Print(output.NewTextRenderer(colorOut).Render(report))
	}

	if serveAddr != "" {
		exporter := output.NewReportExporter("logsec", report)
		metricsConfig := output.MetricsConfig{Addr: serveAddr, Path: "/metrics"}
		if err := exporter.StartServer(metricsConfig); err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer exporter.StopServer()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
