package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leon37/RoastMaster/internal/app"
	"github.com/leon37/RoastMaster/internal/config"
	"github.com/leon37/RoastMaster/internal/metrics"
	"github.com/leon37/RoastMaster/internal/model"
	"github.com/leon37/RoastMaster/internal/service"
)

// CLI flags
var (
	configDirFlag string
	styleFlag     string
	durationFlag  string
	verboseFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "roastctl",
	Short: "Run the roast pipeline locally without the web server",
	Long: `roastctl loads the same config.yaml as the server and runs the detectors
and the roast composer directly on a local file or message.

Examples:
  roastctl analyze ./me.jpg
  roastctl roast ./me.jpg --style savage
  roastctl standup ./party.png --duration long
  roastctl chat "you think you're funny?"
  roastctl comeback "your jokes are recycled"`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verboseFlag {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Print the feature summary of an image as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		features, err := analyze(args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, features)
	},
}

var roastCmd = &cobra.Command{
	Use:   "roast <image>",
	Short: "Roast an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		features, err := analyze(args[0])
		if err != nil {
			return err
		}
		roaster, err := newRoaster(cmd.Context())
		if err != nil {
			return err
		}
		style := model.StyleOrDefault(styleFlag)
		fmt.Fprintln(cmd.OutOrStdout(), roaster.Roast(cmd.Context(), features, style))
		return nil
	},
}

var standupCmd = &cobra.Command{
	Use:   "standup <image>",
	Short: "Perform a short stand-up routine about an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		features, err := analyze(args[0])
		if err != nil {
			return err
		}
		roaster, err := newRoaster(cmd.Context())
		if err != nil {
			return err
		}
		duration := model.DurationShort
		if durationFlag == string(model.DurationLong) {
			duration = model.DurationLong
		}
		for i, joke := range roaster.StandupRoutine(cmd.Context(), features, duration) {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, joke)
		}
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Chat with the sassy comedian",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roaster, err := newRoaster(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), roaster.Chat(cmd.Context(), strings.Join(args, " "), nil))
		return nil
	},
}

var comebackCmd = &cobra.Command{
	Use:   "comeback <message>",
	Short: "Get a quick comeback",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roaster, err := newRoaster(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), roaster.Comeback(cmd.Context(), strings.Join(args, " "), nil))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", ".", "Directory containing config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose logging to stderr")
	roastCmd.Flags().StringVarP(&styleFlag, "style", "s", string(model.StylePlayful), "Roast style: savage | playful | sarcastic | absurd")
	standupCmd.Flags().StringVarP(&durationFlag, "duration", "d", string(model.DurationShort), "Routine length: short | long")

	rootCmd.AddCommand(analyzeCmd, roastCmd, standupCmd, chatCmd, comebackCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfig(configDirFlag)
}

func analyze(path string) (*model.FeatureSummary, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}
	analyzer, err := app.NewAnalyzer(conf.Vision)
	if err != nil {
		return nil, err
	}
	return analyzer.Analyze(path)
}

func newRoaster(ctx context.Context) (*service.RoastService, error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.NewRoastService(ctx, conf.LLM, &metrics.NoopMetrics{})
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
