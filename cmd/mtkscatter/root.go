package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/moffa90/go-mtkscatter/config"
	"github.com/moffa90/go-mtkscatter/gpt"
	"github.com/moffa90/go-mtkscatter/scatter"
)

const inputPrompt = "Please input the GPT table. Press Enter on an empty line to finish."

// cli holds flag values and the logger shared by all commands.
type cli struct {
	verbose     bool
	inputPath   string
	outputPath  string
	profilePath string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "mtkscatter",
		Short: "Generate a MediaTek scatter file from a GPT table",
		Long: `Reads a GPT table listing, one partition per line:

  boot_a: Offset 0x100000 Length 0x2000000

and writes the scatter file used by the flashing tool. Without --input the
table is read from standard input until an empty line.

The file is only written when every line parses; an existing scatter file is
replaced atomically.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: c.initLogger,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: c.runGenerate,
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&c.inputPath, "input", "i", "", "Read the GPT table from a file instead of standard input")
	rootCmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Scatter file to write (default <platform>_Android_scatter.txt)")
	rootCmd.Flags().StringVarP(&c.profilePath, "config", "c", "", "Platform profile YAML file")

	rootCmd.AddCommand(newClassifyCmd(), newProfileCmd())

	return rootCmd
}

func (c *cli) initLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if c.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	return nil
}

func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	profile, err := c.loadProfile()
	if err != nil {
		return err
	}

	table, err := c.readTable(cmd)
	if err != nil {
		return err
	}
	c.logger.Debug("table parsed", zap.Int("partitions", table.Len()))

	gen := scatter.New(
		scatter.WithPlatform(profile),
		scatter.WithLogger(c.logger),
	)

	doc, err := gen.Build(table)
	if err != nil {
		return err
	}

	data, err := doc.Bytes()
	if err != nil {
		return err
	}

	out := c.outputPath
	if out == "" {
		out = profile.ScatterFileName()
	}

	if err := scatter.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	c.logger.Info("scatter file written", zap.String("path", out), zap.Int("bytes", len(data)))

	fmt.Fprintf(cmd.OutOrStdout(), "Output written to %s\n", out)
	return nil
}

func (c *cli) loadProfile() (*config.Platform, error) {
	if c.profilePath == "" {
		return config.Default(), nil
	}

	// config.Load falls back to defaults for a missing file; an explicit flag must exist.
	if _, err := os.Stat(c.profilePath); err != nil {
		return nil, fmt.Errorf("platform profile: %w", err)
	}

	p, err := config.Load(c.profilePath)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("platform profile loaded",
		zap.String("path", c.profilePath),
		zap.String("platform", p.Platform),
		zap.String("project", p.Project),
	)
	return p, nil
}

func (c *cli) readTable(cmd *cobra.Command) (*gpt.Table, error) {
	if c.inputPath != "" {
		return gpt.Parse(c.inputPath)
	}

	fmt.Fprintln(cmd.OutOrStdout(), inputPrompt)
	return gpt.ParseReader(cmd.InOrStdin())
}
