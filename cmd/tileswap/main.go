package main

import (
	"fmt"
	"os"
	"time"

	"github.com/plus3/tileswap/config"
	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
	"github.com/plus3/tileswap/render"
	"github.com/plus3/tileswap/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	configPath string
	seed       uint64
	iterations int32
	verbose    bool
	logFile    string

	flips []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tileswap",
		Short: "A 3x3x3 lights out puzzle",
		Long: `tileswap is a 3x3x3 cube of toggle tiles. Flipping a cube toggles it
and every cube touching it, diagonals included. Turn the whole cube white.

Run without a subcommand to open the game window.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "tileswap.yaml", "YAML config file; missing files use defaults")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed for scrambles (0 = from the clock)")
	flags.Int32Var(&opts.iterations, "iterations", 0, "random flips per randomize (overrides the config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	scrambleCmd := &cobra.Command{
		Use:   "scramble",
		Short: "Scramble a board without a window and print a report",
		Example: `  tileswap scramble --seed 42 --iterations 5
  tileswap scramble --iterations 0 --flip 1,1,1 --flip 0,0,0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScramble(cmd, opts)
		},
	}
	scrambleCmd.Flags().StringArrayVar(&opts.flips, "flip", nil, "flip x,y,z after scrambling (repeatable)")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "Write the effective configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, opts, args)
		},
	}

	root.AddCommand(playCmd, tuiCmd, scrambleCmd, configCmd)
	return root
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Puzzle.Seed = opts.seed
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Puzzle.Iterations = opts.iterations
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", opts.configPath, err)
	}
	return cfg, nil
}

// newLogger builds a production logger at info level, or a development one
// at debug level with verbose. Output goes to stderr unless logFile is set.
func newLogger(verbose bool, logFile string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		cfg.OutputPaths = []string{logFile}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func worldOptions(cfg *config.Config) game.Options {
	opts := game.DefaultOptions()
	opts.Iterations = cfg.Puzzle.Iterations
	opts.MaxIterations = cfg.Puzzle.MaxIterations
	opts.Seed = cfg.Puzzle.Seed
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	return opts
}

func runPlay(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(opts.verbose, opts.logFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	return render.Run(cfg, logger)
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI; only log when asked to a file.
	logger := zap.NewNop()
	if opts.logFile != "" {
		if logger, err = newLogger(opts.verbose, opts.logFile); err != nil {
			return err
		}
		defer logger.Sync()
	}

	world := game.NewWorld(ecs.NewComponentRegistry(), worldOptions(cfg), logger)
	return tui.Run(world, cfg.Controls.RotateStep)
}

func runScramble(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	flips := make([]puzzle.Coord, 0, len(opts.flips))
	for _, s := range opts.flips {
		c, err := puzzle.ParseCoord(s)
		if err != nil {
			return fmt.Errorf("--flip: %w", err)
		}
		flips = append(flips, c)
	}

	logger, err := newLogger(opts.verbose, opts.logFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	wopts := worldOptions(cfg)
	world := game.NewWorld(ecs.NewComponentRegistry(), wopts, logger)
	for _, c := range flips {
		world.Push(game.FlipAt(c))
		world.Tick(0)
	}

	report := newReport(world, wopts.Seed, flips)
	if err := report.Generate(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func runConfig(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return cfg.Save(args[0])
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
