package main

import (
	"fmt"
	"os"

	"github.com/TheLeggett/Summer-Breeze/config"
	"github.com/TheLeggett/Summer-Breeze/internal/app"
	"github.com/TheLeggett/Summer-Breeze/internal/deployer"
	"github.com/TheLeggett/Summer-Breeze/internal/shell"
	"github.com/TheLeggett/Summer-Breeze/internal/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose    int
		configPath string
		tool       *app.App
	)

	root := &cobra.Command{
		Use:   "summer-breeze",
		Short: "A friendly CLI tool for managing SummerCart64",
		Long: `Summer Breeze manages ROM files and menu assets on a SummerCart64
by driving the vendor sc64deployer binary.

Drop .z64/.n64/.v64 files into the roms directory next to the binary,
menu builds into menu_versions, and mp3s into menu_music. Run without
arguments for the interactive menu.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(configPath, verbose)
			if err != nil {
				return err
			}
			tool = a
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			tool.MainMenu()
		},
	}
	root.PersistentFlags().IntVarP(&verbose, "verbose", "v", config.InfoVerbose,
		"Log verbosity level between 1 (error) and 5 (trace)")
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a config override file (yaml or json)")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		&cobra.Command{
			Use: "status", Aliases: []string{"s"},
			Short: "Show device and SD card status",
			Run:   func(cmd *cobra.Command, args []string) { tool.Status() },
		},
		&cobra.Command{
			Use: "local", Aliases: []string{"l"},
			Short: "List ROMs in the local directory",
			Run:   func(cmd *cobra.Command, args []string) { tool.ListLocal() },
		},
		&cobra.Command{
			Use: "cart", Aliases: []string{"c"},
			Short: "List ROMs on the SD card",
			Run:   func(cmd *cobra.Command, args []string) { tool.ListCart() },
		},
		&cobra.Command{
			Use: "compare", Aliases: []string{"diff", "d"},
			Short: "Show ROMs not yet on the cart",
			Run:   func(cmd *cobra.Command, args []string) { tool.Compare() },
		},
		&cobra.Command{
			Use: "upload", Aliases: []string{"u"},
			Short: "Interactive upload to the cart",
			Run:   func(cmd *cobra.Command, args []string) { tool.Upload() },
		},
		&cobra.Command{
			Use: "quick", Aliases: []string{"q"},
			Short: "Quick upload from local ROMs",
			Run:   func(cmd *cobra.Command, args []string) { tool.QuickUpload() },
		},
		&cobra.Command{
			Use: "menu", Aliases: []string{"m"},
			Short: "Update the SC64 menu on the cart",
			Run:   func(cmd *cobra.Command, args []string) { tool.UpdateMenu() },
		},
		&cobra.Command{
			Use: "music", Aliases: []string{"bgm"},
			Short: "Set menu background music",
			Run:   func(cmd *cobra.Command, args []string) { tool.Music() },
		},
		&cobra.Command{
			Use: "rtc", Aliases: []string{"clock", "time"},
			Short: "Sync the RTC clock with system time",
			Run:   func(cmd *cobra.Command, args []string) { tool.SyncRTC() },
		},
		&cobra.Command{
			Use: "browse", Aliases: []string{"sd"},
			Short: "Browse SD card contents",
			Run:   func(cmd *cobra.Command, args []string) { tool.Browse() },
		},
		// Short help alias; cobra already provides help, -h, and --help.
		&cobra.Command{
			Use: "h", Hidden: true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
			Run:               func(cmd *cobra.Command, args []string) { _ = cmd.Root().Help() },
		},
	)

	return root
}

// buildApp assembles configuration, logging, the deployer client, and the
// interactive prompter for one invocation.
func buildApp(configPath string, verbose int) (*app.App, error) {
	var cfg *config.Config
	if configPath != "" {
		fileCfg, err := config.NewConfigFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	} else {
		cfg = config.NewConfig(nil)
	}
	// CLI verbosity wins over the config file.
	cfg.Merge(&config.ConfigOverride{LogLvl: util.Pointer(verbose)})

	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main").With().Str("run_id", uuid.NewString()).Logger()
	logger.Debug().
		Str("deployer", cfg.DeployerPath).
		Str("roms", cfg.RomsDir).
		Msg("summer-breeze initializing")

	runner := deployer.NewExecRunner(cfg.DeployerPath, cfg.InstallDir)
	client := deployer.NewClient(runner)

	prompter := shell.NewPrompter(os.Stdin, os.Stdout)
	prompter.WatchInterrupts()

	return app.New(cfg, client, prompter, os.Stdout), nil
}
