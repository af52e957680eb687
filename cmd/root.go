// file: cmd/root.go
// version: 1.0.0
// guid: b6c8d0e2-f4a6-4b8c-9d0e-1f2a3b4c5d6e

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/music-unflattener/internal/config"
	"github.com/jdfalk/music-unflattener/internal/metadata"
	"github.com/jdfalk/music-unflattener/internal/organizer"
	"github.com/jdfalk/music-unflattener/internal/repair"
	"github.com/jdfalk/music-unflattener/internal/watcher"
)

var cfgFile string
var musicDir string
var verbose bool
var dryRun bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "music-unflattener",
	Short: "Move a flat directory of music files into an Artist/Album tree",
	Long: `Music Unflattener reads the embedded tags of the audio files in a flat
directory and moves each file into an Artist/Album folder structure derived
from those tags. Files whose destination already exists are skipped, never
overwritten, so re-running over a partially organized directory is safe.

Files without artist metadata are left in place and reported.`,
}

// unflattenCmd represents the unflatten command
var unflattenCmd = &cobra.Command{
	Use:   "unflatten",
	Short: "Unflatten the music directory",
	Long:  `Move every audio file in the music directory into its Artist/Album slot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.AppConfig.MusicDir == "" {
			return fmt.Errorf("music directory not specified")
		}

		runner := organizer.NewRunner(config.AppConfig.MusicDir, config.AppConfig.MusicDir, dryRun)
		sum, err := runner.Run()
		if err != nil {
			return fmt.Errorf("unflatten error: %w", err)
		}

		fmt.Printf("Total files:      %d\n", sum.Total)
		fmt.Printf("Files moved:      %d\n", sum.Moved)
		fmt.Printf("Image sidecars:   %d\n", sum.Images)
		fmt.Printf("Already existed:  %d\n", sum.Skipped)
		fmt.Printf("Errors:           %d\n", sum.Errors)
		return nil
	},
}

// repairCmd represents the repair command
var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Append missing audio extensions in an organized tree",
	Long: `Walk the Artist/Album tree and rename track files that are missing the
audio extension. Fixes files moved by an earlier run that had empty title
tags combined with a naming mistake.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.AppConfig.MusicDir == "" {
			return fmt.Errorf("music directory not specified")
		}

		if err := repair.Repair(config.AppConfig.MusicDir, dryRun); err != nil {
			return fmt.Errorf("repair error: %w", err)
		}
		return nil
	},
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count music directory entries by extension",
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.AppConfig.MusicDir == "" {
			return fmt.Errorf("music directory not specified")
		}

		counts, err := organizer.AggregateExtensions(config.AppConfig.MusicDir)
		if err != nil {
			return fmt.Errorf("stats error: %w", err)
		}

		exts := make([]string, 0, len(counts))
		for ext := range counts {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		for _, ext := range exts {
			label := ext
			if label == "" {
				label = "(none)"
			}
			fmt.Printf("%-10s %d\n", label, counts[ext])
		}
		return nil
	},
}

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag <file>",
	Short: "Set basic tags on an audio file",
	Long:  `Set the title, artist, and album tags on a single audio file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		artist, _ := cmd.Flags().GetString("artist")
		album, _ := cmd.Flags().GetString("album")

		if err := metadata.WriteBasicTags(args[0], title, artist, album); err != nil {
			return fmt.Errorf("tag error: %w", err)
		}
		fmt.Printf("Updated tags on %s\n", args[0])
		return nil
	},
}

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the music directory and unflatten new files",
	Long: `Watch the music directory for new audio files and run an unflatten pass
after events settle. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if config.AppConfig.MusicDir == "" {
			return fmt.Errorf("music directory not specified")
		}

		debounce, _ := cmd.Flags().GetDuration("debounce")
		w := watcher.New(func(sourceDir string) {
			runner := organizer.NewRunner(sourceDir, sourceDir, dryRun)
			if _, err := runner.Run(); err != nil {
				fmt.Printf("Warning: unflatten pass failed: %v\n", err)
			}
		}, debounce)

		if err := w.Start(config.AppConfig.MusicDir); err != nil {
			return fmt.Errorf("watch error: %w", err)
		}
		defer w.Stop()
		fmt.Printf("Watching %s (Ctrl-C to stop)\n", config.AppConfig.MusicDir)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.music-unflattener.yaml)")
	rootCmd.PersistentFlags().StringVar(&musicDir, "dir", "", "flat music directory to organize")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log missing optional tags")

	viper.BindPFlag("music_dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	unflattenCmd.Flags().BoolVar(&dryRun, "dry-run", false, "plan and report without touching the filesystem")
	repairCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report renames without performing them")
	watchCmd.Flags().Duration("debounce", watcher.DefaultDebounce, "settle period before a watch-triggered pass")

	tagCmd.Flags().String("title", "", "track title to set")
	tagCmd.Flags().String("artist", "", "artist to set")
	tagCmd.Flags().String("album", "", "album title to set")

	rootCmd.AddCommand(unflattenCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(watchCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".music-unflattener")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}
