package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scalecode-solutions/pinyinseg"
	"github.com/scalecode-solutions/pinyinseg/internal/config"
	"github.com/scalecode-solutions/pinyinseg/internal/log"
)

// app carries the loaded configuration into the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	cleanup func()
}

func newApp() *app {
	return &app{v: viper.New()}
}

// close releases the log file. Cobra skips post-run hooks when a command
// fails, so it is called after Execute returns instead.
func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pinyinseg",
		Short: "Segment, normalize and sort pinyin",
		Long: `pinyinseg splits romanized Mandarin into words and tones, reduces toned
vowels to plain letters, sorts pinyin alphabetically and ranks homonyms.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./.pinyinseg.yaml or ~/.config/pinyinseg/config.yaml)")
	flags.String("table", "", "frequency table file (.txt or .yaml)")
	flags.String("source", config.SourceAuto, "frequency table source: auto, file, dict or none")
	flags.Bool("ignore-umlaut", false, "treat ü as u when ordering")
	flags.Bool("subscript", false, "render tones as subscript digits")
	flags.Duration("cache-ttl", 0, "memoize rank lookups for this long")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-file", "", "append logs to this file")

	// Bind flags to viper
	_ = a.v.BindPFlag("table", flags.Lookup("table"))
	_ = a.v.BindPFlag("source", flags.Lookup("source"))
	_ = a.v.BindPFlag("ignore_umlaut", flags.Lookup("ignore-umlaut"))
	_ = a.v.BindPFlag("subscript", flags.Lookup("subscript"))
	_ = a.v.BindPFlag("cache_ttl", flags.Lookup("cache-ttl"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.file", flags.Lookup("log-file"))

	root.AddCommand(
		newWordsCmd(a),
		newNormalizeCmd(a),
		newRankCmd(a),
		newSortCmd(a),
		newSubscriptCmd(a),
	)
	return root
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	defaults := config.Defaults()
	a.v.SetDefault("source", defaults.Source)
	a.v.SetDefault("log.level", defaults.Log.Level)

	a.v.SetEnvPrefix("PINYINSEG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		// Config lookup order:
		// 1. .pinyinseg.yaml (current directory)
		// 2. ~/.config/pinyinseg/config.yaml (user config)
		if _, err := os.Stat(".pinyinseg.yaml"); err == nil {
			a.v.SetConfigFile(".pinyinseg.yaml")
		} else {
			home, _ := os.UserHomeDir()
			a.v.AddConfigPath(filepath.Join(home, ".config", "pinyinseg"))
			a.v.SetConfigName("config")
			a.v.SetConfigType("yaml")
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.cfg.Log.File != "" {
		level, _ := log.ParseLevel(a.cfg.Log.Level)
		cleanup, err := log.Init(a.cfg.Log.File, level)
		if err != nil {
			return err
		}
		a.cleanup = cleanup
	}
	log.Debug(log.CatConfig, "configuration loaded", "file", a.v.ConfigFileUsed(), "command", cmd.Name())
	return nil
}

// input returns the command arguments joined by spaces, or standard input
// if there are none.
func input(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return b, nil
}

// renderWord appends word and its tone, as a subscript or a digit.
func renderWord(dst []byte, word []byte, tone pinyinseg.Tone, subscript bool) []byte {
	dst = append(dst, word...)
	if subscript {
		return pinyinseg.AppendSubscript(dst, tone)
	}
	if tone != pinyinseg.Neutral {
		dst = append(dst, tone.String()...)
	}
	return dst
}
