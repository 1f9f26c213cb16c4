package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/chatter/shortkey/internal/app"
	"github.com/chatter/shortkey/internal/config"
	"github.com/chatter/shortkey/internal/logger"
	"github.com/chatter/shortkey/internal/ui"
)

// version is set from build info or falls back to "dev"
var version = "dev"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:          "shortkey",
		Short:        "Keyboard shortcut engine demo",
		Long:         "shortkey runs a terminal demo of the shortcut engine: a home screen with an event log and a modal whose shortcuts live while it is open.",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}

			return runTUI(cmd, loader, cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default "+config.DefaultDir()+"/config.toml)")
	flags.String("log-level", "", "log level: debug, info, warn, error (empty disables logging)")
	flags.String("platform", "", "shortcut platform: auto, mac, other")

	root.AddCommand(newListCmd(&configFile))

	return root
}

func newListCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the demo shortcuts as resolved for this platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}

			w := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())

			return printShortcuts(w, cfg)
		},
	}
}

// loadConfig binds the command's flags into viper and loads the config.
func loadConfig(cmd *cobra.Command, file string) (*config.Loader, config.Config, error) {
	loader := config.NewLoader(file)
	v := loader.Viper()

	for key, flag := range map[string]string{
		config.KeyLogLevel: "log-level",
		config.KeyPlatform: "platform",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, config.Config{}, fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("loading config: %w", err)
	}

	for _, w := range cfg.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}

	return loader, cfg, nil
}

func runTUI(cmd *cobra.Command, loader *config.Loader, cfg config.Config) error {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Close()

	log.Info("starting", "version", version, "config", cfg.File, "platform", cfg.Platform)

	model := app.New(version, cfg, app.WithLogger(log), app.WithLoader(loader))

	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// printShortcuts writes one aligned line per demo shortcut.
func printShortcuts(w io.Writer, cfg config.Config) error {
	styles := ui.DefaultStyles()
	infos := app.DescribeShortcuts(cfg)

	nameWidth := 0
	for _, info := range infos {
		nameWidth = max(nameWidth, len(info.Name))
	}

	header := styles.Section.Render(fmt.Sprintf("%-6s %-*s %-18s %s", "SCOPE", nameWidth, "NAME", "DESCRIPTOR", "KEYS"))
	if _, err := fmt.Fprintln(w, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, info := range infos {
		var extra []string
		if !info.Enabled {
			extra = append(extra, styles.Dim.Render("disabled"))
		}

		if !info.Focus.IsZero() {
			extra = append(extra, styles.Disallowed.Render("not in "+info.Focus.String()))
		}

		line := fmt.Sprintf("%-6s %-*s %-18s %s",
			info.Scope,
			nameWidth, info.Name,
			info.Descriptor.String(),
			styles.KeyCaps(info.Label, !info.Enabled),
		)

		if len(extra) > 0 {
			line += "  " + strings.Join(extra, " ")
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing %s: %w", info.Name, err)
		}
	}

	return nil
}
