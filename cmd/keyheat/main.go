// Package main provides the CLI entrypoint for keyheat.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/keyheat/internal/config"
	"github.com/verte-zerg/keyheat/internal/keys"
	"github.com/verte-zerg/keyheat/internal/model"
	"github.com/verte-zerg/keyheat/internal/stats"
	"github.com/verte-zerg/keyheat/internal/statsui"
	"github.com/verte-zerg/keyheat/internal/store"
	"github.com/verte-zerg/keyheat/internal/textbank"
	"github.com/verte-zerg/keyheat/internal/tui"
	"github.com/verte-zerg/keyheat/internal/wordlist"
)

const (
	defaultMode      = model.ModeWords
	defaultWords     = 25
	defaultLevel     = textbank.LevelBeginner
	defaultReleaseMs = 150
	defaultTheme     = tui.ThemeDark
)

var (
	practiceMode      string
	practiceWords     int
	practiceLevel     string
	practiceWordList  string
	practiceReleaseMs int
	practiceTheme     string
	practiceKeyboard  bool

	reportFormat string
	reportColor  bool

	normalizeKey  string
	normalizeCode string

	resetYes bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keyheat",
		Short:         "Typing trainer with a per-key error heatmap",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "practice mode: words, sentence, level, lesson")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per text in words mode")
	rootCmd.Flags().StringVar(&practiceLevel, "level", defaultLevel, "level for level and lesson modes")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "custom word list file, one word per line")
	rootCmd.Flags().IntVar(&practiceReleaseMs, "release-ms", defaultReleaseMs, "how long a pressed key stays highlighted")
	rootCmd.Flags().StringVar(&practiceTheme, "theme", defaultTheme, "initial theme: dark or light")
	rootCmd.Flags().BoolVar(&practiceKeyboard, "keyboard", true, "show the virtual keyboard")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolvePracticeConfig(cmd, fileCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	words := textbank.Words
	if cfg.WordListPath != "" {
		words, err = wordlist.LoadWords(cfg.WordListPath, wordlist.Typeable)
		if err != nil {
			return fmt.Errorf("failed to load word list %s: %w", cfg.WordListPath, err)
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	m := tui.NewModel(cfg, st, textbank.New(words))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolvePracticeConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "level", &practiceLevel, fileCfg.Practice.Level)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)
	applyIntConfig(cmd, "release-ms", &practiceReleaseMs, fileCfg.Practice.ReleaseMs)
	applyStringConfig(cmd, "theme", &practiceTheme, fileCfg.UI.Theme)
	applyBoolConfig(cmd, "keyboard", &practiceKeyboard, fileCfg.UI.Keyboard)

	return model.Config{
		Mode:         strings.ToLower(strings.TrimSpace(practiceMode)),
		Words:        practiceWords,
		Level:        strings.ToLower(strings.TrimSpace(practiceLevel)),
		WordListPath: practiceWordList,
		ReleaseMs:    practiceReleaseMs,
		Theme:        strings.ToLower(strings.TrimSpace(practiceTheme)),
		ShowKeyboard: practiceKeyboard,
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Browse stats and the key heatmap",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	program := tea.NewProgram(statsui.NewModel(st), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print stats as text, json or yaml",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	cmd.Flags().StringVar(&reportFormat, "format", stats.FormatText, "output format: text, json, yaml")
	cmd.Flags().BoolVar(&reportColor, "color", false, "force ANSI colors in text output")
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	return writeReport(cmd.Context(), cmd.OutOrStdout(), st, reportFormat, reportColor)
}

func writeReport(ctx context.Context, w io.Writer, src stats.Source, format string, forceColor bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := stats.BuildReport(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return stats.Export(w, report, strings.ToLower(format), stats.ShouldUseColor(w, forceColor))
}

func newNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the keyboard label for a key event",
		Args:  cobra.NoArgs,
		RunE:  runNormalizeCmd,
	}
	cmd.Flags().StringVar(&normalizeKey, "key", "", "key value, e.g. \"a\", \"ArrowLeft\", \" \"")
	cmd.Flags().StringVar(&normalizeCode, "code", "", "physical key code, e.g. \"Numpad7\", \"Backquote\"")
	return cmd
}

func runNormalizeCmd(cmd *cobra.Command, _ []string) error {
	label := keys.Normalize(normalizeKey, normalizeCode)
	suffix := ""
	if !keys.InLayout(label) {
		suffix = "\t(not on keyboard)"
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", label, suffix); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all attempts and key stats",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().BoolVar(&resetYes, "yes", false, "skip confirmation")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	if !resetYes {
		ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), "Delete all attempts and key stats? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			logErrln("Aborted.")
			return nil
		}
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	if err := st.ResetAll(context.Background()); err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}
	logErrln("Stats cleared.")
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keyheat configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q            # words, sentence, level, lesson
# words = %d              # Words per text in words mode
# level = %q       # beginner, intermediate, advanced
# wordlist = ""           # Custom word list file, one word per line
# release-ms = %d        # How long a pressed key stays highlighted

[ui]
# theme = %q            # dark or light (toggled with Ctrl+T)
# keyboard = true         # Show the virtual keyboard (toggled with Ctrl+K)
`,
		defaultMode,
		defaultWords,
		defaultLevel,
		defaultReleaseMs,
		defaultTheme,
	)
}

func validateConfig(cfg model.Config) error {
	switch cfg.Mode {
	case model.ModeWords, model.ModeSentence, model.ModeLevel, model.ModeLesson:
	default:
		return fmt.Errorf("--mode must be one of words, sentence, level, lesson")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if !textbank.IsLevel(cfg.Level) {
		return fmt.Errorf("--level must be one of beginner, intermediate, advanced")
	}
	if cfg.ReleaseMs <= 0 {
		return fmt.Errorf("--release-ms must be > 0")
	}
	if cfg.Theme != tui.ThemeDark && cfg.Theme != tui.ThemeLight {
		return fmt.Errorf("--theme must be dark or light")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
