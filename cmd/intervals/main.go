// Package main provides the CLI entrypoint for intervals.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/intervals/internal/config"
	"github.com/verte-zerg/intervals/internal/engine"
	"github.com/verte-zerg/intervals/internal/logging"
	"github.com/verte-zerg/intervals/internal/model"
	"github.com/verte-zerg/intervals/internal/plain"
	"github.com/verte-zerg/intervals/internal/sound"
	"github.com/verte-zerg/intervals/internal/store"
	"github.com/verte-zerg/intervals/internal/tui"
)

const maxLogFiles = 20

// timerFlags holds the settings shared by the root and preset save commands.
type timerFlags struct {
	work        int
	rest        int
	repetitions int
}

var (
	runFlags    timerFlags
	runPreset   string
	runPlain    bool
	runNoSound  bool
	runDebug    bool
	saveFlags   timerFlags
	tickPeriod  = time.Second
	openStoreFn = func() (*store.Store, error) { return store.Open(config.DefaultDBPath()) }
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "intervals",
		Short:         "Interval training timer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTimerCmd,
	}

	addTimerFlags(rootCmd, &runFlags)
	rootCmd.Flags().StringVar(&runPreset, "preset", "", "load a saved preset")
	rootCmd.Flags().BoolVar(&runPlain, "plain", false, "print one line per second instead of the full-screen UI")
	rootCmd.Flags().BoolVar(&runNoSound, "no-sound", false, "disable the end-of-stage beep")
	rootCmd.Flags().BoolVar(&runDebug, "debug", false, "write debug logs")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPresetCmd())

	return rootCmd
}

func addTimerFlags(cmd *cobra.Command, flags *timerFlags) {
	cmd.Flags().IntVar(&flags.work, "work", config.DefaultWorkMinutes, "work stage length in minutes")
	cmd.Flags().IntVar(&flags.rest, "rest", config.DefaultRestMinutes, "rest stage length in minutes")
	cmd.Flags().IntVar(&flags.repetitions, "repetitions", config.DefaultRepetitions, "number of stage switches")
}

func runTimerCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logPath, err := logging.Initialize(runDebug, config.DefaultLogDir(), maxLogFiles)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if logPath != "" {
		logErrf("Debug logs: %s\n", logPath)
	}

	timerCfg, err := resolveTimerConfig(cmd, fileCfg)
	if err != nil {
		return err
	}

	eng := engine.New(timerCfg)
	eng.Subscribe(logTransitions(eng.Snapshot()))
	alerter := newAlerter(fileCfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlainTimer(ctx, eng, alerter)
	}

	m := tui.NewModel(eng, alerter)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	go tui.Drive(ctx, tickPeriod, program.Send)
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func runPlainTimer(ctx context.Context, eng *engine.Engine, alerter *sound.Alerter) error {
	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()
	runner := &plain.Runner{Engine: eng, Out: os.Stdout, Alerter: alerter, Width: width}
	return runner.Run(ctx, ticker.C)
}

// resolveTimerConfig applies defaults < config file < preset < explicit flags.
func resolveTimerConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.TimerConfig, error) {
	applyIntConfig(cmd, "work", &runFlags.work, fileCfg.Timer.Work)
	applyIntConfig(cmd, "rest", &runFlags.rest, fileCfg.Timer.Rest)
	applyIntConfig(cmd, "repetitions", &runFlags.repetitions, fileCfg.Timer.Repetitions)

	if runPreset != "" {
		preset, err := loadPreset(cmd.Context(), runPreset)
		if err != nil {
			return model.TimerConfig{}, err
		}
		applyPresetConfig(cmd, preset.Config)
	}

	return config.FromMinutes(runFlags.work, runFlags.rest, runFlags.repetitions)
}

// applyPresetConfig fills flags the user did not set from a preset.
// Presets are saved from whole minutes.
func applyPresetConfig(cmd *cobra.Command, cfg model.TimerConfig) {
	work := cfg.WorkSeconds / 60
	rest := cfg.RestSeconds / 60
	reps := cfg.Repetitions
	applyIntConfig(cmd, "work", &runFlags.work, &work)
	applyIntConfig(cmd, "rest", &runFlags.rest, &rest)
	applyIntConfig(cmd, "repetitions", &runFlags.repetitions, &reps)
}

func loadPreset(ctx context.Context, name string) (model.Preset, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openStoreFn()
	if err != nil {
		return model.Preset{}, fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	preset, err := st.GetPreset(ctx, name)
	if err != nil {
		return model.Preset{}, fmt.Errorf("failed to load preset: %w", err)
	}
	return preset, nil
}

func newAlerter(fileCfg config.FileConfig) *sound.Alerter {
	threshold := config.DefaultBeepBelow
	if fileCfg.Timer.BeepBelow != nil {
		threshold = *fileCfg.Timer.BeepBelow
	}
	soundOn := !runNoSound
	if fileCfg.Timer.Sound != nil && !*fileCfg.Timer.Sound {
		soundOn = false
	}
	var player sound.Player = sound.Silent{}
	if soundOn {
		player = sound.NewSystem()
	}
	return sound.NewAlerter(player, threshold)
}

func logTransitions(initial model.Snapshot) engine.Listener {
	prev := initial
	return func(snap model.Snapshot) {
		if snap.Stage != prev.Stage || snap.Running != prev.Running || snap.RepetitionsLeft != prev.RepetitionsLeft {
			logging.Logger.Debug("timer state changed",
				"stage", snap.Stage.String(),
				"remaining", snap.RemainingSeconds,
				"repetitions_left", snap.RepetitionsLeft,
				"running", snap.Running,
			)
		}
		prev = snap
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
		if err := os.WriteFile(path, []byte(config.DefaultTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
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

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
