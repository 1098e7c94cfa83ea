package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/intervals/internal/config"
	"github.com/verte-zerg/intervals/internal/model"
	"github.com/verte-zerg/intervals/internal/table"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved timer presets",
	}
	cmd.AddCommand(newPresetSaveCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE:  runPresetListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE:  runPresetRmCmd,
	})
	return cmd
}

func newPresetSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save work/rest/repetitions under a name",
		Args:  cobra.ExactArgs(1),
		RunE:  runPresetSaveCmd,
	}
	addTimerFlags(cmd, &saveFlags)
	return cmd
}

func runPresetSaveCmd(cmd *cobra.Command, args []string) error {
	timerCfg, err := config.FromMinutes(saveFlags.work, saveFlags.rest, saveFlags.repetitions)
	if err != nil {
		return err
	}
	st, err := openStoreFn()
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.SavePreset(cmd.Context(), model.Preset{Name: args[0], Config: timerCfg}); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q\n", args[0]); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runPresetListCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStoreFn()
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	presets, err := st.ListPresets(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}
	if len(presets) == 0 {
		logErrf("No presets saved. Create one with: intervals preset save <name> --work 8 --rest 2\n")
		return nil
	}
	for _, line := range presetTable(presets) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func presetTable(presets []model.Preset) []string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{
			p.Name,
			model.Snapshot{RemainingSeconds: p.Config.WorkSeconds}.Clock(),
			model.Snapshot{RemainingSeconds: p.Config.RestSeconds}.Clock(),
			strconv.Itoa(p.Config.Repetitions),
		})
	}
	return table.Format([]string{"Name", "Work", "Rest", "Reps"}, rows, map[int]bool{1: true, 2: true, 3: true})
}

func runPresetRmCmd(cmd *cobra.Command, args []string) error {
	st, err := openStoreFn()
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.DeletePreset(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	return nil
}
