package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/culiacan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *App) *cobra.Command {
	var (
		slot       int
		scriptPath string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted list of events against a saved campaign",
		Long: "Loads the campaign in --slot, feeds it the steps of a YAML or JSON script\n" +
			"and prints every signal the session emits. With --save the resulting\n" +
			"progress is written back to the slot.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(scriptPath)
			if err != nil {
				return fmt.Errorf("opening script: %w", err)
			}
			defer f.Close()
			sc, err := parseScript(f)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			sess, err := app.Campaign.Load(ctx, slot)
			if err != nil {
				return slotError(slot, err)
			}

			out := cmd.OutOrStdout()
			for _, r := range sc.run(sess) {
				fmt.Fprintf(out, "%s %s\n", formatter.Dim(fmt.Sprintf("%3d", r.Step)), r.Note)
				for _, sig := range r.Signals {
					fmt.Fprintf(out, "    %s\n", formatter.FormatSignal(sig))
				}
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatHUD(sess.Status()))

			if !save {
				return nil
			}
			if err := app.Campaign.Save(ctx, slot, sess); err != nil {
				return slotError(slot, err)
			}
			fmt.Fprintf(out, "Saved to slot %d.\n", slot)
			return nil
		},
	}

	addSlotFlag(cmd, &slot)
	cmd.Flags().StringVar(&scriptPath, "script", "", "Path to a YAML or JSON script")
	_ = cmd.MarkFlagRequired("script")
	cmd.Flags().BoolVar(&save, "save", false, "Write the resulting progress back to the slot")
	return cmd
}
