package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayCmd(app *App) *cobra.Command {
	var slot int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the campaign stored in a slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Campaign.Load(cmd.Context(), slot)
			if err != nil {
				return slotError(slot, err)
			}
			final, err := app.runProgram(newPlayModel(app, slot, sess))
			if err != nil {
				return fmt.Errorf("running play view: %w", err)
			}
			if pm, ok := final.(playModel); ok && pm.dirty() {
				fmt.Fprintf(cmd.OutOrStdout(), "Left slot %d with unsaved progress.\n", slot)
			}
			return nil
		},
	}

	addSlotFlag(cmd, &slot)
	return cmd
}
