package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/culiacan/internal/cli/formatter"
	"github.com/alexanderramin/culiacan/internal/contract"
	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/savefile"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	var (
		slot       int
		difficulty domain.DifficultyLevel
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a fresh campaign in a save slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			view, err := slotView(ctx, app, slot)
			if err != nil {
				return err
			}
			if !view.Empty && !yes {
				ok, err := app.approve(
					fmt.Sprintf("Overwrite slot %d?", slot),
					describeSlot(view),
					fmt.Sprintf("slot %d is in use; pass --yes to overwrite it", slot),
				)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			sess, err := app.Campaign.NewCampaign(ctx, slot, difficulty)
			if err != nil {
				return slotError(slot, err)
			}
			st := sess.Status()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s campaign %s in slot %d (%s)\n\n",
				formatter.StyleGreen.Render("Started"), formatter.TruncID(st.CampaignID), slot, st.Difficulty)
			if m, ok := domain.MissionAt(st.MissionIndex); ok {
				fmt.Fprintln(out, formatter.FormatBriefing(m, st.Difficulty))
			}
			return nil
		},
	}

	addSlotFlag(cmd, &slot)
	addDifficultyFlag(cmd.Flags(), &difficulty, app.Config.Difficulty)
	_ = cmd.RegisterFlagCompletionFunc("difficulty", completeDifficulty)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Overwrite an occupied slot without asking")

	return cmd
}

func newSlotsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "slots",
		Aliases: []string{"ls"},
		Short:   "List all save slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Campaign.ListSlots(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSlots(views, app.now()))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	var slot int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show campaign progress and the pressure carried into the next mission",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Campaign.Load(cmd.Context(), slot)
			if err != nil {
				return slotError(slot, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCampaign(sess.Status(), sess.Progress()))
			return nil
		},
	}

	addSlotFlag(cmd, &slot)
	return cmd
}

func newMissionsCmd(app *App) *cobra.Command {
	var slot int

	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List the missions a campaign has unlocked",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Campaign.Load(cmd.Context(), slot)
			if err != nil {
				return slotError(slot, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMissions(sess.Progress()))
			return nil
		},
	}

	addSlotFlag(cmd, &slot)
	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var slot int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show every save written to a slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Campaign.SlotHistory(cmd.Context(), slot)
			if err != nil {
				return slotError(slot, err)
			}
			out := cmd.OutOrStdout()
			if entries == nil {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("The %s backend keeps no save history.", app.Config.Backend)))
				return nil
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("No saves recorded for slot %d.", slot)))
				return nil
			}
			fmt.Fprint(out, formatter.FormatHistory(entries, app.now()))
			return nil
		},
	}

	addSlotFlag(cmd, &slot)
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	var (
		slot int
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Erase a save slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			view, err := slotView(ctx, app, slot)
			if err != nil {
				return err
			}
			if view.Empty {
				fmt.Fprintf(out, "Slot %d is already empty.\n", slot)
				return nil
			}
			if !yes {
				ok, err := app.approve(
					fmt.Sprintf("Delete slot %d?", slot),
					describeSlot(view),
					fmt.Sprintf("refusing to delete slot %d without --yes", slot),
				)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			if err := app.Campaign.DeleteSlot(ctx, slot); err != nil {
				if errors.Is(err, savefile.ErrSlotEmpty) {
					fmt.Fprintf(out, "Slot %d is already empty.\n", slot)
					return nil
				}
				return slotError(slot, err)
			}
			fmt.Fprintf(out, "Deleted slot %d.\n", slot)
			return nil
		},
	}

	addSlotFlag(cmd, &slot)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

// approve asks for confirmation when a terminal is attached. Elsewhere it
// fails with refusal so scripts never block on a prompt.
func (a *App) approve(title, description, refusal string) (bool, error) {
	if !a.interactive() {
		return false, errors.New(refusal)
	}
	return a.confirm(title, description)
}

func slotView(ctx context.Context, app *App, slot int) (contract.SlotView, error) {
	views, err := app.Campaign.ListSlots(ctx)
	if err != nil {
		return contract.SlotView{}, err
	}
	for _, v := range views {
		if v.Number == slot {
			return v, nil
		}
	}
	return contract.SlotView{Number: slot, Empty: true}, nil
}

func describeSlot(v contract.SlotView) string {
	if v.Corrupt {
		return "The slot holds a save file that cannot be read."
	}
	return fmt.Sprintf("%s campaign at %s, %.0f%% complete.", v.Difficulty, v.MissionName, v.CompletionPct)
}
