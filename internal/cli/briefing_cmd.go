package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/culiacan/internal/cli/formatter"
	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/spf13/cobra"
)

func newBriefingCmd(app *App) *cobra.Command {
	var difficulty domain.DifficultyLevel

	cmd := &cobra.Command{
		Use:   "briefing <mission-id|number>",
		Short: "Show a mission briefing",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, m := range domain.Missions() {
				ids = append(ids, string(m.ID)+"\t"+m.Name)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMission(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBriefing(m, difficulty))
			return nil
		},
	}

	addDifficultyFlag(cmd.Flags(), &difficulty, app.Config.Difficulty)
	_ = cmd.RegisterFlagCompletionFunc("difficulty", completeDifficulty)
	return cmd
}

// resolveMission accepts a mission id or its 1-based campaign number.
func resolveMission(arg string) (domain.Mission, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		m, ok := domain.MissionAt(n - 1)
		if !ok {
			return domain.Mission{}, fmt.Errorf("mission number %d out of range 1-%d", n, domain.MissionCount)
		}
		return m, nil
	}
	return domain.MissionByID(domain.MissionID(arg))
}
