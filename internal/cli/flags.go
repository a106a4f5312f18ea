package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/savefile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// slotValue is a pflag.Value that only accepts a valid slot number.
type slotValue int

func (s *slotValue) String() string { return strconv.Itoa(int(*s)) }
func (s *slotValue) Type() string   { return "slot" }

func (s *slotValue) Set(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", savefile.ErrInvalidSlot, v)
	}
	if err := savefile.ValidateSlot(n); err != nil {
		return err
	}
	*s = slotValue(n)
	return nil
}

// difficultyValue is a pflag.Value restricted to the known difficulty levels.
type difficultyValue domain.DifficultyLevel

func (d *difficultyValue) String() string { return string(*d) }
func (d *difficultyValue) Type() string   { return "difficulty" }

func (d *difficultyValue) Set(v string) error {
	level, err := domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(v)))
	if err != nil {
		return err
	}
	*d = difficultyValue(level)
	return nil
}

// addSlotFlag registers a required --slot flag.
func addSlotFlag(cmd *cobra.Command, p *int) {
	cmd.Flags().VarP((*slotValue)(p), "slot", "s", "Save slot (0-9)")
	_ = cmd.MarkFlagRequired("slot")
}

// addDifficultyFlag registers --difficulty with a default taken from config.
func addDifficultyFlag(fs *pflag.FlagSet, p *domain.DifficultyLevel, def domain.DifficultyLevel) {
	*p = def
	fs.VarP((*difficultyValue)(p), "difficulty", "d", "Difficulty: recruit, veteran, elite or historical")
}

func completeDifficulty(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{
		string(domain.DifficultyRecruit), string(domain.DifficultyVeteran),
		string(domain.DifficultyElite), string(domain.DifficultyHistorical),
	}, cobra.ShellCompDirectiveNoFileComp
}
