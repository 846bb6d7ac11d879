package main

import (
	"os"

	"investorapi/cmd"
	"investorapi/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	log := logger.New()
	defer log.Sync()

	var deps *cmd.Dependencies
	root := &cobra.Command{
		Use:           "investorctl",
		Short:         "Load and report on investor commitments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			var err error
			deps, err = cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			c.SetContext(logger.NewContext(c.Context(), log))
			return nil
		},
	}

	root.AddCommand(
		newIngestCommand(func() *cmd.Dependencies { return deps }),
		newSummaryCommand(func() *cmd.Dependencies { return deps }),
		newStatsCommand(func() *cmd.Dependencies { return deps }),
	)

	err := root.Execute()
	if deps != nil {
		cmd.CloseDependencies(deps)
	}
	if err != nil {
		log.Errorw("command failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}
