package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arturo/voltz/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the learning arcade (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	return app.Run(dbPath)
}
