package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arturo/voltz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the learner profile and scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		p := s.Profiles().Load()
		if !p.Registered() {
			fmt.Println("No profile yet. Run voltz to start onboarding.")
			return nil
		}

		sep := strings.Repeat("─", 40)

		fmt.Println(sep)
		fmt.Printf("Name:            %s\n", p.Name)
		fmt.Printf("Language:        %s\n", p.Language)
		fmt.Printf("Favorite topic:  %s\n", p.FavoriteTopic)
		fmt.Printf("Motivation:      %s\n", p.Motivation)
		fmt.Println(sep)
		fmt.Printf("Solar score:     %d / 100\n", p.SolarScore)
		fmt.Printf("Wind score:      %d / 100\n", p.WindScore)
		fmt.Printf("Project score:   %d / 100\n", p.CustomProjectScore)
		fmt.Println(sep)
		fmt.Printf("Visits:          %d\n", p.LoginCount)
		if p.LastLogin != "" {
			fmt.Printf("Last visit:      %s\n", p.LastLogin)
		}
		return nil
	},
}
