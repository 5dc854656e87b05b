package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var seedFile string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available seeders",
	Args:  cobra.NoArgs,
	// Listing needs no configuration.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println("Available seeders:")
		for _, s := range listSeeders() {
			cmd.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run NAME",
	Short: "Run a single seeder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := getSeeder(args[0])
		if !ok {
			return fmt.Errorf("seeder not found: %s", args[0])
		}
		if seedFile != "" {
			fs, ok := s.(interface{ SetFile(string) })
			if !ok {
				return fmt.Errorf("seeder %s does not accept --file", s.Name())
			}
			fs.SetFile(seedFile)
		}
		return seed(cmd, s)
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every seeder in a single transaction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed(cmd, listSeeders()...)
	},
}

func seed(cmd *cobra.Command, list ...Seeder) error {
	db, err := connect()
	if err != nil {
		return err
	}

	counts, err := runSeeders(cmd.Context(), db, list...)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd.Printf("%s: %d inserted\n", name, counts[name])
	}
	return nil
}

func init() {
	runCmd.Flags().StringVar(&seedFile, "file", "", "external seed file (overrides embedded data)")
	rootCmd.AddCommand(listCmd, runCmd, allCmd)
}
