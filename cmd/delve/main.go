// delve generates and explores depth-scaled dungeons in the terminal.
//
// Usage:
//
//	delve generate           - Generate one floor and print it
//	delve tables             - Show spawn caps and weights per depth
//	delve play               - Explore the dungeon in the terminal
//	delve serve              - Start SSH server for remote exploration
//	delve runs               - Browse the run journal
//	delve config init        - Write the default configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible dungeons
//	--db <dsn>            - Journal database (default: ~/.delve/delve.db)
//	--config <path>       - Custom dungeon config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Write logs to a rotating file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "delve",
	Short: "delve - depth-scaled dungeon generator and explorer",
	Long: `delve builds roguelike dungeon floors: rooms joined by corridors, filled
with monsters and items whose odds grow with depth.

Available commands:
  generate - Generate one floor and print it
  tables   - Show spawn caps and weights per depth
  play     - Explore the dungeon in your terminal
  serve    - Start SSH server for remote exploration
  runs     - Browse recorded runs
  config   - Write or show the dungeon configuration

Examples:
  delve generate --seed 42 --depth 4
  delve tables --to 10
  delve play --difficulty hard
  delve serve --ssh :2222
  delve runs`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.delve/delve.db", "Journal database path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dungeon config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of the terminal")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}
