// skyfall is a terminal game where the player dodges hazards falling from
// the sky.
//
// Usage:
//
//	skyfall play             - Start a game directly
//	skyfall menu             - Start the interactive menu
//	skyfall serve            - Start SSH server for remote play
//	skyfall scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyfall/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-skyfall/internal/games/skyfall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall - Dodge falling hazards in your terminal",
	Long: `Skyfall is a terminal arcade game: slide along the bottom of the
screen and dodge the hazards raining down from above. One touch ends
the run.

Available commands:
  play     - Start a game directly
  menu     - Interactive start menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  skyfall play
  skyfall play --difficulty hard
  skyfall menu
  skyfall serve --ssh :2222
  skyfall scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyfall/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
