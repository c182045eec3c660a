package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweepcore/game"
)

var (
	log = logrus.New()

	boardConfig = game.NewBoardConfig()
	playConfig  = newSessionConfig()
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "sweepcore",
	Short: "Play Minesweeper in the terminal",
	Long: `sweepcore is a console Minesweeper game, played by hand or by
the computer.

Run with no arguments to play manually, entering "row col" to reveal a tile,
"f row col" to toggle a flag and "q" to quit
	sweepcore

Use the director flag to make the computer play for you
	sweepcore -d
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)

		board, err := playConfig.createBoard(boardConfig)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"width":  board.Width(),
			"height": board.Height(),
			"mines":  board.NumMines(),
			"seed":   board.Seed(),
		}).Info("starting game")

		s := &session{
			board: board,
			in:    cmd.InOrStdin(),
			out:   cmd.OutOrStdout(),
		}
		if playConfig.UseDirector {
			err = s.direct(playConfig.Delay)
		} else {
			err = s.play()
		}
		if err != nil {
			return err
		}

		if playConfig.Dump {
			return s.dump()
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.Out = os.Stderr

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&boardConfig.Width, "width", "w", boardConfig.Width, "Width of game board, in tiles")
	rootCmd.Flags().IntVarP(&boardConfig.Height, "height", "h", boardConfig.Height, "Height of game board, in tiles")
	rootCmd.Flags().IntVarP(&boardConfig.NumMines, "mines", "m", boardConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&boardConfig.Seed, "seed", 0, "Seed for mine placement (0 seeds from the clock)")

	rootCmd.Flags().BoolVarP(&playConfig.UseDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().DurationVar(&playConfig.Delay, "delay", 500*time.Millisecond, "Pause between computer moves")
	rootCmd.Flags().StringVar(&playConfig.LayoutPath, "layout", "", "Play the board saved in a snapshot file")
	rootCmd.Flags().BoolVar(&playConfig.Dump, "dump", false, "Print a snapshot of the board when the game ends")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
}
