package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jrudowski/minesweep/console"
	"github.com/jrudowski/minesweep/director/constraint"
	"github.com/jrudowski/minesweep/game"
	"github.com/jrudowski/minesweep/scores"
)

var (
	gameConfig    = game.NewConfig()
	presetName    string
	seed          int64
	useDirector   = false
	verbose       = false
	bestTimesPath string
)

var rootCmd = &cobra.Command{
	Use:   "minesweep",
	Short: "Play manual or computer-driven Minesweeper in the terminal",
	Long: `minesweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play an easy board manually
	minesweep

Pick a preset or a custom board
	minesweep --preset hard
	minesweep -w 24 --height 20 -m 120

Use the director flag to make the computer play for you
	minesweep --director
`,
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		dimsChanged := cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || cmd.Flags().Changed("mines")
		usedPreset, note, err := applyPreset(&gameConfig, presetName, dimsChanged, cmd.Flags().Changed("preset"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if note != "" {
			fmt.Println(note)
		}

		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		gameConfig.Seed = seed

		if err := gameConfig.Validate(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		opts := console.Options{
			Config:     gameConfig,
			PresetName: usedPreset,
			StepDelay:  100 * time.Millisecond,
		}
		if useDirector {
			opts.Director = &constraint.Director{}
		}

		if table, err := scores.Load(bestTimesPath); err != nil {
			logrus.WithError(err).Warn("cannot load best times")
		} else {
			opts.BestTimes = table
		}

		if err := console.Run(opts); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// applyPreset resolves the preset against explicit dimension flags.
// Custom dimensions win over the preset (and don't compete for preset
// best times); the returned note tells the user when their --preset
// was overridden.
func applyPreset(config *game.Config, name string, dimsChanged, presetChanged bool) (usedPreset, note string, err error) {
	if dimsChanged {
		if presetChanged {
			note = fmt.Sprintf("custom dimensions given; ignoring --preset %s", name)
		}
		return "", note, nil
	}

	preset, ok := game.PresetByName(name)
	if !ok {
		return "", "", fmt.Errorf("unknown preset %q; choose easy, medium or hard", name)
	}
	preset.Apply(config)
	return name, "", nil
}

type gameModeValue game.Mode

func newGameModeValue(val game.Mode, p *game.Mode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

var gameModes = map[string]game.Mode{
	"classic": game.Classic,
	"safe":    game.Safe,
}

func (modeVal *gameModeValue) String() string {
	for name, mode := range gameModes {
		if mode == game.Mode(*modeVal) {
			return name
		}
	}
	return fmt.Sprint(*modeVal)
}

func (modeVal *gameModeValue) Set(value string) error {
	if mode, isValid := gameModes[value]; isValid {
		*modeVal = gameModeValue(mode)
		return nil
	}
	return fmt.Errorf("invalid game mode")
}

func (modeVal *gameModeValue) Type() string {
	return "game.Mode"
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "easy", "Difficulty preset: easy, medium or hard")
	rootCmd.Flags().Var(newGameModeValue(game.Classic, &gameConfig.Mode), "mode", `Game mode, controlling behaviour of the first reveal.
classic: mines are placed up front (first reveal can lose the game)
safe: mines are placed after the first reveal, never under or next to it`)
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Mine placement seed (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&gameConfig.SnapshotDir, "snapshots", "", "Directory to save finished-board snapshots to")
	rootCmd.Flags().StringVar(&bestTimesPath, "best-times", scores.DefaultPath(), "Path of the best-times file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
