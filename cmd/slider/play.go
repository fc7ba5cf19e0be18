package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slider/internal/config"
	"github.com/alexisbeaulieu97/slider/internal/tui"
)

type playOptions struct {
	LogFile string
}

// programRunner runs the interactive model; tests replace it to avoid taking
// over the terminal.
var programRunner = func(cmd *cobra.Command, model tea.Model) error {
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}

func newPlayCmd(root *rootFlags) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play <deck>",
		Short: "Play a deck as an interactive terminal carousel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log-file", "slider.log", "File receiving logs while the carousel owns the terminal")

	return cmd
}

func runPlay(cmd *cobra.Command, root *rootFlags, opts *playOptions, path string) error {
	deck, err := config.ParseDeck(path)
	if err != nil {
		return err
	}
	sliderOpts, err := deck.Slider.Options()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	log, err := root.newLogger(logFile, "play", "info")
	if err != nil {
		return err
	}
	log = log.With("deck", path)

	width, height := deck.Slider.Viewport.Size()
	model, err := tui.NewModel(tui.Options{
		Title:  deck.Name,
		Slides: deck.Views(),
		Slider: sliderOpts,
		Width:  width,
		Height: height,
		Logger: log,
	})
	if err != nil {
		log.Error(err, "failed to build carousel")
		return err
	}

	if err := programRunner(cmd, model); err != nil {
		log.Error(err, "carousel exited with error")
		return fmt.Errorf("run carousel: %w", err)
	}
	return nil
}
