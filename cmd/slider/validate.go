package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slider/internal/config"
	"github.com/alexisbeaulieu97/slider/internal/transition"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <deck>",
		Short: "Check a deck file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd.ErrOrStderr(), "validate", "warn")
			if err != nil {
				return err
			}

			path := args[0]
			log.With("path", path).Debug("validating deck")
			deck, err := config.ParseDeck(path)
			if err != nil {
				log.Error(err, "deck is invalid")
				return err
			}
			opts, err := deck.Slider.Options()
			if err != nil {
				log.Error(err, "deck settings are invalid")
				return err
			}

			autoplay := "off"
			if opts.Autoplay {
				autoplay = fmt.Sprintf("every %s", opts.Delay)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "  name:       %s\n", deck.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "  slides:     %d\n", len(deck.Slides))
			fmt.Fprintf(cmd.OutOrStdout(), "  transition: %s (%s)\n", transition.NameOf(opts.Transition), opts.TransitionTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  autoplay:   %s, direction %s\n", autoplay, opts.Direction)
			fmt.Fprintf(cmd.OutOrStdout(), "  goto:       %s\n", opts.GotoPolicy)
			return nil
		},
	}

	return cmd
}
