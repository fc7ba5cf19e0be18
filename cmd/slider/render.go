package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noborus/ov/oviewer"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/slider/internal/config"
	"github.com/alexisbeaulieu97/slider/internal/logger"
	"github.com/alexisbeaulieu97/slider/internal/slider"
	"github.com/alexisbeaulieu97/slider/internal/tui"
	"github.com/alexisbeaulieu97/slider/internal/ui/components"
	"github.com/alexisbeaulieu97/slider/internal/view"
	slidererrors "github.com/alexisbeaulieu97/slider/pkg/errors"
)

const (
	formatText = "text"
	formatHTML = "html"
)

type renderOptions struct {
	Format string
	Slide  int
	Output string
	Pager  bool
}

// terminalWidth reports the width of stdout when it is a terminal.
var terminalWidth = func() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// pagerRunner shows content in the ov pager.
var pagerRunner = func(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)
	return root.Run()
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <deck>",
		Short: "Render one settled frame of a deck as text or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd.ErrOrStderr(), "render", "warn")
			if err != nil {
				return err
			}
			return runRender(cmd, log, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatText, "Output format (text, html)")
	cmd.Flags().IntVarP(&opts.Slide, "slide", "s", -1, "Slide to show; -1 keeps the deck's initial slide")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write the frame to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.Pager, "pager", false, "Show the frame in a pager")

	return cmd
}

func runRender(cmd *cobra.Command, log *logger.Logger, opts *renderOptions, path string) error {
	format := strings.ToLower(opts.Format)
	if format != formatText && format != formatHTML {
		return slidererrors.NewValidationError("format", fmt.Sprintf("unsupported format %q (expected text or html)", opts.Format), nil)
	}

	deck, err := config.ParseDeck(path)
	if err != nil {
		return err
	}
	sliderOpts, err := deck.Slider.Options()
	if err != nil {
		return err
	}
	if opts.Slide < -1 || opts.Slide >= len(deck.Slides) {
		return slidererrors.NewValidationError("slide",
			fmt.Sprintf("slide %d is outside [0, %d]", opts.Slide, len(deck.Slides)-1), nil)
	}

	width, height := deck.Slider.Viewport.Size()
	toTerminal := opts.Output == "" && !opts.Pager
	theme := components.MonochromeTheme()
	if toTerminal {
		if tw, ok := terminalWidth(); ok {
			width = max(tw-2, 1)
			theme = components.DefaultTheme()
		}
	}

	// A static frame never autoplays; virtual time settles the transition.
	sliderOpts.Autoplay = false
	sched := slider.NewManualScheduler()
	c, err := slider.New(len(deck.Slides), sliderOpts, slider.Deps{
		Scheduler: sched,
		Measurer:  slider.FixedMeasurer{Width: float64(width), Height: float64(height)},
		Logger:    log,
	})
	if err != nil {
		return err
	}
	c.Mount()
	defer c.Unmount()
	if opts.Slide >= 0 && opts.Slide != c.State().ActiveIndex {
		c.Goto(opts.Slide)
		sched.Advance(sliderOpts.SettleDelay)
	}

	var buf bytes.Buffer
	switch format {
	case formatHTML:
		if err := view.RenderPage(&buf, deck.Name, view.Build(c, deck.Views())); err != nil {
			return err
		}
	default:
		buf.WriteString(tui.RenderText(c, deck.Name, deck.Views(), width, height, theme))
		buf.WriteString("\n")
	}

	log.With("format", format).With("slide", c.State().ActiveIndex).Debug("frame rendered")
	return writeFrame(cmd.OutOrStdout(), opts, buf.Bytes())
}

func writeFrame(out io.Writer, opts *renderOptions, frame []byte) error {
	switch {
	case opts.Output != "":
		if err := os.WriteFile(opts.Output, frame, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	case opts.Pager:
		return pagerRunner(string(frame))
	default:
		_, err := out.Write(frame)
		return err
	}
}
