package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/elseano/nspin/pkg/spinner"
	"github.com/fatih/color"
	"github.com/kyokomi/emoji"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRunCmd() *cobra.Command {
	var final string

	runCmd := &cobra.Command{
		Use:   "run [label]",
		Short: "Spin with a label for --duration, then show the final text",
		Long:  "Labels and final text may contain emoji shortcodes such as :rocket:",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := ""
			if len(args) > 0 {
				label = args[0]
			}

			return handleError(cmd.ErrOrStderr(), spinFor(cmd, label, final, flagDuration))
		},
	}

	runCmd.Flags().StringVar(&final, "final", ":white_check_mark: Done!", "Text shown when the spinner stops")

	return runCmd
}

func newBasicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basic",
		Short: "A single default spinner",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := spinFor(cmd, "Processing...", ":white_check_mark: Done!", flagDuration)
			return handleError(cmd.ErrOrStderr(), err)
		},
	}
}

func newStyledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styled",
		Short: "A spinner with a styled glyph",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := spinFor(cmd, "Loading styled spinner...", ":art: Styled complete!", flagDuration,
				spinner.WithCharSet("circle"),
				spinner.WithInterval(120*time.Millisecond),
				spinner.WithFormat("cyan", "underline"),
			)

			return handleError(cmd.ErrOrStderr(), err)
		},
	}
}

func newLongCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "long",
		Short: "A spinner whose label reports progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), runLong(cmd))
		},
	}
}

func newMultiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "multi",
		Short: "Two spinners on their own lines, stopping at different times",
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleError(cmd.ErrOrStderr(), runMulti(cmd))
		},
	}
}

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List frame sets and style names",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			heading := color.New(color.Underline)

			heading.Fprintln(out, "Frame sets")
			for _, name := range charSetNames() {
				fmt.Fprintf(out, "  %-10s %v\n", name, spinner.CharSets[name])
			}

			heading.Fprintln(out, "\nStyles")
			for _, name := range spinner.StyleNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}

			return nil
		},
	}
}

func spinFor(cmd *cobra.Command, label, final string, d time.Duration, defaults ...spinner.Option) error {
	s, err := spinner.New(spinnerOptions(cmd, defaults...)...)
	if err != nil {
		return err
	}

	if err := s.Start(emoji.Sprint(label)); err != nil {
		return err
	}

	wait(cmd.Context(), d)

	return s.Stop(emoji.Sprint(final))
}

func runLong(cmd *cobra.Command) error {
	s, err := spinner.New(spinnerOptions(cmd,
		spinner.WithCharSet("quarters"),
		spinner.WithInterval(100*time.Millisecond),
	)...)
	if err != nil {
		return err
	}

	if err := s.Start("Starting long task..."); err != nil {
		return err
	}

	step := flagDuration / 10

	for progress := 10; progress <= 100; progress += 10 {
		if !wait(cmd.Context(), step) {
			break
		}

		s.UpdateText(fmt.Sprintf("Processing... %d%%", progress))
	}

	return s.Stop(emoji.Sprint(":white_check_mark: Task completed!"))
}

func runMulti(cmd *cobra.Command) error {
	first, err := spinner.New(spinnerOptions(cmd,
		spinner.WithCharSet("line"),
		spinner.WithInterval(100*time.Millisecond),
	)...)
	if err != nil {
		return err
	}

	second, err := spinner.New(spinnerOptions(cmd,
		spinner.WithCharSet("dots"),
		spinner.WithInterval(150*time.Millisecond),
	)...)
	if err != nil {
		return err
	}

	if err := first.Start("Downloading file 1..."); err != nil {
		return err
	}

	if err := second.Start("Downloading file 2..."); err != nil {
		first.Stop("")
		return err
	}

	started := time.Now()
	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		wait(ctx, flagDuration)
		return first.Stop(emoji.Sprint(":white_check_mark: File 1 downloaded!"))
	})

	g.Go(func() error {
		wait(ctx, flagDuration*5/3)
		return second.Stop(emoji.Sprint(":white_check_mark: File 2 downloaded!"))
	})

	if err := g.Wait(); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "2 downloads finished in %v\n", time.Since(started).Round(time.Millisecond))

	return nil
}

// wait blocks for d, returning false if ctx ends first.
func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
