package cmd

import (
	"context"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/elseano/nspin/pkg/spinner"
	"github.com/elseano/nspin/pkg/term"
	"github.com/elseano/nspin/pkg/util"
	"github.com/fatih/color"
	"github.com/logrusorgru/aurora"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagDebug    bool
	flagNoColor  bool
	flagFrames   string
	flagCharSet  string
	flagInterval int
	flagFormat   []string
	flagDuration time.Duration
	flagCols     int
)

func Execute(ctx context.Context, version string, gitCommit string) error {
	rootCmd := NewRootCmd()
	rootCmd.Version = version + " (" + gitCommit + ")"

	return rootCmd.ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nspin",
		Short:         "Animated terminal spinners",
		Long:          `nspin shows one or more spinners, each on its own line, with a label and elapsed time`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&flagDebug, "debug", false, "Write debugging info to debug.log")
	flags.BoolVar(&flagNoColor, "no-color", false, "Disable styling")
	flags.StringVar(&flagFrames, "frames", "", "Comma separated frame glyphs")
	flags.StringVar(&flagCharSet, "charset", "", "Named frame set ("+strings.Join(charSetNames(), ", ")+")")
	flags.IntVar(&flagInterval, "interval", 0, "Milliseconds between frames")
	flags.StringSliceVar(&flagFormat, "format", nil, "Styles applied to the glyph, in order (e.g. cyan,underline)")
	flags.DurationVar(&flagDuration, "duration", 3*time.Second, "How long the scenario runs")
	flags.IntVar(&flagCols, "cols", 0, "Truncate spinner lines to this many columns (default terminal width)")

	rootCmd.AddCommand(
		newRunCmd(),
		newBasicCmd(),
		newStyledCmd(),
		newLongCmd(),
		newMultiCmd(),
		newStylesCmd(),
	)

	return rootCmd
}

func setup() error {
	if flagDebug {
		logFile, err := os.Create("debug.log")
		if err != nil {
			return err
		}

		util.RedirectLogger(logFile)
		util.SetDebug(true)
	}

	if flagNoColor || termenv.EnvColorProfile() == termenv.Ascii {
		color.NoColor = true
	}

	return nil
}

// spinnerOptions puts flags the user set after a scenario's own defaults, so they win.
func spinnerOptions(cmd *cobra.Command, defaults ...spinner.Option) []spinner.Option {
	flags := cmd.Flags()

	var termOpts []term.Option
	if flags.Changed("cols") {
		termOpts = append(termOpts, term.WithWidth(util.IntMin(flagCols, util.GetConsoleWidth())))
	}

	opts := append([]spinner.Option{
		spinner.WithOutput(term.Detect(cmd.OutOrStdout(), termOpts...)),
		spinner.WithColors(aurora.NewAurora(!color.NoColor)),
	}, defaults...)

	if flags.Changed("charset") {
		opts = append(opts, spinner.WithCharSet(flagCharSet))
	}

	if flags.Changed("frames") {
		opts = append(opts, spinner.WithFrames(splitFrames(flagFrames)...))
	}

	if flags.Changed("interval") {
		opts = append(opts, spinner.WithInterval(time.Duration(flagInterval)*time.Millisecond))
	}

	if flags.Changed("format") {
		opts = append(opts, spinner.WithFormat(flagFormat...))
	}

	return opts
}

func splitFrames(s string) []string {
	frames := []string{}

	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			frames = append(frames, f)
		}
	}

	return frames
}

func charSetNames() []string {
	names := []string{}
	for name := range spinner.CharSets {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
