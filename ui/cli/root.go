package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"vincit.fi/exif-renamer/common"
	"vincit.fi/exif-renamer/common/constants"
)

type rootFlags struct {
	logLevel   string
	configPath string
	noHistory  bool
}

func (s *rootFlags) params() *common.Params {
	return common.NewParams(s.logLevel, s.configPath, s.noHistory, "")
}

func NewRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Rename photos with their exposure settings",
		Long: `virpe appends the shutter speed, F-number, ISO and focal length read from
the EXIF block of an image to its file name, for example

  IMG_0001.JPG -> IMG_0001 1／200秒 F2.8 ISO400 50mm(f).JPG

Files whose name already contains "ISO" are left alone.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "logLevel", "", "Log level: ERROR, WARN, INFO, DEBUG or TRACE")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", common.DefaultConfigPath(), "Configuration file")
	rootCmd.PersistentFlags().BoolVar(&flags.noHistory, "noHistory", false, "Do not record renames")

	run := func(fn func(app *App, args []string) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			app, err := NewApp(flags.params(), out, errOut)
			if err != nil {
				return err
			}
			return app.Finish(fn(app, args))
		}
	}

	rootCmd.AddCommand(
		newListCommand(run),
		newExifCommand(run),
		newRenameExifCommand(run),
		newRenameCommand(run),
		newHistoryCommand(run),
		newUndoCommand(run),
	)
	return rootCmd
}

// Execute runs the command line and exits with a non-zero status on
// failure.
func Execute() {
	rootCmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", constants.AppName, err)
		}
		os.Exit(1)
	}
}
