package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"vincit.fi/exif-renamer/common/constants"
)

type runner func(fn func(app *App, args []string) error) func(cmd *cobra.Command, args []string) error

func newListCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "list [folder]",
		Short: "List the images of a folder",
		Long: `Lists the images of the folder. Without an argument the configured
default_folder is used, then the working directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run(func(app *App, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}

			folder, err := app.Folder(arg)
			if err != nil {
				return err
			}
			if err := app.ImageService().InitializeFromDirectory(folder); err != nil {
				return err
			}
			for _, image := range app.ImageService().GetImageFiles() {
				app.Println(image.FileName())
			}
			return nil
		}),
	}
}

func newExifCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "exif <file>",
		Short: "Print the EXIF tags of an image",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(app *App, args []string) error {
			service := app.ImageService()
			if _, err := service.SelectImage(args[0]); err != nil {
				return err
			}
			if text, err := service.ExifText(); err != nil {
				return err
			} else {
				app.Println(strings.TrimSuffix(text, "\n"))
				return nil
			}
		}),
	}
}

func newRenameExifCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "rename-exif <file|folder>...",
		Short: "Append the exposure settings to file names",
		Long: `Renames each file with the exposure settings read from its EXIF block.
A folder renames every image in it. Files without a capture time or with
"ISO" already in their name are left alone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run(func(app *App, args []string) error {
			service := app.ImageService()
			var errs []error
			for _, arg := range args {
				if info, err := os.Stat(arg); err == nil && info.IsDir() {
					folder, err := app.Folder(arg)
					if err == nil {
						err = service.InitializeFromDirectory(folder)
					}
					if err == nil {
						_, err = service.RenameAllWithExif()
					}
					if err != nil {
						errs = append(errs, err)
					}
				} else if _, err := service.SelectImage(arg); err != nil {
					errs = append(errs, err)
				} else if _, err := service.RenameWithExif(); err != nil {
					errs = append(errs, err)
				}
			}

			app.brokers.Broker.Flush()
			app.Println(fmt.Sprintf("Renamed %d file(s)", app.Renamed()))
			return errors.Join(errs...)
		}),
	}
}

func newRenameCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <file> <name>...",
		Short: "Rename a file, keeping its extension",
		Long: `Renames the file to the given name. The words are joined with spaces,
characters that are not allowed in file names are replaced with their
fullwidth forms and the original extension is kept.`,
		Args: cobra.MinimumNArgs(2),
		RunE: run(func(app *App, args []string) error {
			service := app.ImageService()
			if _, err := service.SelectImage(args[0]); err != nil {
				return err
			}
			_, err := service.RenameWithText(strings.Join(args[1:], " "))
			return err
		}),
	}
}

func newHistoryCommand(run runner) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the latest renames",
		Args:  cobra.NoArgs,
		RunE: run(func(app *App, args []string) error {
			records, err := app.ImageService().History(limit)
			if err != nil {
				return err
			}
			for _, record := range records {
				line := record.String()
				if record.Undone {
					line += " (undone)"
				}
				app.Println(line)
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultHistory, "Number of renames to show, 0 for all")
	return cmd
}

func newUndoCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the latest rename",
		Args:  cobra.NoArgs,
		RunE: run(func(app *App, args []string) error {
			_, err := app.ImageService().UndoLastRename()
			return err
		}),
	}
}
