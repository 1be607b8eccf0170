package main

import (
	"fmt"

	"addnoise/internal/config"
	"addnoise/internal/display"
	"addnoise/internal/imageio"
	"addnoise/internal/logging"
	"addnoise/internal/noisefiles"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

type rootOptions struct {
	logger     *logging.AppLogger
	configPath string
	logLevel   string
	cfg        *config.Config

	// viewer replaces the terminal viewer; used by tests.
	viewer display.Viewer
}

func NewRootCmd(logger *logging.AppLogger) *cobra.Command {
	return newRootCmd(&rootOptions{logger: logger})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addnoise",
		Short: "Manage the files of an image noise-adding run",
		Long: `addnoise validates an image and its XML annotation file, derives the
tagged output path (<output folder>/<name><tag><ext>), and reads, writes
or displays the image.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/addnoise/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Set the log level (debug, info, warn, error)")

	if err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if opts.logLevel != "" {
			if err := opts.logger.SetLevel(opts.logLevel); err != nil {
				return err
			}
		}

		var (
			cfg *config.Config
			err error
		)
		if opts.configPath != "" {
			cfg, err = config.LoadFrom(opts.configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		opts.cfg = cfg
		opts.logger.DebugObject("config", *cfg)
		return nil
	}

	cmd.AddCommand(
		newNameCmd(opts),
		newShowCmd(opts),
		newPassthroughCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// open validates the image/XML pair and wires the collaborators from config.
func (o *rootOptions) open(imagePath, xmlPath string) (*noisefiles.FileOperations, error) {
	viewer := o.viewer
	if viewer == nil {
		viewer = display.NewTerminalViewer(
			display.WithLogger(o.logger),
			display.WithMaxSize(o.cfg.Viewer.MaxCols, o.cfg.Viewer.MaxRows),
		)
	}

	return noisefiles.New(imagePath, xmlPath,
		noisefiles.WithLogger(o.logger),
		noisefiles.WithCodec(imageio.NewCodec(imageio.WithJPEGQuality(o.cfg.JPEGQuality))),
		noisefiles.WithViewer(viewer),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the addnoise CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(version)
		},
	}
}
