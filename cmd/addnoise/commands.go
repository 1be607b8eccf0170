package main

import (
	"fmt"

	"addnoise/internal/imageio"
	"addnoise/internal/noisefiles"
	"addnoise/pkg/fileops"

	"github.com/spf13/cobra"
)

// outputFlags are shared by the commands that derive an output name.
type outputFlags struct {
	tag    string
	output string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.tag, "tag", "t", "", "Suffix inserted before the extension (default from config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output folder (default from config, else ./output)")
	if err := cmd.MarkFlagDirname("output"); err != nil {
		panic(err)
	}
}

// apply sets the output folder on ops and returns the tag to use.
func (f *outputFlags) apply(cmd *cobra.Command, o *rootOptions, ops *noisefiles.FileOperations) (string, error) {
	switch {
	case cmd.Flags().Changed("output"):
		ops.SetOutputFolder(fileops.ExpandPath(f.output))
	case o.cfg.OutputFolder != "":
		ops.SetOutputFolder(o.cfg.ResolvedOutputFolder())
	}

	tag := o.cfg.Tag
	if cmd.Flags().Changed("tag") {
		tag = f.tag
	}
	if err := fileops.ValidateFilenameFragment(tag); err != nil {
		return "", fmt.Errorf("invalid tag: %w", err)
	}
	return tag, nil
}

func colorMode(cmd *cobra.Command, o *rootOptions, gray bool) imageio.ColorMode {
	if cmd.Flags().Changed("gray") {
		if gray {
			return imageio.Grayscale
		}
		return imageio.Color
	}
	return o.cfg.ColorMode
}

// checkReadable rejects source images the codec cannot decode before any
// work is done.
func checkReadable(path string) error {
	if !imageio.CanRead(path) {
		return fmt.Errorf("cannot read %s: supported extensions are %v", path, imageio.ReadableExtensions())
	}
	return nil
}

func newNameCmd(o *rootOptions) *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "name <image> <xml>",
		Short: "Print the output path for an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			ops, err := o.open(args[0], args[1])
			if err != nil {
				return err
			}

			tag, err := flags.apply(cc, o, ops)
			if err != nil {
				return err
			}

			name, err := ops.ComputeOutputName(tag)
			if err != nil {
				return err
			}
			fmt.Fprintln(cc.OutOrStdout(), name)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newShowCmd(o *rootOptions) *cobra.Command {
	var gray bool

	cmd := &cobra.Command{
		Use:   "show <image> <xml>",
		Short: "Display an image in the terminal until a key is pressed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			ops, err := o.open(args[0], args[1])
			if err != nil {
				return err
			}
			if err := checkReadable(ops.ImagePath()); err != nil {
				return err
			}

			img, err := ops.LoadImage(colorMode(cc, o, gray))
			if err != nil {
				return err
			}
			return ops.ShowImage(img)
		},
	}
	cmd.Flags().BoolVarP(&gray, "gray", "g", false, "Load the image in grayscale")

	return cmd
}

func newPassthroughCmd(o *rootOptions) *cobra.Command {
	var (
		flags outputFlags
		gray  bool
		show  bool
	)

	cmd := &cobra.Command{
		Use:   "passthrough <image> <xml>",
		Short: "Load an image and write it unchanged to its tagged output path",
		Long: `passthrough runs the full file lifecycle without adding noise: the
image is loaded (optionally as grayscale), used as the distorted image,
and written to <output folder>/<name><tag><ext>. The output folder is
created if needed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			ops, err := o.open(args[0], args[1])
			if err != nil {
				return err
			}

			if err := checkReadable(ops.ImagePath()); err != nil {
				return err
			}
			tag, err := flags.apply(cc, o, ops)
			if err != nil {
				return err
			}

			img, err := ops.LoadImage(colorMode(cc, o, gray))
			if err != nil {
				return err
			}
			ops.SetDistortedImage(img)

			name, err := ops.ComputeOutputName(tag)
			if err != nil {
				return err
			}
			if !imageio.CanWrite(name) {
				return fmt.Errorf("cannot write %s: supported extensions are %v", name, imageio.WritableExtensions())
			}
			if !imageio.IsLossless(name) {
				o.logger.Warn("Output format is lossy, pixels will not round trip", "path", name)
			}
			if err := ops.EnsureOutputFolder(); err != nil {
				return err
			}

			if show {
				if err := ops.ShowImage(ops.DistortedImage()); err != nil {
					return err
				}
			}

			if err := ops.WriteImage(); err != nil {
				return err
			}
			fmt.Fprintln(cc.OutOrStdout(), name)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&gray, "gray", "g", false, "Load the image in grayscale")
	cmd.Flags().BoolVar(&show, "show", false, "Display the image before writing it")

	return cmd
}
