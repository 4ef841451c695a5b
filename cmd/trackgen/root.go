package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newRootCommandWithContext(newCommandContext())
}

func newRootCommandWithContext(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trackgen [paths...]",
		Short: "Generate a track script from Ogg audio files",
		Long: "trackgen reads the duration of every audio file found in the given files\n" +
			"and directories and writes one track block per file to <name>_tracks.txt.\n" +
			"Arguments containing a period are treated as files; anything else must be\n" +
			"a directory, which is searched recursively.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, ctx, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.flags.configPath, "config", "c", "", "Configuration file path")

	local := rootCmd.Flags()
	local.StringVarP(&ctx.flags.outputDir, "output-dir", "o", "", "Directory receiving the script (default: next to the executable)")
	local.StringVar(&ctx.flags.baseName, "name", "", "Base name of the script file (<name>_tracks.txt)")
	local.StringVar(&ctx.flags.soundPrefix, "sound-prefix", "", "Prefix of each track's sound reference")
	local.StringVar(&ctx.flags.decoder, "decoder", "", "Metadata backend: vorbis or ffprobe")
	local.StringSliceVar(&ctx.flags.extensions, "ext", nil, "File extension collected from directories (repeatable)")
	local.BoolVar(&ctx.flags.json, "json", false, "Print the run report as JSON")
	local.BoolVar(&ctx.flags.summary, "summary", false, "Always print the track summary table")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
