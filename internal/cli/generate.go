package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/jacoelho/jg/internal/exit"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate shell completions and man pages",
	}
	cmd.AddCommand(newGenerateShellCommand(), newGenerateManCommand())
	return cmd
}

func newGenerateShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "shell [bash|zsh|fish|powershell]",
		Short:                 "Generate a shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newGenerateManCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "man",
		Short: "Generate man pages for jg and its subcommands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return exit.IO(err)
			}
			header := &doc.GenManHeader{Title: "JG", Section: "1"}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return exit.IO(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "output", "o", ".", "directory to write man pages to")
	return cmd
}
