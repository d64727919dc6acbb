package cmd

import (
	"fmt"

	"github.com/grovetools/core/cli"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"

	"github.com/grovetools/quotefix/internal/normalizer"
)

var ulogRun = grovelogging.NewUnifiedLogger("quotefix.cmd.root")

// NewRootCmd creates the root command for quotefix. Run without arguments it
// rewrites the fixed target file.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"quotefix",
		"Replace smart quotes with plain ASCII quotes in "+normalizer.TargetPath,
	)
	rootCmd.Args = cobra.NoArgs
	rootCmd.SilenceUsage = true
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runNormalize(normalizer.TargetPath)
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func runNormalize(path string) error {
	res, err := normalizer.New().NormalizeFile(path)
	if err != nil {
		return err
	}

	ulogRun.Info("Smart quotes replaced").
		Pretty(confirmation(res.Path)).
		PrettyOnly().
		Emit()

	return nil
}

// confirmation is the single line printed after a successful run. Emit
// terminates the line itself.
func confirmation(path string) string {
	return fmt.Sprintf("Smart quotes replaced in %s", path)
}
