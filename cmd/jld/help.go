package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newHelpCmd builds `jld help [command]`
// This wraps Cobra's built-in help but prints plain usage text
func newHelpCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Long:  `Help provides help for any command in the application. Simply type 'jld help [command]' for full details.`,
		// Add a custom annotation to identify our help command
		Annotations: map[string]string{"custom": "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprint(out, rootCmd.UsageString())
				return
			}

			// Find the requested command
			targetCmd, _, err := rootCmd.Find(args)
			if err != nil || targetCmd == nil || targetCmd == rootCmd {
				fmt.Fprintf(out, "Unknown help topic '%s'. Run 'jld help'.\n", strings.Join(args, " "))
				return
			}

			fmt.Fprint(out, targetCmd.UsageString())
		},
	}
}
