// Package cli wires configuration, logging, the store, the interpretation
// gateway and the HTTP server into the todochat command.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the todochat command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "todochat",
		Short: "To-do list with a chat interface",
		Long: "todochat serves a to-do list application whose chat box is backed by an\n" +
			"OpenAI-compatible interpretation service. Tasks live in a volatile store\n" +
			"and reset on restart.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCommand())

	return root
}

// Execute runs the command tree with the given arguments.
func Execute(args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.Execute()
}
