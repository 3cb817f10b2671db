package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var serverFlag string
	var intervalFlag time.Duration

	rootCmd := &cobra.Command{
		Use:           "photoctl",
		Short:         "Photoflow upload CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "http://localhost:8080", "Base URL of the photoflow API")
	rootCmd.PersistentFlags().DurationVar(&intervalFlag, "interval", time.Second, "Job status poll interval")

	rootCmd.AddCommand(newUploadCommand(&serverFlag, &intervalFlag))

	return rootCmd
}
