package main

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lens/internal/cpuinfo"
)

func cpuinfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print CPU features and the vector dispatch in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cpuinfo.Collect().Write(cmd.OutOrStdout())
		},
	}
}
