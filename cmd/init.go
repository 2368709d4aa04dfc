package main

import (
	"github.com/rmohr/hittingset/pkg/problem"
	"github.com/spf13/cobra"
)

type InitOpts struct {
	name string
	out  string
}

var initopts = InitOpts{}

func NewInitCmd() *cobra.Command {

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create an example problem.yaml file",
		Long:  `Create a problem file with a small family of conflict sets which can be edited and passed to the solve command`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return problem.NewProblemInit(initopts.name, initopts.out).Init()
		},
	}

	initCmd.Flags().StringVarP(&initopts.name, "name", "n", "example", "name of the problem")
	initCmd.Flags().StringVarP(&initopts.out, "output", "o", "problem.yaml", "where to write the problem file")
	return initCmd
}
