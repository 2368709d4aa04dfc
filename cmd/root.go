package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hittingset",
	Short: "hittingset computes all minimal hitting sets of a family of conflict sets",
	Long: `The tool implements Reiter's HS-tree to compute every minimal hitting set (minimal diagnosis) of a
family of conflict sets, and can check and complete a result with a SAT solver`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every decision taken while building the HS-tree")
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewSolveCmd())
	rootCmd.AddCommand(NewVerifyCmd())
	rootCmd.AddCommand(NewReduceCmd())
	rootCmd.AddCommand(NewPathCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
