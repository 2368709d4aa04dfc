package main

import (
	"fmt"
	"os"

	"github.com/rmohr/hittingset/pkg/problem"
	"github.com/rmohr/hittingset/pkg/sat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

type VerifyOpts struct {
	problemFile string
	resultFile  string
}

var verifyopts = VerifyOpts{}

func NewVerifyCmd() *cobra.Command {

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "verify a result against its problem with a SAT solver",
		Long: `checks that every hitting set of the result hits all conflict sets and is minimal, and searches
minimal hitting sets missing from the result`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Loading problem.")
			p, err := problem.LoadProblemFile(verifyopts.problemFile)
			if err != nil {
				return err
			}
			family, err := problem.ToFamily(p)
			if err != nil {
				return err
			}
			logrus.Info("Loading result.")
			result, err := problem.LoadResultFile(verifyopts.resultFile)
			if err != nil {
				return err
			}

			logrus.Info("Verifying.")
			report, err := sat.Verify(family, problem.ToSets(result.HittingSets))
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(problem.ToVerification(report))
			if err != nil {
				return fmt.Errorf("failed to marshal verification: %v", err)
			}
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			if !report.Ok() {
				return fmt.Errorf("%s is not the set of minimal hitting sets of %s", verifyopts.resultFile, verifyopts.problemFile)
			}
			return nil
		},
	}

	verifyCmd.Flags().StringVarP(&verifyopts.problemFile, "input", "i", "problem.yaml", "problem file with the conflict sets")
	verifyCmd.Flags().StringVarP(&verifyopts.resultFile, "result", "r", "result.yaml", "result file to verify")
	return verifyCmd
}
