package main

import (
	"fmt"

	"github.com/rmohr/hittingset/pkg/hittingset"
	"github.com/rmohr/hittingset/pkg/problem"
	"github.com/rmohr/hittingset/pkg/reducer"
	"github.com/rmohr/hittingset/pkg/sat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type solveOpts struct {
	in       string
	out      string
	reduce   bool
	complete bool
	verify   bool
	stats    bool
}

var solveopts = solveOpts{}

func NewSolveCmd() *cobra.Command {

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "compute all minimal hitting sets of a problem",
		Long: `builds the HS-tree for the conflict sets of the problem and writes every minimal hitting set.
The HS-tree with pruning may miss minimal hitting sets on some inputs, --complete adds them with a SAT solver.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Loading problem.")
			p, err := problem.LoadProblemFile(solveopts.in)
			if err != nil {
				return err
			}
			family, err := problem.ToFamily(p)
			if err != nil {
				return err
			}
			if solveopts.reduce {
				logrus.Info("Reduction of conflict sets.")
				reduced := reducer.Reduce(family)
				logrus.Infof("Reduced %d conflict sets to %d.", family.Size(), reduced.Size())
				family = reduced
			}

			logrus.Info("Solving.")
			solver := hittingset.NewSolver[string]()
			solutions, err := solver.Solve(family)
			if err != nil {
				return fmt.Errorf("failed to build the HS-tree: %v", err)
			}
			logrus.Infof("Found %d minimal hitting sets with %d nodes.", solutions.Size(), solver.Stats.Nodes)

			if solveopts.complete {
				logrus.Info("Completing the result with the SAT solver.")
				solutions, err = sat.Complete(family, solutions)
				if err != nil {
					return err
				}
			}

			var report *sat.Report[string]
			if solveopts.verify {
				logrus.Info("Verifying the result with the SAT solver.")
				report, err = sat.Verify(family, solutions.Sets())
				if err != nil {
					return err
				}
				if !report.Ok() {
					logrus.Warnf("The result misses %d minimal hitting sets.", len(report.Missing))
				}
			}

			var stats *hittingset.Stats
			if solveopts.stats {
				stats = &solver.Stats
			}
			err = problem.WriteResultFile(solveopts.out, toResult(p.Name, solutions, stats, report))
			if err != nil {
				return fmt.Errorf("failed to write result file: %v", err)
			}
			return nil
		},
	}

	solveCmd.PersistentFlags().StringVarP(&solveopts.in, "input", "i", "problem.yaml", "problem file with the conflict sets")
	solveCmd.PersistentFlags().StringVarP(&solveopts.out, "output", "o", "", "where to write the result file, stdout if empty")
	solveCmd.PersistentFlags().BoolVar(&solveopts.reduce, "reduce", false, "drop conflict sets containing other conflict sets before solving")
	solveCmd.PersistentFlags().BoolVar(&solveopts.complete, "complete", false, "add minimal hitting sets missed by the HS-tree")
	solveCmd.PersistentFlags().BoolVar(&solveopts.verify, "verify", false, "attach a SAT verification of the result")
	solveCmd.PersistentFlags().BoolVar(&solveopts.stats, "stats", false, "attach HS-tree statistics to the result")
	return solveCmd
}

// solve is shared by the commands which need the HS-tree of a problem file.
func solve(file string) (*hittingset.Solver[string], error) {
	p, err := problem.LoadProblemFile(file)
	if err != nil {
		return nil, err
	}
	family, err := problem.ToFamily(p)
	if err != nil {
		return nil, err
	}
	solver := hittingset.NewSolver[string]()
	if _, err := solver.Solve(family); err != nil {
		return nil, fmt.Errorf("failed to build the HS-tree: %v", err)
	}
	return solver, nil
}
