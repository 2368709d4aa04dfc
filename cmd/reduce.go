package main

import (
	"fmt"

	"github.com/rmohr/hittingset/pkg/api"
	"github.com/rmohr/hittingset/pkg/problem"
	"github.com/rmohr/hittingset/pkg/reducer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type reduceOpts struct {
	in  string
	out string
}

var reduceopts = reduceOpts{}

func NewReduceCmd() *cobra.Command {

	reduceCmd := &cobra.Command{
		Use:   "reduce",
		Short: "produce a smaller problem with the same minimal hitting sets",
		Long: `removes every conflict set which contains another conflict set of the problem, as well as duplicates.
Every set hitting the smaller conflict set also hits the bigger one, so the minimal hitting sets do not change.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Info("Loading problem.")
			p, err := problem.LoadProblemFile(reduceopts.in)
			if err != nil {
				return err
			}
			family, err := problem.ToFamily(p)
			if err != nil {
				return err
			}
			logrus.Info("Reduction of conflict sets.")
			r := reducer.NewFamilyReducer(family)
			reduced := r.Reduce()
			logrus.Infof("Dropped %d of %d conflict sets.", len(r.Removed), family.Size())
			if essential := r.Essential(); !essential.IsEmpty() {
				logrus.Infof("Elements %v are part of every hitting set.", essential)
			}

			logrus.Info("Writing reduced problem.")
			err = problem.WriteProblemFile(reduceopts.out, &api.Problem{Name: p.Name, Conflicts: toConflicts(reduced)})
			if err != nil {
				return fmt.Errorf("failed to write problem file: %v", err)
			}
			return nil
		},
	}

	reduceCmd.PersistentFlags().StringVarP(&reduceopts.in, "input", "i", "problem.yaml", "problem file to reduce")
	reduceCmd.PersistentFlags().StringVarP(&reduceopts.out, "output", "o", "reduced.yaml", "where to write the reduced problem file")
	return reduceCmd
}
