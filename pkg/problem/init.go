package problem

import (
	"fmt"
	"os"

	"github.com/rmohr/hittingset/pkg/api"
	"sigs.k8s.io/yaml"
)

type ProblemInit struct {
	Name        string
	ProblemFile string
}

// Init writes an example problem file. An existing file is never overwritten.
func (p *ProblemInit) Init() error {
	_, err := os.Stat(p.ProblemFile)
	if !os.IsNotExist(err) {
		return fmt.Errorf("problem file %s already exists.", p.ProblemFile)
	}
	// Greiner's counterexample to Reiter's pruning rule
	problem := &api.Problem{
		Name: p.Name,
		Conflicts: [][]string{
			{"a", "b"},
			{"b", "c"},
			{"a", "c"},
			{"b", "d"},
			{"b"},
		},
	}
	data, err := yaml.Marshal(problem)
	if err != nil {
		return err
	}
	return os.WriteFile(p.ProblemFile, data, 0660)
}

func NewProblemInit(name string, problemFile string) *ProblemInit {
	return &ProblemInit{
		Name:        name,
		ProblemFile: problemFile,
	}
}
