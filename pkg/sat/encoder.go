package sat

import (
	"strconv"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/hittingset/pkg/set"
)

// encoder maps the elements of a family to boolean variables. A variable is true when its
// element is part of the candidate hitting set.
type encoder[T comparable] struct {
	vars      map[T]string
	elements  map[string]T
	varsCount int
}

func newEncoder[T comparable]() *encoder[T] {
	return &encoder[T]{
		vars:     map[T]string{},
		elements: map[string]T{},
	}
}

func (e *encoder[T]) ticket() string {
	e.varsCount++
	return "x" + strconv.Itoa(e.varsCount)
}

func (e *encoder[T]) varOf(element T) bf.Formula {
	name, exists := e.vars[element]
	if !exists {
		name = e.ticket()
		e.vars[element] = name
		e.elements[name] = element
	}
	return bf.Var(name)
}

func (e *encoder[T]) varsOf(s *set.Set[T]) (bfvars []bf.Formula) {
	for _, element := range s.Items() {
		bfvars = append(bfvars, e.varOf(element))
	}
	return
}

// hits requires every member of family to share at least one element with the model.
func (e *encoder[T]) hits(family *set.Family[T]) []bf.Formula {
	var ands []bf.Formula
	for _, member := range family.Sets() {
		ands = append(ands, bf.Or(e.varsOf(member)...))
	}
	return ands
}

// block excludes s and all of its supersets from the models.
func (e *encoder[T]) block(s *set.Set[T]) bf.Formula {
	return bf.Not(bf.And(e.varsOf(s)...))
}

// decode returns the elements whose variables are true in model, in variable order.
func (e *encoder[T]) decode(model map[string]bool) *set.Set[T] {
	result := set.New[T]()
	for i := 1; i <= e.varsCount; i++ {
		name := "x" + strconv.Itoa(i)
		if model[name] {
			result.Add(e.elements[name])
		}
	}
	return result
}
