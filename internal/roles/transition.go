// Package roles computes the role changes a participant earns by passing a
// training tier.
package roles

import (
	"github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/internal/model"
	pkgerrors "github.com/GamerMax004/Akademie-der-Landespolizei-Hamburg/pkg/errors"
)

// Ref names one of the two membership tags of a tier.
type Ref struct {
	Training model.TrainingType
	Passed   bool
}

// Change is the set of role removals and additions for a passing participant.
type Change struct {
	Remove []Ref
	Add    []Ref
}

// Pair holds the configured Discord role IDs of one tier.
type Pair struct {
	Pending string
	Passed  string
}

// Map resolves tier refs to Discord role IDs.
type Map map[model.TrainingType]Pair

// Transition returns the progression for a passed training: drop the tier's
// pending tag, gain its passed tag, and open the next tier. StVO is the last
// tier and opens nothing.
func Transition(t model.TrainingType) (Change, error) {
	switch t {
	case model.TrainingTheorie:
		return Change{
			Remove: []Ref{{Training: model.TrainingTheorie}},
			Add: []Ref{
				{Training: model.TrainingTheorie, Passed: true},
				{Training: model.TrainingGrund},
			},
		}, nil
	case model.TrainingGrund:
		return Change{
			Remove: []Ref{{Training: model.TrainingGrund}},
			Add: []Ref{
				{Training: model.TrainingGrund, Passed: true},
				{Training: model.TrainingStvo},
			},
		}, nil
	case model.TrainingStvo:
		return Change{
			Remove: []Ref{{Training: model.TrainingStvo}},
			Add: []Ref{
				{Training: model.TrainingStvo, Passed: true},
			},
		}, nil
	}
	return Change{}, pkgerrors.ErrUnknownTraining
}

// Resolve maps a change onto configured role IDs.
func (m Map) Resolve(c Change) (remove []string, add []string, err error) {
	for _, r := range c.Remove {
		id, err := m.lookup(r)
		if err != nil {
			return nil, nil, err
		}
		remove = append(remove, id)
	}
	for _, r := range c.Add {
		id, err := m.lookup(r)
		if err != nil {
			return nil, nil, err
		}
		add = append(add, id)
	}
	return remove, add, nil
}

func (m Map) lookup(r Ref) (string, error) {
	pair, ok := m[r.Training]
	if !ok {
		return "", pkgerrors.ErrRoleNotFound
	}
	id := pair.Pending
	if r.Passed {
		id = pair.Passed
	}
	if id == "" {
		return "", pkgerrors.ErrRoleNotFound
	}
	return id, nil
}
