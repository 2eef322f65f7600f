package orchestrate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/PeimanAtaei/greenbone-project/internal/gmp"
)

// NotFoundError means an expected named reference entity (scan config or
// scanner) does not exist on the remote side. Fatal to the orchestration.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("default %s %q not found", e.Kind, e.Name)
}

// deleteConflictingTarget removes an existing target carrying the same
// name, so at most one target per name exists. Remote failures are logged
// and reported as "nothing deleted"; a stale target then surfaces later as
// a create_target error rather than aborting the chain here.
func deleteConflictingTarget(ctx context.Context, s gmp.Session, name string) bool {
	targets, err := s.GetTargets(ctx)
	if err != nil {
		logrus.Errorf("[resolver] list targets: %v", err)
		return false
	}

	for _, t := range targets {
		if t.Name != name {
			continue
		}
		if err := s.DeleteTarget(ctx, t.ID); err != nil {
			logrus.Errorf("[resolver] delete target %s: %v", t.ID, err)
			return false
		}
		logrus.Debugf("[resolver] deleted existing target %q with id %s", name, t.ID)
		return true
	}
	return false
}

// resolveID finds the id of the entity with an exact name match.
func resolveID(ctx context.Context, kind string, list func(context.Context) ([]gmp.Entity, error), name string) (string, error) {
	entities, err := list(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range entities {
		if e.Name == name {
			return e.ID, nil
		}
	}
	return "", &NotFoundError{Kind: kind, Name: name}
}
