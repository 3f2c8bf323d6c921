package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is wrapped by every validation failure
var ErrInvalidLevel = errors.New("invalid level data")

// ValidationError lists every problem found in a manifest
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidLevel, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidLevel
}

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

// Validate checks every level in the set
func (s *LevelSet) Validate() error {
	verr := &ValidationError{}
	if len(s.Levels) == 0 {
		verr.add("manifest has no levels")
	}
	for i := range s.Levels {
		s.Levels[i].check(verr, fmt.Sprintf("level %d (%q)", i+1, s.Levels[i].Name))
	}
	return verr.orNil()
}

// Validate checks a single level; a level that fails must not be simulated
func (l *Level) Validate() error {
	verr := &ValidationError{}
	l.check(verr, fmt.Sprintf("level %q", l.Name))
	return verr.orNil()
}

func (l *Level) check(verr *ValidationError, where string) {
	if l.Name == "" {
		verr.add("%s: missing name", where)
	}
	if l.Spawn == nil {
		verr.add("%s: missing spawn point", where)
	}
	if l.TotalPickups != len(l.Pickups) {
		verr.add("%s: total_pickups is %d but %d pickups are listed", where, l.TotalPickups, len(l.Pickups))
	}
	if l.Gate.W <= 0 || l.Gate.H <= 0 {
		verr.add("%s: gate has non-positive size %gx%g", where, l.Gate.W, l.Gate.H)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			verr.add("%s: platform %d has non-positive size %gx%g", where, i+1, p.W, p.H)
		}
		if !p.Movable && (p.Speed != nil || p.Range != nil || p.Vertical) {
			verr.add("%s: platform %d sets motion fields but is not movable", where, i+1)
		}
		if speed, rng := p.Motion(); p.Movable && (speed <= 0 || rng <= 0) {
			verr.add("%s: platform %d needs positive speed and range", where, i+1)
		}
	}
	for i, h := range l.Hazards {
		if h.Count < 1 {
			verr.add("%s: hazard %d has count %d", where, i+1, h.Count)
		}
		if h.Spacing != nil && *h.Spacing <= 0 {
			verr.add("%s: hazard %d has non-positive spacing", where, i+1)
		}
	}
}
