// Package env holds the variable environment of a calculator session.
package env

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"slices"
	"sync"
)

var ErrInvalidIdentifier = errors.New("invalid identifier")

var namePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

// ValidName reports whether name is a bare alphabetic identifier.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Environment maps identifiers to arbitrary-precision integers for the
// lifetime of a session. The zero value is ready to use; the map is
// created on the first successful assignment.
type Environment struct {
	mu     sync.Mutex
	values map[string]*big.Int
}

func New() *Environment {
	return &Environment{}
}

// Assign inserts or overwrites a variable. On any error the environment is
// left unchanged.
func (e *Environment) Assign(name string, value *big.Int) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.values == nil {
		e.values = make(map[string]*big.Int)
	}

	e.values[name] = new(big.Int).Set(value)

	return nil
}

// Lookup returns a copy of the value of a variable, so callers cannot
// alias stored integers.
func (e *Environment) Lookup(name string) (*big.Int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.values[name]
	if !ok {
		return nil, false
	}

	return new(big.Int).Set(v), true
}

func (e *Environment) Delete(names ...string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, name := range names {
		delete(e.values, name)
	}
}

func (e *Environment) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.values = nil
}

// Names returns the defined identifiers in sorted order.
func (e *Environment) Names() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func (e *Environment) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.values)
}
