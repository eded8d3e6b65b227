package menu

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrRankArity     = errors.New("rank/key arity mismatch")
	ErrNoHandler     = errors.New("tool without handler")
	ErrNoName        = errors.New("tool without name")
	ErrDuplicateTool = errors.New("duplicate tool name")
	ErrNoTitleArg    = errors.New("dynamic title without bound argument")
)

// Key tags a group of tools. NoKey selects the default group; it may also appear
// in a key tuple to show a tool in the default group and in keyed groups.
type Key string

const NoKey Key = ""

// Keys is the set of groups a tool is visible in. The zero value is the
// default group.
type Keys struct {
	keys  []Key
	tuple bool
}

func InKey(k Key) Keys {
	return Keys{keys: []Key{k}}
}

// InKeys places a tool in several groups. The i-th key pairs with the i-th
// ordinal of an AtEach rank.
func InKeys(ks ...Key) Keys {
	return Keys{keys: append([]Key(nil), ks...), tuple: true}
}

func (k Keys) IsDefault() bool {
	return len(k.keys) == 0 && !k.tuple
}

// Index reports the position of active among the keys. The default group
// matches only NoKey.
func (k Keys) Index(active Key) (int, bool) {
	if k.IsDefault() {
		return 0, active == NoKey
	}
	for i, key := range k.keys {
		if key == active {
			return i, true
		}
	}
	return 0, false
}

func (k Keys) String() string {
	switch {
	case k.IsDefault():
		return "<default>"
	case !k.tuple:
		return string(k.keys[0])
	default:
		return fmt.Sprint(k.keys)
	}
}

type Rank struct {
	ords  []int
	tuple bool
}

func At(n int) Rank {
	return Rank{ords: []int{n}}
}

func AtEach(ns ...int) Rank {
	return Rank{ords: append([]int(nil), ns...), tuple: true}
}

func (r Rank) at(i int) int {
	return r.ords[i]
}

// Handler runs a tool. It has the shape of a method expression on A, so
// (*Admin).method can be registered directly.
type Handler[A any] func(a A, ctx context.Context) error

// Tool describes a single menu entry. Tools are values: build them once, register
// them in a Registry and never mutate them afterwards.
type Tool[A any] struct {
	Name        string
	Rank        Rank
	Keys        Keys
	Description string
	// When hides the tool for the current cycle if it returns false.
	When    func(a A) bool
	Handler Handler[A]
}

// Validate checks the declaration. A scalar or default key needs a single ordinal,
// a key tuple needs a rank tuple of the same length.
func (t Tool[A]) Validate() error {
	if t.Name == "" {
		return ErrNoName
	}
	if t.Handler == nil {
		return fmt.Errorf("%w: %q", ErrNoHandler, t.Name)
	}
	if t.Keys.tuple {
		if !t.Rank.tuple || len(t.Rank.ords) != len(t.Keys.keys) {
			return fmt.Errorf("%w on tool %q: %d keys, %d ranks", ErrRankArity, t.Name, len(t.Keys.keys), len(t.Rank.ords))
		}
		if len(t.Keys.keys) == 0 {
			return fmt.Errorf("%w on tool %q: empty key tuple", ErrRankArity, t.Name)
		}
		return nil
	}
	if t.Rank.tuple || len(t.Rank.ords) != 1 {
		return fmt.Errorf("%w on tool %q: scalar key needs a single rank", ErrRankArity, t.Name)
	}
	return nil
}

func (t Tool[A]) visible(a A) bool {
	return t.When == nil || t.When(a)
}
