package core

import "context"

// Forms prompts for typed values. Invalid input is re-prompted inside the
// implementation; ok is false only when allowEmpty is set and the user entered
// nothing.
type Forms interface {
	Number(ctx context.Context, label string, valid func(int) bool, allowEmpty bool) (n int, ok bool, err error)
	Text(ctx context.Context, label string, valid func(string) bool, allowEmpty bool) (s string, ok bool, err error)
	Confirm(ctx context.Context, label string) (bool, error)
	Pause(ctx context.Context) error
}
