package menu

import "context"

// Back is the exit code a Selector returns when the user leaves the menu.
const Back = 0

type Option struct {
	Name string
	Run  func(ctx context.Context) error
}

type SelectRequest struct {
	Title       string
	Options     []Option
	Description string
	// Refresh asks the selector to clear and redraw before listing the options.
	Refresh   bool
	Separator string
}

// Selector renders the options, blocks for one choice and runs it.
// It returns Back when the user leaves and any other value after an option ran.
// Invalid input is handled inside the selector. Errors returned by the chosen
// option are passed through unchanged.
type Selector interface {
	Select(ctx context.Context, req SelectRequest) (int, error)
}

type Screen interface {
	Title(title string, clear bool)
	Println(text string)
}

type Terminal interface {
	Selector
	Screen
}
