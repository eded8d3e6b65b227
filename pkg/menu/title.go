package menu

import (
	"fmt"
	"reflect"
)

// TitleSource is either a constant string or a resolver bound to an argument.
type TitleSource struct {
	text    string
	resolve func() string
}

func Static(title string) TitleSource {
	return TitleSource{text: title}
}

// Dynamic binds fn to arg. The title is recomputed on every Resolve, so changes
// to arg show up on the next redraw. A nil arg panics.
func Dynamic[T any](fn func(T) string, arg T) TitleSource {
	if fn == nil {
		panic(fmt.Errorf("%w: nil resolver", ErrNoTitleArg))
	}
	if isNil(arg) {
		panic(fmt.Errorf("%w: %T", ErrNoTitleArg, arg))
	}
	return TitleSource{resolve: func() string { return fn(arg) }}
}

func (s TitleSource) Resolve() string {
	if s.resolve != nil {
		return s.resolve()
	}
	return s.text
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
