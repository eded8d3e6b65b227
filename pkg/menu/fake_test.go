package menu

import (
	"context"
)

type step struct {
	choose string
	back   bool
}

type fakeTerminal struct {
	script  []step
	titles  []string
	lines   []string
	selects []SelectRequest
}

func (f *fakeTerminal) Title(title string, clear bool) {
	f.titles = append(f.titles, title)
}

func (f *fakeTerminal) Println(text string) {
	f.lines = append(f.lines, text)
}

func (f *fakeTerminal) Select(ctx context.Context, req SelectRequest) (int, error) {
	f.selects = append(f.selects, req)
	if len(f.script) == 0 {
		return Back, nil
	}
	s := f.script[0]
	f.script = f.script[1:]
	if s.back {
		return Back, nil
	}
	for i, opt := range req.Options {
		if opt.Name == s.choose {
			if err := opt.Run(ctx); err != nil {
				return 0, err
			}
			return i + 1, nil
		}
	}
	// unknown entries behave like a selector that re-prompted and got nothing runnable
	return len(req.Options) + 1, nil
}

func names[A any](tools []Tool[A]) []string {
	res := make([]string, len(tools))
	for i, t := range tools {
		res[i] = t.Name
	}
	return res
}

func optionNames(req SelectRequest) []string {
	res := make([]string, len(req.Options))
	for i, o := range req.Options {
		res[i] = o.Name
	}
	return res
}
