package admin

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"testing"

	"github.com/sandevgo/tuskmenu/internal/storage/sqlite"
	"github.com/sandevgo/tuskmenu/pkg/menu"
	"github.com/stretchr/testify/require"
)

// skip answers an optional prompt with nothing.
const skip = math.MinInt

const back = "<back>"

type fakeConsole struct {
	picks    []string
	numbers  []int
	texts    []string
	confirms []bool

	titles       []string
	lines        []string
	offered      [][]string
	descriptions []string
	rejected     []string
	pauses       int
}

func (f *fakeConsole) Title(title string, clear bool) { f.titles = append(f.titles, title) }

func (f *fakeConsole) Println(text string) { f.lines = append(f.lines, text) }

func (f *fakeConsole) Select(ctx context.Context, req menu.SelectRequest) (int, error) {
	names := make([]string, len(req.Options))
	for i, o := range req.Options {
		names[i] = o.Name
	}
	f.offered = append(f.offered, names)
	f.descriptions = append(f.descriptions, req.Description)

	if len(f.picks) == 0 {
		return menu.Back, nil
	}
	pick := f.picks[0]
	f.picks = f.picks[1:]
	if pick == back {
		return menu.Back, nil
	}
	for i, o := range req.Options {
		if o.Name == pick {
			return i + 1, o.Run(ctx)
		}
	}
	return menu.Back, fmt.Errorf("option %q not offered, have %v", pick, names)
}

func (f *fakeConsole) Number(ctx context.Context, label string, valid func(int) bool, allowEmpty bool) (int, bool, error) {
	for len(f.numbers) > 0 {
		n := f.numbers[0]
		f.numbers = f.numbers[1:]
		if n == skip && allowEmpty {
			return 0, false, nil
		}
		if valid == nil || valid(n) {
			return n, true, nil
		}
		f.rejected = append(f.rejected, fmt.Sprintf("%s=%d", label, n))
	}
	return 0, false, fmt.Errorf("no number left for %q", label)
}

func (f *fakeConsole) Text(ctx context.Context, label string, valid func(string) bool, allowEmpty bool) (string, bool, error) {
	for len(f.texts) > 0 {
		s := f.texts[0]
		f.texts = f.texts[1:]
		if s == "" && allowEmpty {
			return "", false, nil
		}
		if valid == nil || valid(s) {
			return s, true, nil
		}
		f.rejected = append(f.rejected, fmt.Sprintf("%s=%s", label, s))
	}
	return "", false, fmt.Errorf("no text left for %q", label)
}

func (f *fakeConsole) Confirm(ctx context.Context, label string) (bool, error) {
	if len(f.confirms) == 0 {
		return false, fmt.Errorf("no answer left for %q", label)
	}
	yes := f.confirms[0]
	f.confirms = f.confirms[1:]
	return yes, nil
}

func (f *fakeConsole) Pause(ctx context.Context) error {
	f.pauses++
	return nil
}

func newTestDeps(t *testing.T, console *fakeConsole, seed bool) Deps {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.NewDB(ctx, filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	if seed {
		_, err := sqlite.Seed(ctx, db)
		require.NoError(t, err)
	}

	return Deps{
		Console:     console,
		Films:       sqlite.NewFilmsRepo(db),
		Collections: sqlite.NewCollectionsRepo(db),
		Dishes:      sqlite.NewDishesRepo(db),
		TitleWidth:  25,
	}
}
