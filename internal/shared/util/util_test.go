package util

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePatternPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty", input: "", expected: ""},
		{name: "Dot", input: ".", expected: ""},
		{name: "Trim", input: "  ./target/inc_compile.zip  ", expected: "target/inc_compile.zip"},
		{name: "Relative", input: "target/../out", expected: "out"},
		{name: "Windows", input: `C:\work\out`, expected: "C:/work/out"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, NormalizePatternPath(tc.input))
		})
	}
}

func TestSortedStringKeys(t *testing.T) {
	t.Parallel()

	keys := SortedStringKeys(map[string]int{"b.B": 2, "a.A": 1, "c": 3})
	assert.Equal(t, []string{"a.A", "b.B", "c"}, keys)
	assert.Empty(t, SortedStringKeys[int](nil))
}

func TestEnsureParentDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "nested", "dir", "incstate.db")
	require.NoError(t, EnsureParentDir(file))

	info, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NoError(t, EnsureParentDir("relative.db"))
}

func TestLimiter(t *testing.T) {
	l := NewLimiter(10, 2)

	assert.True(t, l.Allow(), "first token")
	assert.True(t, l.Allow(), "burst")
	assert.False(t, l.Allow(), "burst exhausted")

	time.Sleep(150 * time.Millisecond)
	assert.True(t, l.Allow(), "refilled")
}

func TestLimiter_Unlimited(t *testing.T) {
	l := NewLimiter(0, 1)
	for i := 0; i < 100; i++ {
		require.True(t, l.Allow())
	}
	require.NoError(t, l.Wait(context.Background()))
}

func TestLimiter_WaitCanceled(t *testing.T) {
	l := NewLimiter(0.001, 1)
	require.True(t, l.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, l.Wait(ctx))
}

func TestLimiterRegistry(t *testing.T) {
	reg := NewLimiterRegistry(100, 10, time.Hour)
	defer reg.Close()

	a := reg.Get("/work/a/inc_compile.zip")
	b := reg.Get("/work/b/inc_compile.zip")
	assert.NotSame(t, a, b)
	assert.Same(t, a, reg.Get("/work/a/inc_compile.zip"))

	reg.cleanup(time.Now().Add(2 * time.Hour))
	assert.NotSame(t, a, reg.Get("/work/a/inc_compile.zip"))
}
