package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[testItem]()
	require.NotNil(t, reg)
	assert.Empty(t, reg.List())
	assert.Empty(t, reg.Values())
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("one", testItem{ID: 1}))
		assert.Equal(t, []string{"one"}, reg.List())
	})

	t.Run("empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := reg.Register("one", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		got, err := reg.Get("one")
		require.NoError(t, err)
		assert.Equal(t, 1, got.ID, "first registration is kept")
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "a", testItem{ID: 1, Name: "a"})

	got, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)

	_, err = reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["name"])
}

func TestListAndValuesAreSorted(t *testing.T) {
	reg := New[testItem]()
	for i, name := range []string{"charlie", "alpha", "bravo"} {
		MustRegister(reg, name, testItem{ID: i, Name: name})
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, reg.List())

	var names []string
	for _, item := range reg.Values() {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, names)
}

func TestMustRegisterPanics(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "x", testItem{})

	assert.Panics(t, func() { MustRegister(reg, "x", testItem{}) })
}

func TestConcurrentAccess(t *testing.T) {
	reg := New[testItem]()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("item-%d", i)
			_ = reg.Register(name, testItem{ID: i})
			_, _ = reg.Get(name)
			_ = reg.Values()
		}(i)
	}
	wg.Wait()

	assert.Len(t, reg.List(), 50)
}
