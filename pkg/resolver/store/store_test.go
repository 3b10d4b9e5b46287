package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olavoasantos/resolver/pkg/resolver"
	"github.com/olavoasantos/resolver/pkg/resolver/store"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) store.Store

func sampleList() resolver.PathList {
	return resolver.PathList{
		"users": map[string]any{
			"index": "/users",
			"show":  "/users/:id",
		},
		"health": "/healthz",
	}
}

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Save_and_Load", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		require.NoError(t, s.Save("api", sampleList()))

		loaded, err := s.Load("api")
		require.NoError(t, err)
		assert.Equal(t, sampleList(), loaded)

		got, err := resolver.Resolve(loaded, "users.show", map[string]any{"id": 1})
		require.NoError(t, err)
		assert.Equal(t, "/users/1", got)
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		_, err := s.Load("missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		require.NoError(t, s.Save("api", resolver.PathList{"a": "/first"}))
		require.NoError(t, s.Save("api", resolver.PathList{"a": "/second"}))

		loaded, err := s.Load("api")
		require.NoError(t, err)
		assert.Equal(t, resolver.PathList{"a": "/second"}, loaded)

		infos, err := s.List()
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, 2, infos[0].Version)
	})

	t.Run(name+"/Save_InvalidName", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		assert.ErrorIs(t, s.Save("", sampleList()), store.ErrInvalidName)
	})

	t.Run(name+"/Save_Nil", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		require.NoError(t, s.Save("empty", nil))
		loaded, err := s.Load("empty")
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run(name+"/Save_Copies", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		list := resolver.PathList{"a": "/a"}
		require.NoError(t, s.Save("api", list))
		list["a"] = "/changed"

		loaded, err := s.Load("api")
		require.NoError(t, err)
		assert.Equal(t, "/a", loaded["a"])
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		infos, err := s.List()
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run(name+"/List_Ordered", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		for _, n := range []string{"web", "admin", "api"} {
			require.NoError(t, s.Save(n, sampleList()))
		}

		infos, err := s.List()
		require.NoError(t, err)
		require.Len(t, infos, 3)
		assert.Equal(t, "admin", infos[0].Name)
		assert.Equal(t, "api", infos[1].Name)
		assert.Equal(t, "web", infos[2].Name)
		for _, info := range infos {
			assert.Equal(t, 1, info.Version)
			assert.Positive(t, info.Size)
			assert.False(t, info.UpdatedAt.IsZero())
		}
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		s := factory(t)
		defer s.Close()

		require.NoError(t, s.Save("api", sampleList()))
		require.NoError(t, s.Delete("api"))

		_, err := s.Load("api")
		assert.ErrorIs(t, err, store.ErrNotFound)

		assert.NoError(t, s.Delete("never-saved"))
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		s := factory(t)
		require.NoError(t, s.Close())

		assert.ErrorIs(t, s.Save("api", sampleList()), store.ErrStoreClosed)
		_, err := s.Load("api")
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		_, err = s.List()
		assert.ErrorIs(t, err, store.ErrStoreClosed)
		assert.ErrorIs(t, s.Delete("api"), store.ErrStoreClosed)
	})
}

func TestMemoryStore(t *testing.T) {
	storeContractTest(t, "MemoryStore", func(t *testing.T) store.Store {
		return store.NewMemoryStore()
	})

	t.Run("Len", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Save("a", sampleList()))
		require.NoError(t, s.Save("b", sampleList()))
		assert.Equal(t, 2, s.Len())
	})
}

func TestSQLiteStore(t *testing.T) {
	storeContractTest(t, "SQLiteStore", func(t *testing.T) store.Store {
		s, err := store.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return s
	})
}
