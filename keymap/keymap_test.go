package keymap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafix/keymap"
)

// ------------------------------------------------------------------------
// 1. Put/Get/Delete basics and overwrite semantics.
// ------------------------------------------------------------------------

func TestPutGetDelete(t *testing.T) {
	m := keymap.New(4)
	p, err := m.Put(10, 100)
	require.NoError(t, err)
	require.NotZero(t, p)
	_, err = m.Put(20, 200)
	require.NoError(t, err)

	v, ok := m.Get(10)
	require.True(t, ok)
	require.Equal(t, 100.0, v)
	require.Equal(t, p, m.GetPair(10))

	// Overwrite keeps the pair id and the size.
	p2, err := m.Put(10, 111)
	require.NoError(t, err)
	require.Equal(t, p, p2)
	require.Equal(t, 2, m.Size())
	v, _ = m.Get(10)
	require.Equal(t, 111.0, v)

	require.True(t, m.Delete(10))
	require.False(t, m.Delete(10))
	_, ok = m.Get(10)
	require.False(t, ok)
	require.Equal(t, 1, m.Size())
}

// ------------------------------------------------------------------------
// 2. Iteration order and pair-id recycling.
// ------------------------------------------------------------------------

func TestIterationInKeyOrder(t *testing.T) {
	m := keymap.New(8)
	for _, k := range []float64{5, 1, 9, 3, 7} {
		_, err := m.Put(k, k*10)
		require.NoError(t, err)
	}
	var keys []float64
	for p := m.First(); p != 0; p = m.Next(p) {
		keys = append(keys, m.Key(p))
	}
	require.Equal(t, []float64{1, 3, 5, 7, 9}, keys)
}

func TestPairIDRecycling(t *testing.T) {
	m := keymap.New(2)
	p1, err := m.Put(1, 10)
	require.NoError(t, err)
	require.True(t, m.Delete(1))
	p2, err := m.Put(2, 20)
	require.NoError(t, err)
	require.Equal(t, p1, p2, "freed pair id is reused first")
}

// ------------------------------------------------------------------------
// 3. Automatic expansion (at least 50%).
// ------------------------------------------------------------------------

func TestExpansion(t *testing.T) {
	m := keymap.New(2)
	for k := 1; k <= 9; k++ {
		_, err := m.Put(float64(k), float64(k))
		require.NoError(t, err)
	}
	require.Equal(t, 9, m.Size())
	require.GreaterOrEqual(t, m.N(), 9)
	for k := 1; k <= 9; k++ {
		v, ok := m.Get(float64(k))
		require.True(t, ok)
		require.Equal(t, float64(k), v)
	}
}

// ------------------------------------------------------------------------
// 4. String keys, round-trip, equality.
// ------------------------------------------------------------------------

func TestStringKeys(t *testing.T) {
	m := keymap.New(4, keymap.WithStringKeys())
	_, err := m.PutString("west", 1)
	require.NoError(t, err)
	_, err = m.PutString("east", 2)
	require.NoError(t, err)
	_, err = m.Put(3, 3)
	require.ErrorIs(t, err, keymap.ErrKeyMode)

	v, ok := m.GetString("east")
	require.True(t, ok)
	require.Equal(t, 2.0, v)
	require.Equal(t, `{"east":2 "west":1}`, m.String())

	fresh := keymap.New(4, keymap.WithStringKeys())
	require.NoError(t, fresh.FromString(m.String()))
	require.True(t, fresh.Equals(m))
}

func TestRoundTrip(t *testing.T) {
	m := keymap.New(6)
	for _, k := range []float64{2, 4.5, 1} {
		_, err := m.Put(k, k+0.5)
		require.NoError(t, err)
	}
	require.Equal(t, "{1:1.5 2:2.5 4.5:5}", m.String())

	fresh := keymap.New(6)
	require.NoError(t, fresh.FromString(m.String()))
	require.True(t, fresh.Equals(m))
}

func TestFromStringRejectsBadInput(t *testing.T) {
	m := keymap.New(4)
	_, err := m.Put(1, 1)
	require.NoError(t, err)
	for _, bad := range []string{"", "{1:2", "{1}", "{1:2 1:3}", "{x:2}"} {
		require.ErrorIs(t, m.FromString(bad), keymap.ErrParse, "input %q", bad)
		require.Equal(t, "{1:1}", m.String())
	}
}

// ------------------------------------------------------------------------
// 5. Random workload vs a built-in map reference.
// ------------------------------------------------------------------------

func TestRandomAgainstMapReference(t *testing.T) {
	const steps = 4000
	rng := rand.New(rand.NewSource(5))
	m := keymap.New(4)
	ref := make(map[float64]float64)

	for step := 0; step < steps; step++ {
		k := float64(rng.Intn(50))
		switch rng.Intn(3) {
		case 0:
			v := float64(rng.Intn(1000))
			_, err := m.Put(k, v)
			require.NoError(t, err)
			ref[k] = v
		case 1:
			_, refOK := ref[k]
			require.Equal(t, refOK, m.Delete(k))
			delete(ref, k)
		case 2:
			v, ok := m.Get(k)
			rv, refOK := ref[k]
			require.Equal(t, refOK, ok)
			if ok {
				require.Equal(t, rv, v)
			}
		}
		require.Equal(t, len(ref), m.Size())
	}
}
