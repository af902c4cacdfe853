package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	t.Run("correct password matches", func(t *testing.T) {
		require.NoError(t, ComparePassword(hash, "hunter2"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		require.Error(t, ComparePassword(hash, "hunter3"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		other, err := HashPassword("hunter2", bcrypt.MinCost)
		require.NoError(t, err)
		require.NotEqual(t, hash, other)
	})
}

func TestBurnerMatchesConfiguredCost(t *testing.T) {
	t.Parallel()

	for _, cost := range []int{bcrypt.MinCost, 10, 12} {
		burner := NewBurner(cost)
		embedded, err := bcrypt.Cost(burner.hash)
		require.NoError(t, err)
		require.Equal(t, cost, embedded)
	}

	t.Run("invalid cost falls back to default", func(t *testing.T) {
		burner := NewBurner(bcrypt.MaxCost + 1)
		embedded, err := bcrypt.Cost(burner.hash)
		require.NoError(t, err)
		require.Equal(t, bcrypt.DefaultCost, embedded)
	})

	t.Run("compare discards input without panicking", func(t *testing.T) {
		burner := NewBurner(bcrypt.MinCost)
		burner.Compare("")
		burner.Compare("anything")
	})
}

func TestBurnerTimingMatchesRealCompare(t *testing.T) {
	t.Parallel()

	const cost = 10

	hash, err := HashPassword("hunter2", cost)
	require.NoError(t, err)
	burner := NewBurner(cost)

	start := time.Now()
	require.Error(t, ComparePassword(hash, "wrong-password"))
	wrongPassword := time.Since(start)

	start = time.Now()
	burner.Compare("wrong-password")
	unknownUser := time.Since(start)

	// Both failure paths must stay within the same order of magnitude
	// so a caller cannot tell an unknown name from a wrong password.
	require.Greater(t, unknownUser*10, wrongPassword)
	require.Greater(t, wrongPassword*10, unknownUser)
}
