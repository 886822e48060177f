package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/minaorangina/deal/engine"
	utils "github.com/minaorangina/deal/internal"
	"github.com/stretchr/testify/assert"
)

func newGame(t *testing.T, id string) engine.GameEngine {
	t.Helper()

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{GameID: id, NumPlayers: 2})
	utils.AssertNoError(t, err)
	return ge
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("constructor prevents nil struct members", func(t *testing.T) {
		str := NewInMemoryGameStore()
		if str.Games == nil {
			t.Error("Games was nil")
		}
	})

	t.Run("finds games that were added", func(t *testing.T) {
		str := NewInMemoryGameStore()
		ge := newGame(t, "thisISAnID")

		utils.AssertNoError(t, str.AddGame(ge))

		got, err := str.FindGame("thisISAnID")
		utils.AssertNoError(t, err)
		assert.Same(t, ge, got)
		assert.Equal(t, []string{"thisISAnID"}, str.GameIDs())
	})

	t.Run("prevents duplicate game IDs", func(t *testing.T) {
		str := NewInMemoryGameStore()
		ge := newGame(t, "thisISAnID")

		utils.AssertNoError(t, str.AddGame(ge))

		err := str.AddGame(ge)
		assert.True(t, errors.Is(err, ErrDuplicateID))
	})

	t.Run("handles a non-existent game", func(t *testing.T) {
		str := NewInMemoryGameStore()

		game, err := str.FindGame("fake-id")
		assert.Nil(t, game)
		assert.True(t, errors.Is(err, ErrUnknownGameID))

		assert.True(t, errors.Is(str.RemoveGame("fake-id"), ErrUnknownGameID))
	})

	t.Run("removes games", func(t *testing.T) {
		str := NewInMemoryGameStore()
		utils.AssertNoError(t, str.AddGame(newGame(t, "gone")))

		utils.AssertNoError(t, str.RemoveGame("gone"))

		_, err := str.FindGame("gone")
		utils.AssertErrored(t, err)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		str := NewInMemoryGameStore()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("game-%d", i)
				_ = str.AddGame(newGame(t, id))
				_, _ = str.FindGame(id)
			}(i)
		}
		wg.Wait()

		assert.Len(t, str.GameIDs(), 20)
	})
}
