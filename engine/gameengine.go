package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/deal/deck"
	"github.com/minaorangina/deal/game"
	"github.com/minaorangina/deal/protocol"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoGame    = errors.New("engine has no game")
	ErrUnknownID = errors.New("unknown player")
)

// GameEngine owns one game. It serialises commands, keeps the latest
// snapshot and tells connected players about every change.
type GameEngine interface {
	ID() string
	Receive(msg protocol.InboundMessage) (protocol.OutboundMessage, error)
	View(seat int) protocol.OutboundMessage
	Snapshot() *game.State
	Players() Players
	AddPlayer(Player) error
	RemovePlayer(id string)
	NumPlayers() int
	GameOver() bool
}

// GameEngineOpts configures a new GameEngine. Game is used as the starting
// snapshot when set; otherwise a fresh game is dealt for NumPlayers.
type GameEngineOpts struct {
	GameID     string
	NumPlayers int
	Catalog    deck.Catalog
	Shuffler   deck.Shuffler
	Game       *game.State
	Players    Players
	Logger     logrus.FieldLogger
}

type gameEngine struct {
	id      string
	mu      sync.Mutex
	state   *game.State
	players Players
	log     logrus.FieldLogger
}

// NewGameEngine constructs a new GameEngine
func NewGameEngine(opts GameEngineOpts) (GameEngine, error) {
	if opts.GameID == "" {
		opts.GameID = NewID()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Players == nil {
		opts.Players = NewPlayers()
	}

	state := opts.Game
	if state == nil {
		if opts.Catalog == nil {
			opts.Catalog = deck.DefaultCatalog()
		}
		if opts.Shuffler == nil {
			opts.Shuffler = deck.NewShuffler(0)
		}

		var err error
		state, err = game.New(opts.Catalog, opts.NumPlayers, opts.Shuffler)
		if err != nil {
			return nil, err
		}
	}

	ge := &gameEngine{
		id:      opts.GameID,
		state:   state,
		players: opts.Players,
		log:     opts.Logger.WithField("game_id", opts.GameID),
	}

	ge.log.WithField("players", len(state.Players)).Info("game created")

	return ge, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) NumPlayers() int {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return len(ge.state.Players)
}

// Snapshot returns the current game state. Snapshots are never modified
// once published, so callers may read them without locking.
func (ge *gameEngine) Snapshot() *game.State {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return ge.state
}

func (ge *gameEngine) GameOver() bool {
	return ge.Snapshot().GameOver()
}

// View renders the current game for seat
func (ge *gameEngine) View(seat int) protocol.OutboundMessage {
	return game.BuildMessage(ge.Snapshot(), seat, protocol.Null, "")
}

func (ge *gameEngine) Players() Players {
	ge.mu.Lock()
	defer ge.mu.Unlock()
	return append(Players{}, ge.players...)
}

// AddPlayer connects a player and sends them the current game
func (ge *gameEngine) AddPlayer(p Player) error {
	ge.mu.Lock()
	if p.Seat() < 0 || p.Seat() >= len(ge.state.Players) {
		ge.mu.Unlock()
		return fmt.Errorf("%w: no seat %d", ErrUnknownID, p.Seat())
	}
	ge.players = AddPlayer(ge.players, p)
	state := ge.state
	ge.mu.Unlock()

	ge.log.WithFields(logrus.Fields{"player": p.ID(), "seat": p.Seat()}).Info("player connected")

	msg := game.BuildMessage(state, p.Seat(), protocol.Start, fmt.Sprintf("Player %d's turn", state.Current+1))
	return p.Send(msg)
}

func (ge *gameEngine) RemovePlayer(id string) {
	ge.mu.Lock()
	ge.players = RemovePlayer(ge.players, id)
	ge.mu.Unlock()

	ge.log.WithField("player", id).Info("player disconnected")
}

// Receive applies msg to the game. On success every connected player is
// sent the new snapshot and the sender's view is returned. A rejected
// command leaves the game untouched and is reported only to the sender.
// Player.Send must not block or call back into the engine.
func (ge *gameEngine) Receive(msg protocol.InboundMessage) (protocol.OutboundMessage, error) {
	ge.mu.Lock()
	if ge.state == nil {
		ge.mu.Unlock()
		return protocol.OutboundMessage{}, ErrNoGame
	}

	logger := ge.log.WithFields(logrus.Fields{
		"player":  msg.PlayerID,
		"command": msg.Command.String(),
	})

	next, message, err := game.Apply(ge.state, msg)
	if err != nil {
		state := ge.state
		ge.mu.Unlock()

		logger.WithError(err).Warn("command rejected")
		return game.BuildErrorMessage(state, msg.PlayerID, err), err
	}

	ge.state = next

	logger.WithField("stage", next.Stage.String()).Info(message)
	if next.GameOver() {
		logger.WithField("winner", *next.Winner).Info("game over")
	}

	// sent under the lock so every player sees updates in order
	ge.broadcast(ge.players, next, msg.Command, message)
	ge.mu.Unlock()

	return game.BuildMessage(next, msg.PlayerID, msg.Command, message), nil
}

func (ge *gameEngine) broadcast(players Players, s *game.State, cmd protocol.Cmd, message string) {
	views := game.BuildMessages(s, cmd, message)
	for _, p := range players {
		if err := p.Send(views[p.Seat()]); err != nil {
			ge.log.WithError(err).WithField("player", p.ID()).Warn("could not send update")
		}
	}
}
