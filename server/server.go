package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/deal/deck"
	"github.com/minaorangina/deal/engine"
	"github.com/minaorangina/deal/protocol"
	"github.com/minaorangina/deal/store"
	"github.com/sirupsen/logrus"
)

type NewGameReq struct {
	Players int `json:"players"`
}

type NewGameRes struct {
	GameID  string `json:"game_id"`
	Players int    `json:"players"`
}

type ErrorRes struct {
	Error string `json:"error"`
}

// ServerOpts configures a GameServer
type ServerOpts struct {
	Catalog        deck.Catalog
	Seed           int64
	AllowedOrigins []string
	Logger         *logrus.Logger
}

// GameServer is a game server
type GameServer struct {
	store    store.GameStore
	catalog  deck.Catalog
	seed     int64
	log      *logrus.Logger
	upgrader websocket.Upgrader
	http.Server
}

// NewServer creates a new GameServer
func NewServer(s store.GameStore, opts ServerOpts) *GameServer {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.Catalog == nil {
		opts.Catalog = deck.DefaultCatalog()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	g := &GameServer{
		store:   s,
		catalog: opts.Catalog,
		seed:    opts.Seed,
		log:     opts.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(opts.AllowedOrigins),
		},
	}

	router := http.NewServeMux()
	router.Handle("/", http.HandlerFunc(g.HandleRoot))
	router.Handle("/new", http.HandlerFunc(g.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(g.HandleGame))
	router.Handle("/ws", http.HandlerFunc(g.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins(opts.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	g.Handler = handlers.LoggingHandler(opts.Logger.Writer(), cors(router))

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleRoot reports that the server is up
func (g *GameServer) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"games": len(g.store.GameIDs())})
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		g.writeParseError(err, w)
		return
	}

	game, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:     engine.NewID(),
		NumPlayers: data.Players,
		Catalog:    g.catalog,
		Shuffler:   deck.NewShuffler(g.seed),
		Logger:     g.log,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := g.store.AddGame(game); err != nil {
		g.log.WithError(err).Error("could not store game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, NewGameRes{GameID: game.ID(), Players: data.Players})
}

// HandleGame serves GET /game/{id}?seat=n and POST /game/{id}/command
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/game/"), "/")
	if path == "" {
		writeError(w, http.StatusBadRequest, errMissingGameID)
		return
	}

	parts := strings.Split(path, "/")
	game, err := g.store.FindGame(parts[0])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		seat, err := seatParam(r, game.NumPlayers())
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, http.StatusOK, game.View(seat))

	case len(parts) == 2 && parts[1] == "command" && r.Method == http.MethodPost:
		g.handleCommand(w, r, game)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *GameServer) handleCommand(w http.ResponseWriter, r *http.Request, game engine.GameEngine) {
	var msg protocol.InboundMessage
	err := json.NewDecoder(r.Body).Decode(&msg)
	defer r.Body.Close()
	if err != nil {
		g.writeParseError(err, w)
		return
	}

	res, err := game.Receive(msg)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, res)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// HandleWS connects a websocket to a seat at the table
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		writeError(w, http.StatusBadRequest, errMissingGameID)
		return
	}

	game, err := g.store.FindGame(gameID)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	seat, err := seatParam(r, game.NumPlayers())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		g.log.WithError(err).Warn("could not upgrade to websocket")
		return
	}

	player := NewWSPlayer(engine.NewID(), seat, conn, game, g.log.WithField("game_id", gameID))
	go player.writePump()

	if err := game.AddPlayer(player); err != nil {
		g.log.WithError(err).Warn("could not add player to game")
		player.Close()
		return
	}

	go player.readPump()
}

func seatParam(r *http.Request, numPlayers int) (int, error) {
	raw := r.URL.Query().Get("seat")
	if raw == "" {
		return 0, nil
	}

	seat, err := strconv.Atoi(raw)
	if err != nil || seat < 0 || seat >= numPlayers {
		return 0, errInvalidSeat
	}
	return seat, nil
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}
