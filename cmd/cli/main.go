package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/minaorangina/deal/config"
	"github.com/minaorangina/deal/deck"
	"github.com/minaorangina/deal/engine"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

func main() {
	numPlayers := flag.Int("players", 2, "number of players at the table (2-4)")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg.LogLevel = *logLevel

	logger, err := cfg.Logger()
	if err != nil {
		logrus.Fatal(err)
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		logger.Fatal(err)
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		NumPlayers: *numPlayers,
		Catalog:    catalog,
		Shuffler:   deck.NewShuffler(cfg.Seed),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal(err)
	}

	engine.SendText(os.Stdout, "%s\n", engine.CommandHelp)
	for seat := 0; seat < *numPlayers; seat++ {
		if err := ge.AddPlayer(engine.NewCLIPlayer(seat, os.Stdout)); err != nil {
			logger.Fatal(err)
		}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	play(line, ge)
}

func play(line *liner.State, ge engine.GameEngine) {
	for !ge.GameOver() {
		seat := ge.Snapshot().Current

		input, err := line.Prompt(fmt.Sprintf("(player %d) ", seat+1))
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return
			}
			color.Red("%v", err)
			continue
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case "help", "h", "?":
			engine.SendText(os.Stdout, "%s\n", engine.CommandHelp)
			continue
		case "quit", "q":
			return
		}
		line.AppendHistory(input)

		msg, err := engine.ParseCommand(input, seat)
		if err != nil {
			color.Red("%v", err)
			continue
		}

		if res, err := ge.Receive(msg); err != nil {
			color.Red("%s", res.Error)
		}
	}
}
