package view

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"lifeflight/src/engine"
	"lifeflight/src/universe"
)

func TestConsoleUIPanicsToGameLog(t *testing.T) {
	var b bytes.Buffer
	o := engine.DefaultOptions
	o.Logger = log.New(&b, "", 0)
	g := engine.New(&o, universe.NewCatalog(universe.NoiseOptions{Size: 8}))
	ui := &ConsoleUI{game: g}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("no panic")
			}
		}()
		ui.logger().Panicln("terminal lost")
	}()
	if !strings.Contains(b.String(), "terminal lost") {
		t.Fatalf("the failure is not in the game log: %q", b.String())
	}
}

func TestConsoleUILoggerWithoutGame(t *testing.T) {
	ui := &ConsoleUI{}
	if ui.logger() != log.Default() {
		t.Fatal("the standard logger is expected before Register")
	}
}
