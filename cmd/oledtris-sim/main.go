// Command oledtris-sim runs the game in a terminal. The panel is drawn with
// braille characters and turned upright; the high score is kept in a JSON
// file. Logs go to a file because the terminal is the display.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/flavioheleno/oledtris/clock"
	"github.com/flavioheleno/oledtris/session"
	"github.com/flavioheleno/oledtris/sim"
	"github.com/flavioheleno/oledtris/storage"
)

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "oledtris.json"
	}
	return filepath.Join(dir, "oledtris", "state.json")
}

var (
	statePath = flag.String("state", defaultStatePath(), "High score file")
	logPath   = flag.String("log", "", "Log file (empty disables logging)")
	hold      = flag.Duration("hold", sim.DefaultHold, "How long a key stays pressed after its last repeat")
	budget    = flag.Uint("budget", 25, "Frame budget in milliseconds")
)

func newLogger() (*slog.Logger, func(), error) {
	if *logPath == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { f.Close() }, nil
}

func run() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	store, err := storage.NewFile(*statePath, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	panel := sim.NewPanel(screen, &sim.PanelOpts{X: 1, Y: 1, Style: style, DoubleBuffer: session.DoubleBuffer})
	sim.DrawHelp(screen, sim.ViewW+4, 1, tcell.StyleDefault)
	keys := sim.NewKeys(*hold)

	// The clock outlives ctx so a frame in progress can finish pacing.
	var ms clock.Counter
	stopClock := clock.Start(context.Background(), &ms)
	defer stopClock()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sim.Pump(ctx, screen, keys)
	})
	g.Go(func() error {
		s := session.New(panel, keys, &ms, store, clock.Waker{}, &session.Opts{
			FrameBudget: uint16(*budget),
			Logger:      logger,
		})
		return s.Run(ctx)
	})

	err = g.Wait()
	if errors.Is(err, sim.ErrQuit) {
		return nil
	}
	return err
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("oledtris-sim: %v", err)
	}
}
