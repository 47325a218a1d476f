package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"turnroom/auth"
	"turnroom/infrastructure/remote"
	"turnroom/infrastructure/storage"
	"turnroom/infrastructure/stream"
	"turnroom/internal"
	"turnroom/presence"
	"turnroom/projection"
	"turnroom/runtime"
	"turnroom/runtime/workers"
	"turnroom/seen"
	"turnroom/services"
	"turnroom/turn"
)

// Exit codes to provide meaningful status to the operating system or
// service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper. Its only responsibility
	// is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomclient terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the client lifecycle, and
// centralizes error reporting, so that every defer executes before the
// process exits.
func run() (int, error) {
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := internal.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Identity comes from the platform session token, read once.
	identity := auth.NewTokenIdentity(config.SessionToken)
	user, err := identity.CurrentUser(ctx)
	if err != nil {
		return exitConfig, fmt.Errorf("identity: %w", err)
	}

	// Local history cache (BadgerDB) behind the remote data port.
	options := badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil)
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("history cache opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing history cache...")
		_ = db.Close()
	}()

	port := storage.NewCachedPort(
		remote.NewHTTPPort(logger, config.APIBaseURL, config.SessionToken),
		storage.NewHistoryCache(db, logger),
		logger,
	)

	// Local read models, all sharing one render signal.
	notifier := projection.NewNotifier()
	timeline := projection.NewTimeline(logger, config.RoomID, config.PageSize, notifier)
	reactions := projection.NewReactionSet(logger, notifier)
	roster := projection.NewRoster(logger, config.RoomID, port, notifier)
	session := turn.NewSessionHolder(logger, notifier)
	tracker := presence.NewTracker(logger, notifier)
	batcher := seen.NewBatcher(logger, port, config.SeenFlushDelay, notifier)

	room := services.NewRoomService(logger, user, config.RoomID, port,
		timeline, reactions, roster, session, tracker, batcher, notifier, config.PageSize)

	if err := room.Open(ctx); err != nil {
		return exitRuntime, fmt.Errorf("room open failed: %w", err)
	}
	defer room.Close()

	// Realtime feed and cooldown re-derive run under supervision.
	feed, err := stream.Dial(ctx, logger, config.RealtimeURL, config.SessionToken, user.ID, config.StreamBuffer)
	if err != nil {
		return exitRuntime, err
	}

	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(runtime.NewReconciler(logger, feed, config.RoomID,
		timeline, reactions, roster, session, tracker))
	supervisor.Add(turn.NewCooldownTicker(logger, session, config.CooldownTick, notifier))
	go supervisor.Run(ctx)
	defer supervisor.Stop()

	go readInput(ctx, room, logger)

	render := newRenderer(os.Stdout, room, user)
	render.draw(time.Now())
	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down")
			return exitOK, nil
		case <-room.Changed():
			render.draw(time.Now())
		}
	}
}

// readInput turns stdin lines into actions: plain text sends a chat
// message, "/turn ..." answers the prompt, "/react <id> <emoji>"
// toggles, "/older" pages history, "/nudge" pokes the turn holder.
func readInput(ctx context.Context, room services.IRoomService, logger *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var err error
		switch {
		case strings.HasPrefix(line, "/turn "):
			err = room.SubmitText(ctx, strings.TrimPrefix(line, "/turn "))
		case strings.HasPrefix(line, "/react "):
			fields := strings.Fields(line)
			if len(fields) == 3 {
				err = room.React(ctx, fields[1], fields[2])
			}
		case line == "/older":
			_, err = room.LoadOlderPage(ctx)
		case line == "/nudge":
			err = room.Nudge(ctx)
		default:
			err = room.Send(ctx, line, "")
		}
		if err != nil {
			logger.Warn("Action failed", "error", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}
