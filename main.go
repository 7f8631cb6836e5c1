package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/radiofree/internal/announce"
	"github.com/llehouerou/radiofree/internal/app"
	"github.com/llehouerou/radiofree/internal/config"
	"github.com/llehouerou/radiofree/internal/errmsg"
	"github.com/llehouerou/radiofree/internal/host"
	"github.com/llehouerou/radiofree/internal/launch"
	"github.com/llehouerou/radiofree/internal/logging"
	"github.com/llehouerou/radiofree/internal/mpris"
	"github.com/llehouerou/radiofree/internal/mpv"
	"github.com/llehouerou/radiofree/internal/notify"
	"github.com/llehouerou/radiofree/internal/player"
	"github.com/llehouerou/radiofree/internal/radio"
	"github.com/llehouerou/radiofree/internal/session"
	"github.com/llehouerou/radiofree/internal/state"
	"github.com/llehouerou/radiofree/internal/stderr"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (toml or yaml)")
	headless := flag.Bool("headless", false, "play without the terminal UI")
	flag.Parse()

	if err := run(*configPath, *headless); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, headless bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logFile, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// libmpv and the ytdl hook write to fd 2, which would corrupt the TUI.
	if capture, err := stderr.Start(); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	} else {
		defer capture.Close()
		go stderr.Forward(ctx, capture.Lines(), logging.Component("mpv"))
	}

	store, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateLoad, err))
	}
	defer store.Close()

	if n, err := store.PruneTitles(cfg.Channels); err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpStateSave, err))
	} else if n > 0 {
		log.Debug().Int("removed", n).Msg("pruned titles of removed channels")
	}
	titles, err := store.Titles()
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpStateLoad, err))
	}

	resume := session.Restore(store, cfg.Channels, cfg.Volume, cfg.ResumeLastChannel, logging.Component("session"))

	loop := host.New()
	backend := mpv.New(loop.Post,
		mpv.WithFormat(cfg.Format),
		mpv.WithLogger(logging.Component("mpv")),
	)
	defer backend.Close()

	p := player.New(backend,
		player.WithVolume(resume.Volume),
		player.WithContainer(cfg.Container),
		player.WithLogger(logging.Component("player")),
	)
	r, err := radio.New(p, cfg.Channels,
		radio.WithStartIndex(resume.Index),
		radio.WithMaxConsecutiveSkips(cfg.MaxSkips()),
		radio.WithLogger(logging.Component("radio")),
	)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer r.Close()

	rec := session.Attach(r, store, logging.Component("session"))
	ann := newAnnouncer(ctx, r, loop, cfg)

	if srv, err := mpris.New(r, loop); err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
	} else {
		defer srv.Close()
	}

	loopCtx, cancelLoop := context.WithCancel(context.Background())
	loopDone := make(chan error, 1)
	go func() { loopDone <- loop.Run(loopCtx) }()
	loop.Post(p.NotifyHostReady)

	if headless {
		log.Info().Msg("playing headless")
		<-ctx.Done()
	} else {
		err = runTUI(ctx, r, loop, ann, titles)
	}

	// Final position save, then stop the loop before the deferred closes.
	finalSave(loop, func() {
		rec.Save()
		r.Pause()
	}, logging.Component("session"))
	cancelLoop()
	<-loopDone
	return err
}

// finalSave runs save on the loop. A loop that already stopped is logged,
// not treated as an error.
func finalSave(loop interface{ Do(func()) error }, save func(), logger zerolog.Logger) {
	if err := loop.Do(save); err != nil {
		logger.Debug().Err(err).Msg("final save skipped")
	}
}

func newAnnouncer(ctx context.Context, r *radio.Radio, loop *host.Loop, cfg *config.Config) *announce.Announcer {
	nc := cfg.GetNotificationsConfig()
	logger := logging.Component("announce")

	notifier := notify.NewStub()
	if nc.Enabled {
		n, err := notify.New()
		if err != nil {
			logger.Warn().Err(err).Msg("notifications unavailable")
		} else {
			notifier = n
		}
	}

	ann := announce.New(r, notifier, loop,
		announce.WithCooldown(nc.Cooldown),
		announce.WithTimeout(nc.Timeout),
		announce.WithIcon(nc.Icon),
		announce.WithOpener(launch.Browser),
		announce.WithLogger(logger),
	)
	go ann.Run(ctx)
	return ann
}

func runTUI(ctx context.Context, r *radio.Radio, loop *host.Loop, ann *announce.Announcer, titles map[string]state.ChannelTitle) error {
	m := app.New(app.Deps{
		Radio:          r,
		Runner:         loop,
		Sub:            r.Subscribe(),
		OpenLivestream: ann.OpenLivestream,
		Titles:         titles,
		Logger:         logging.Component("app"),
	})

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
