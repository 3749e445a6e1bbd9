package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/park285/talk-chess-core/internal/ai"
	"github.com/park285/talk-chess-core/internal/board"
	"github.com/park285/talk-chess-core/internal/command"
	appcfg "github.com/park285/talk-chess-core/internal/config"
	"github.com/park285/talk-chess-core/internal/httpapi"
	"github.com/park285/talk-chess-core/internal/msgcat"
	"github.com/park285/talk-chess-core/internal/obslog"
	"github.com/park285/talk-chess-core/internal/present"
	"github.com/park285/talk-chess-core/internal/store"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}

	cat, err := msgcat.New(cfg.MsgTemplateDir)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}

	st := store.New()
	st.Reset(store.Mode(cfg.DefaultMode), board.Color(cfg.DefaultHumanSide))

	engine := command.NewEngine(st, ai.NewSelector())
	srv := httpapi.New(engine, present.NewFormatter(cat))

	go func() {
		obslog.L().Info("chess_core_listening", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
			obslog.L().Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for termination signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	_ = srv.Shutdown()
	obslog.L().Info("chess_core_stopped")
}
