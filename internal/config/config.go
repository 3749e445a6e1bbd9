package config

import (
	"fmt"
	"os"
	"strings"
)

type AppConfig struct {
	ListenAddr string

	DefaultMode      string
	DefaultHumanSide string

	MsgTemplateDir string
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ListenAddr:       ":8010",
		DefaultMode:      "human_vs_ai",
		DefaultHumanSide: "white",
	}

	if v := strings.TrimSpace(os.Getenv("CHESS_LISTEN_ADDR")); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_DEFAULT_MODE")); v != "" {
		cfg.DefaultMode = v
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_HUMAN_SIDE")); v != "" {
		cfg.DefaultHumanSide = strings.ToLower(v)
	}
	cfg.MsgTemplateDir = strings.TrimSpace(os.Getenv("CHESS_MSG_TEMPLATE_DIR"))

	switch cfg.DefaultMode {
	case "human_vs_ai", "human_vs_human":
	default:
		return nil, fmt.Errorf("CHESS_DEFAULT_MODE must be human_vs_ai or human_vs_human, got %q", cfg.DefaultMode)
	}
	switch cfg.DefaultHumanSide {
	case "white", "black":
	default:
		return nil, fmt.Errorf("CHESS_HUMAN_SIDE must be white or black, got %q", cfg.DefaultHumanSide)
	}

	return cfg, nil
}
