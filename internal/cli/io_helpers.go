package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"yt-study-copilot/internal/api"
	"yt-study-copilot/internal/config"
)

// env groups the pieces every command needs: resolved config, a client,
// and the debug logger.
type env struct {
	cfg    config.Config
	client *api.Client
	log    *zap.Logger
}

func newEnv() (env, error) {
	cfg, err := config.Load()
	if err != nil {
		return env{}, err
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		return env{}, err
	}
	client, err := api.New(api.Options{BaseURL: cfg.APIBaseURL, Logger: log})
	if err != nil {
		return env{}, err
	}
	return env{cfg: cfg, client: client, log: log}, nil
}

func (e env) close() {
	_ = e.log.Sync()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func promptRequired(label string) (string, error) {
	if !stdinIsTTY() {
		return "", fmt.Errorf("%s is required", label)
	}
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%s is required", label)
	}
	return value, nil
}

func stdinIsTTY() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func requirePackID(raw int) (int, error) {
	if raw <= 0 {
		return 0, fmt.Errorf("--pack is required and must be a positive id")
	}
	return raw, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
