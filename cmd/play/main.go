package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	metricsinmem "phoenixcore/internal/adapter/metrics/inmemory"
	memrepo "phoenixcore/internal/adapter/repo/memory"
	"phoenixcore/internal/app/command"
	"phoenixcore/internal/app/guide"
	"phoenixcore/internal/tui"

	guidestatic "phoenixcore/internal/adapter/guide/static"
	worldstatic "phoenixcore/internal/adapter/world/static"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	worldProvider := worldstatic.NewBuiltin()
	if path := strings.TrimSpace(os.Getenv("PHOENIX_WORLD_FILE")); path != "" {
		p, err := worldstatic.NewFromFile(path)
		if err != nil {
			log.Fatalf("load world: %v", err)
		}
		worldProvider = p
	}

	playerName := strings.TrimSpace(os.Getenv("PHOENIX_PLAYER_NAME"))

	deps := tui.Deps{
		CommandUC: &command.UseCase{
			TxManager:   memrepo.NewTxManager(),
			SessionRepo: memrepo.NewSessionRepo(),
			CommandRepo: memrepo.NewCommandExecutionRepo(),
			EventRepo:   memrepo.NewEventRepo(),
			World:       worldProvider,
			Metrics:     metricsinmem.NewRecorder(),
			Now:         time.Now,
		},
		GuideUC:    guide.UseCase{Provider: guidestatic.NewBuiltin()},
		World:      worldProvider.Definition(),
		SessionID:  fmt.Sprintf("local-%d", time.Now().Unix()),
		PlayerName: playerName,
	}

	if err := tui.Run(deps); err != nil {
		log.Fatalf("run: %v", err)
	}
}
