package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	guidestatic "phoenixcore/internal/adapter/guide/static"
	httpadapter "phoenixcore/internal/adapter/http"
	metricsinmem "phoenixcore/internal/adapter/metrics/inmemory"
	memrepo "phoenixcore/internal/adapter/repo/memory"
	worldstatic "phoenixcore/internal/adapter/world/static"
	"phoenixcore/internal/app/command"
	"phoenixcore/internal/app/guide"
	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/app/replay"
	"phoenixcore/internal/app/status"

	gormrepo "phoenixcore/internal/adapter/repo/gorm"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	sessionRepo, commandRepo, eventRepo, txManager := mustBuildRepos()
	worldProvider := mustBuildWorldProvider()
	guideProvider := buildGuideProvider()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		CommandUC: &command.UseCase{
			TxManager:   txManager,
			SessionRepo: sessionRepo,
			CommandRepo: commandRepo,
			EventRepo:   eventRepo,
			World:       worldProvider,
			Metrics:     kpiRecorder,
			Now:         time.Now,
		},
		StatusUC: status.UseCase{SessionRepo: sessionRepo, World: worldProvider},
		ReplayUC: replay.UseCase{Events: eventRepo},
		GuideUC:  guide.UseCase{Provider: guideProvider},
		KPI:      kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("PHOENIX_HTTP_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("phoenixcore server listening on %s", addr)
	s.Spin()
}

// mustBuildRepos picks the storage backend from the environment: a postgres
// DSN selects the gorm repositories, otherwise everything runs in memory.
func mustBuildRepos() (ports.SessionRepository, ports.CommandExecutionRepository, ports.EventRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("PHOENIX_DB_DSN"))
	if dsn == "" {
		log.Println("PHOENIX_DB_DSN not set, using in-memory repositories")
		return memrepo.NewSessionRepo(), memrepo.NewCommandExecutionRepo(), memrepo.NewEventRepo(), memrepo.NewTxManager()
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	// A migrations directory switches the schema over to versioned SQL files;
	// without one the models auto-migrate.
	if dir := strings.TrimSpace(os.Getenv("PHOENIX_MIGRATIONS_DIR")); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	} else if err := gormrepo.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewSessionRepo(db), gormrepo.NewCommandExecutionRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}

func mustBuildWorldProvider() ports.WorldProvider {
	path := strings.TrimSpace(os.Getenv("PHOENIX_WORLD_FILE"))
	if path == "" {
		return worldstatic.NewBuiltin()
	}
	p, err := worldstatic.NewFromFile(path)
	if err != nil {
		log.Fatalf("load world: %v", err)
	}
	return p
}

func buildGuideProvider() ports.GuideProvider {
	path := strings.TrimSpace(os.Getenv("PHOENIX_GUIDE_FILE"))
	if path == "" {
		return guidestatic.NewBuiltin()
	}
	return guidestatic.NewFromFile(path)
}
