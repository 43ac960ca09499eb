// Package bootstrap wires configuration, storage, services and handlers into
// a runnable application. API server and worker both build from here.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "jumysal-backend/internal/auth"
	"jumysal-backend/internal/documents"
	"jumysal-backend/internal/export"
	"jumysal-backend/internal/faq"
	"jumysal-backend/internal/jobs"
	"jumysal-backend/internal/llm"
	"jumysal-backend/internal/llm/gemini"
	"jumysal-backend/internal/profiles"
	"jumysal-backend/internal/queue"
	"jumysal-backend/internal/resumes"
	"jumysal-backend/internal/shared/config"
	"jumysal-backend/internal/shared/server"
	"jumysal-backend/internal/shared/storage/db"
	"jumysal-backend/internal/shared/storage/object"
	localstore "jumysal-backend/internal/shared/storage/object/local"
	s3store "jumysal-backend/internal/shared/storage/object/s3"
	"jumysal-backend/internal/stats"
	"jumysal-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client

	UsersRepo    users.Repo
	ProfilesRepo profiles.Repo
	ResumesRepo  resumes.Repo
	DocsRepo     documents.Repo
	JobsRepo     jobs.Repo
	FAQRepo      faq.Repo

	UsersService    *users.Service
	ProfilesService *profiles.Service
	ResumeGenerator *resumes.Generator
	DocsService     *documents.Service
	JobsService     *jobs.Service
	FAQService      *faq.Service
	StatsService    *stats.Service

	GoogleAuth *googleauth.GoogleService
}

// Build prepares shared dependencies and the HTTP router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}

	buildRepos(app)
	if err := buildServices(app); err != nil {
		return nil, err
	}
	buildRouter(app)

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context) (queue.Client, error) {
	if strings.TrimSpace(os.Getenv("JUMYSAL_SQS_QUEUE_URL")) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func buildRepos(app *App) {
	if app.DB != nil {
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.DocsRepo = &documents.PGRepo{DB: app.DB}
		app.JobsRepo = &jobs.PGRepo{DB: app.DB}
		app.FAQRepo = &faq.PGRepo{DB: app.DB}
		return
	}
	app.UsersRepo = users.NewMemoryRepo()
	app.ProfilesRepo = profiles.NewMemoryRepo()
	app.ResumesRepo = resumes.NewMemoryRepo()
	app.DocsRepo = documents.NewMemoryRepo()
	app.JobsRepo = jobs.NewMemoryRepo()
	app.FAQRepo = faq.NewMemoryRepo()
}

func buildServices(app *App) error {
	cfg := app.Config

	llmClient := llm.Client(llm.PlaceholderClient{})
	if strings.TrimSpace(cfg.GeminiAPIKey) != "" {
		geminiClient, err := gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		llmClient = geminiClient
	} else if !isDevLike(cfg.Env) {
		return fmt.Errorf("GEMINI_API_KEY is required")
	} else {
		log.Printf("bootstrap: GEMINI_API_KEY empty; using placeholder LLM client")
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.ProfilesService = &profiles.Service{Repo: app.ProfilesRepo, Store: app.Store}
	app.ResumeGenerator = &resumes.Generator{
		LLM:                             llmClient,
		Models:                          cfg.ResumeModels,
		Repo:                            app.ResumesRepo,
		SuppressFallbackOnInvalidOutput: cfg.SuppressFallbackOnInvalidOutput,
	}
	app.DocsService = &documents.Service{Store: app.Store, Repo: app.DocsRepo}
	app.JobsService = jobs.NewService(app.JobsRepo)
	app.FAQService = faq.NewService(app.FAQRepo)
	app.StatsService = &stats.Service{
		Users:   app.UsersRepo,
		Jobs:    app.JobsRepo,
		Resumes: app.ResumesRepo,
	}
	app.GoogleAuth = googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		app.UsersService,
	)
	return nil
}

func buildRouter(app *App) {
	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		GoogleAuth:       app.GoogleAuth,
		UsersHandler:     users.NewHandler(app.UsersService),
		ProfilesHandler:  profiles.NewHandler(app.ProfilesService),
		ResumesHandler:   resumes.NewHandler(app.ResumeGenerator, app.ProfilesService, export.NewChromeRenderer(), app.Queue),
		DocumentsHandler: documents.NewHandler(app.DocsService),
		JobsHandler:      jobs.NewHandler(app.JobsService),
		FAQHandler:       faq.NewHandler(app.FAQService),
		StatsHandler:     stats.NewHandler(app.StatsService),
	})
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
