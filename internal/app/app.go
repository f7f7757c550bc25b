package app

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/edukit/coursehub/internal/adapters/storage"
	"github.com/edukit/coursehub/internal/adapters/web"
	"github.com/edukit/coursehub/internal/config"
	"github.com/edukit/coursehub/internal/core/domain"
	"github.com/edukit/coursehub/internal/core/services/audit"
	"github.com/edukit/coursehub/internal/core/services/auth"
	"github.com/edukit/coursehub/internal/core/services/course"
	"github.com/edukit/coursehub/internal/telemetry"
)

// Application is the facade for the whole system. Collaborators are built
// explicitly, leaves first, and passed as constructor arguments.
type Application struct {
	Config        *config.Config
	Store         *storage.SQLiteAdapter
	AuthService   *auth.AuthService
	CourseService *course.CourseService
	AuditService  *audit.AuditService
	WebServer     *web.Server
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

func (app *Application) bootstrap() error {
	telemetry.InitMetrics()

	store, err := storage.NewSQLiteAdapter(app.Config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	app.Store = store

	app.AuditService = audit.NewAuditService(store.Audit())

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenService([]byte(app.Config.JWTSecret), app.Config.TokenLifetime)
	app.AuthService = auth.NewAuthService(store.Users(), hasher, tokens, app.AuditService)
	app.CourseService = course.NewCourseService(store.Courses(), store.Users(), app.AuditService)

	if err := app.ensureDefaultAdmin(hasher); err != nil {
		log.Printf("Warning: could not ensure default admin: %v", err)
	}

	app.WebServer = web.NewServer(app.Config.Addr, app.AuthService, app.CourseService, app.AuditService)

	return nil
}

// ensureDefaultAdmin seeds an administrator account on first start when admin
// credentials are configured and the user table is empty.
func (app *Application) ensureDefaultAdmin(hasher *auth.PasswordHasher) error {
	if app.Config.AdminEmail == "" || app.Config.AdminPassword == "" {
		return nil
	}

	ctx := context.Background()
	users := app.Store.Users()

	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := hasher.Hash(app.Config.AdminPassword)
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:           uuid.New().String(),
		Fname:        "Admin",
		Lname:        "User",
		Email:        domain.NormalizeEmail(app.Config.AdminEmail),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Seeded default admin account %s", admin.Email)
	return nil
}

// Run starts the web server and blocks until shutdown.
func (app *Application) Run(ctx context.Context) error {
	defer app.Store.Close()
	return app.WebServer.Run(ctx)
}
