// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	authfeature "github.com/huddlehq/huddle/internal/app/features/auth"
	groupsfeature "github.com/huddlehq/huddle/internal/app/features/groups"
	healthfeature "github.com/huddlehq/huddle/internal/app/features/health"
	postsfeature "github.com/huddlehq/huddle/internal/app/features/posts"
	qrfeature "github.com/huddlehq/huddle/internal/app/features/qr"
	sysauth "github.com/huddlehq/huddle/internal/app/system/auth"
	"github.com/huddlehq/huddle/internal/app/system/requestid"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// Huddle is a JSON API: every feature router speaks JSON, and protected
// routes require a bearer token verified by the auth manager.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := sysauth.NewManager(appCfg.JWTSecret, appCfg.TokenExpiry, logger)

	r := chi.NewRouter()

	r.Use(requestid.Middleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", requestid.Header},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Signup, login, and the current-user endpoint
	authHandler := authfeature.NewHandler(deps.MongoDatabase, tokens, logger)
	r.Mount("/auth", authfeature.Routes(authHandler, tokens))

	// Groups, with posts nested under each group
	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
	gr := groupsfeature.Routes(groupsHandler, tokens)

	postsHandler := postsfeature.NewHandler(deps.MongoDatabase, logger)
	gr.Mount("/{groupID}/posts", postsfeature.Routes(postsHandler, tokens))

	r.Mount("/groups", gr)

	// Invite QR images and join-link resolution
	qrHandler := qrfeature.NewHandler(deps.MongoDatabase, appCfg.BaseURL, logger)
	r.Mount("/qr", qrfeature.Routes(qrHandler))

	return r, nil
}
