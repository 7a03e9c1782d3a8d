package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/YuvaneshV12/chrono-gift/internal/application/audit"
	giftapp "github.com/YuvaneshV12/chrono-gift/internal/application/gift"
	"github.com/YuvaneshV12/chrono-gift/internal/application/identity"
	"github.com/YuvaneshV12/chrono-gift/internal/application/media"
	"github.com/YuvaneshV12/chrono-gift/internal/application/message"
	"github.com/YuvaneshV12/chrono-gift/internal/config"
	"github.com/YuvaneshV12/chrono-gift/internal/infrastructure/dynamo"
	googleinfra "github.com/YuvaneshV12/chrono-gift/internal/infrastructure/google"
	jwtinfra "github.com/YuvaneshV12/chrono-gift/internal/infrastructure/jwt"
	s3infra "github.com/YuvaneshV12/chrono-gift/internal/infrastructure/s3"
	"github.com/YuvaneshV12/chrono-gift/internal/infrastructure/smtp"
	"github.com/YuvaneshV12/chrono-gift/internal/transport/http/handler"
	appmiddleware "github.com/YuvaneshV12/chrono-gift/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo        *dynamo.UserRepo
	GiftRepo        *dynamo.GiftRepo
	TransactionRepo *dynamo.TransactionRepo
	MessageRepo     *dynamo.MessageRepo
	MediaStore      *s3infra.Store
	Mailer          smtp.Mailer
	GoogleVerifier  *googleinfra.Verifier
	JWTProvider     *jwtinfra.Provider // nil when no key pair is configured
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	displayLoc, err := time.LoadLocation(cfg.UnlockTimezone)
	if err != nil {
		slog.Warn("invalid unlock timezone, falling back to UTC", "tz", cfg.UnlockTimezone)
		displayLoc = time.UTC
	}

	auditSvc := audit.NewRecorder(deps.TransactionRepo)
	identitySvc := identity.NewService(deps.GoogleVerifier, deps.UserRepo)
	giftSvc := giftapp.NewService(giftapp.ServiceDeps{
		GiftRepo:      deps.GiftRepo,
		Audit:         auditSvc,
		Mailer:        deps.Mailer,
		DisplayLoc:    displayLoc,
		PublicBaseURL: cfg.PublicBaseURL,
	})
	messageSvc := message.NewService(deps.MessageRepo, deps.GiftRepo)
	mediaSvc := media.NewService(deps.MediaStore)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(identitySvc, signerOrNil(deps.JWTProvider))
	giftH := handler.NewGiftHandler(giftSvc, identitySvc)
	messageH := handler.NewMessageHandler(messageSvc)
	txH := handler.NewTransactionHandler(auditSvc)
	mediaH := handler.NewMediaHandler(mediaSvc)
	proxyH := handler.NewProxyHandler(cfg.ProxyOfferURL)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health", healthH.Ping)
		r.Post("/auth/google", authH.Google)
		r.Post("/gift", giftH.Create)
		r.Post("/gift/open", giftH.Open)
		r.Post("/gift/messages", messageH.Create)
		r.Get("/gift/messages/{giftId}", messageH.ListByGift)
		r.Get("/gift/{id}", giftH.Get)
		r.Get("/proxy-offer", proxyH.Offer)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/gifts", giftH.ListMine)
			r.Get("/transactions", txH.List)
			r.Post("/media", mediaH.Upload)
		})
	})

	return r
}

// signerOrNil keeps the handler's interface value nil when no provider is
// configured (a non-nil interface holding a nil pointer would defeat the
// handler's nil check).
func signerOrNil(p *jwtinfra.Provider) handler.TokenSigner {
	if p == nil {
		return nil
	}
	return p
}
