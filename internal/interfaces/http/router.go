package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	consentUsecases "lifeline/internal/application/consent/usecases"
	fingerprintUsecases "lifeline/internal/application/fingerprint/usecases"
	protectionUsecases "lifeline/internal/application/protection/usecases"
	violationUsecases "lifeline/internal/application/violation/usecases"
	watermarkUsecases "lifeline/internal/application/watermark/usecases"
	"lifeline/internal/infrastructure/account"
	"lifeline/internal/infrastructure/auth"
	"lifeline/internal/infrastructure/biometric"
	"lifeline/internal/infrastructure/config"
	"lifeline/internal/infrastructure/email"
	"lifeline/internal/infrastructure/ledger"
	"lifeline/internal/infrastructure/ratelimit"
	"lifeline/internal/infrastructure/repository"
	"lifeline/internal/infrastructure/token"
	"lifeline/internal/infrastructure/watermarking"
	"lifeline/internal/interfaces/http/handlers"
	"lifeline/internal/interfaces/http/middleware"
	"lifeline/internal/interfaces/http/routes"
	"lifeline/internal/shared/logger"
	"lifeline/internal/shared/services/markdown"
	"lifeline/internal/shared/utils"
)

// Router wires repositories, services, use cases, and handlers into a gin
// engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	trustHandler      *handlers.TrustHandler
	watermarkHandler  *handlers.WatermarkHandler
	consentHandler    *handlers.ConsentHandler
	violationHandler  *handlers.ViolationHandler
	protectionHandler *handlers.ProtectionHandler

	authMiddleware  *middleware.AuthMiddleware
	publicRateLimit gin.HandlerFunc
}

// NewRouter builds the full HTTP dependency graph.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories
	fingerprintRepo := repository.NewFingerprintRepository(db, log)
	watermarkRepo := repository.NewWatermarkRepository(db, log)
	violationRepo := repository.NewViolationRepository(db, log)
	documentRepo := repository.NewConsentDocumentRepository(db, log)
	signatureRepo := repository.NewConsentSignatureRepository(db, log)
	accessLogRepo := repository.NewAccessLogRepository(db, log)

	// Infrastructure services
	anchorClient := ledger.NewHTTPAnchorClient(
		cfg.Ledger.Endpoint, cfg.Ledger.APIKey, cfg.Ledger.Network, cfg.Ledger.TimeoutSeconds, log)
	tokenGenerator, err := token.NewHKDFTokenGenerator(cfg.Protection.TokenSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to build token generator: %w", err)
	}
	embedder := watermarking.NewStegoEmbedder()
	verifier := biometric.NewHTTPVerifier(cfg.Biometric.Endpoint, cfg.Biometric.TimeoutSeconds, log)
	accountNotifier := account.NewHTTPNotifier(
		cfg.Account.Endpoint, cfg.Account.APIKey, cfg.Account.TimeoutSeconds, log)
	opsMailer := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		OpsAddress:  cfg.Email.OpsAddress,
	})
	renderer := markdown.NewService()

	// Use cases
	anchorContentUC := fingerprintUsecases.NewAnchorContentUseCase(fingerprintRepo, anchorClient, log)
	verifyHashUC := fingerprintUsecases.NewVerifyHashUseCase(fingerprintRepo, log)
	getBadgeUC := fingerprintUsecases.NewGetBadgeUseCase(fingerprintRepo, cfg.Ledger.Network, log)
	reanchorPendingUC := fingerprintUsecases.NewReanchorPendingUseCase(fingerprintRepo, anchorClient, log)

	issueWatermarkUC := watermarkUsecases.NewIssueWatermarkUseCase(watermarkRepo, tokenGenerator, log)
	listIssuancesUC := watermarkUsecases.NewListIssuancesUseCase(watermarkRepo, log)
	traceTokenUC := watermarkUsecases.NewTraceTokenUseCase(watermarkRepo, log)
	embedMediaUC := watermarkUsecases.NewEmbedMediaUseCase(watermarkRepo, embedder, log)

	getActiveDocumentUC := consentUsecases.NewGetActiveDocumentUseCase(documentRepo, renderer, log)
	signConsentUC := consentUsecases.NewSignConsentUseCase(documentRepo, signatureRepo, verifier, accountNotifier, log)
	checkConsentUC := consentUsecases.NewCheckConsentUseCase(documentRepo, signatureRepo, log)
	revokeConsentUC := consentUsecases.NewRevokeConsentUseCase(signatureRepo, accountNotifier, log)
	listSignaturesUC := consentUsecases.NewListSignaturesUseCase(signatureRepo, log)

	violationLimit := int64(cfg.Protection.ViolationLimit)
	reportCaptureUC := violationUsecases.NewReportCaptureUseCase(violationRepo, accountNotifier, opsMailer, violationLimit, log)
	getViolationStatusUC := violationUsecases.NewGetViolationStatusUseCase(violationRepo, violationLimit, log)
	listViolationsUC := violationUsecases.NewListViolationsUseCase(violationRepo, log)

	requestAccessUC := protectionUsecases.NewRequestAccessUseCase(
		checkConsentUC, issueWatermarkUC, accessLogRepo, cfg.Protection.WatermarkKind, log)
	listAccessLogUC := protectionUsecases.NewListAccessLogUseCase(accessLogRepo, log)

	// HTTP layer
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var publicRateLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		publicRateLimit = middleware.PublicRateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: 60,
			RequestsPerHour:   600,
		}, log)
	}

	return &Router{
		engine: engine,
		cfg:    cfg,
		logger: log,
		trustHandler: handlers.NewTrustHandler(
			anchorContentUC, verifyHashUC, getBadgeUC, reanchorPendingUC, log),
		watermarkHandler: handlers.NewWatermarkHandler(
			issueWatermarkUC, listIssuancesUC, traceTokenUC, embedMediaUC, log),
		consentHandler: handlers.NewConsentHandler(
			getActiveDocumentUC, signConsentUC, checkConsentUC, revokeConsentUC, listSignaturesUC, log),
		violationHandler: handlers.NewViolationHandler(
			reportCaptureUC, getViolationStatusUC, listViolationsUC, log),
		protectionHandler: handlers.NewProtectionHandler(
			requestAccessUC, listAccessLogUC, log),
		authMiddleware:  authMiddleware,
		publicRateLimit: publicRateLimit,
	}, nil
}

// SetupRoutes registers every route group on the engine.
func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	routes.SetupTrustRoutes(r.engine, &routes.TrustRouteConfig{
		TrustHandler:    r.trustHandler,
		AuthMiddleware:  r.authMiddleware,
		PublicRateLimit: r.publicRateLimit,
	})

	routes.SetupWatermarkRoutes(r.engine, &routes.WatermarkRouteConfig{
		WatermarkHandler: r.watermarkHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupConsentRoutes(r.engine, &routes.ConsentRouteConfig{
		ConsentHandler: r.consentHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupViolationRoutes(r.engine, &routes.ViolationRouteConfig{
		ViolationHandler: r.violationHandler,
		AuthMiddleware:   r.authMiddleware,
	})

	routes.SetupProtectionRoutes(r.engine, &routes.ProtectionRouteConfig{
		ProtectionHandler: r.protectionHandler,
		AuthMiddleware:    r.authMiddleware,
	})
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
