package handlers

import (
	"context"

	"wrist_surgery_app_go/config"
	"wrist_surgery_app_go/services"
	"wrist_surgery_app_go/services/geo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler serves the landing page and its two flows
type Handler struct {
	cfg      *config.Config
	resolver *geo.Resolver
	workflow *services.AppointmentWorkflow
	db       *gorm.DB
	logger   *zap.Logger

	verifyTurnstile func(ctx context.Context, token, secretKey, ip string) (bool, error)
}

func New(cfg *config.Config, resolver *geo.Resolver, workflow *services.AppointmentWorkflow, dbConn *gorm.DB, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		cfg:             cfg,
		resolver:        resolver,
		workflow:        workflow,
		db:              dbConn,
		logger:          logger,
		verifyTurnstile: services.VerifyTurnstileToken,
	}
}
