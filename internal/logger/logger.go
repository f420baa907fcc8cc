package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BruksfildServices01/shop-scheduler/internal/config"
)

// New builds the process logger: JSON in production, console for
// local development.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.LogFormat {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		zapCfg = zap.NewProductionConfig()
	}

	return zapCfg.Build()
}
