package app

import (
	"github.com/yungbote/gratitude-backend/internal/platform/envutil"
)

type Config struct {
	Port        string
	LogMode     string
	CORSOrigins []string
}

func LoadConfig() Config {
	return Config{
		Port:        envutil.Str("PORT", "5000"),
		LogMode:     envutil.Str("LOG_MODE", "development"),
		CORSOrigins: envutil.List("CORS_ORIGINS", nil),
	}
}
