package global

import (
	"ztna-portal/backend/config"

	"github.com/rs/zerolog"
)

var (
	Config *config.Config
	Logger zerolog.Logger
)
