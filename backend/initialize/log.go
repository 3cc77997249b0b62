package initialize

import (
	"os"

	"ztna-portal/backend/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	// basic zerolog setup: console writer to stdout
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}
