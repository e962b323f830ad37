package main

import (
	"desk/config"
	"desk/di"
	"desk/shared/logger"
)

//	@title			desk API
//	@version		1.0
//	@description	Bookings and contact requests with a status board.
//	@BasePath		/v1

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
