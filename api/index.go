package handler

import (
	"desk/config"
	"desk/di"
	"desk/shared/logger"
	"net/http"
	"sync"
)

var (
	service     http.Handler
	serviceOnce sync.Once
)

// Handler is the serverless entry point. The service graph is built on the
// first request and reused by warm invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	serviceOnce.Do(func() {
		logger.InitLogger()
		logger.SetLogLevel(config.Get())

		service = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
