package handler

import (
	"net/http"
	"pororo/config"
	"pororo/di"
	"pororo/shared/failure"
	"pororo/shared/logger"
	"pororo/transport/http/response"
	"sync"

	pororoHTTP "pororo/transport/http"
)

var (
	app     *pororoHTTP.HTTP
	initErr error
	once    sync.Once
)

// Handler is the serverless entry point. The ledger lives as long as the
// function instance does.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app, initErr = di.InitializeService()
	})

	if initErr != nil {
		response.WithError(w, failure.InternalError(initErr))

		return
	}

	app.ServeHTTP(w, r)
}
