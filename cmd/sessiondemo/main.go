package main

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/modules/demo"
	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/cookie"
	"github.com/dmitrymomot/sessionkit/pkg/environment"
	"github.com/dmitrymomot/sessionkit/pkg/httpserver"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/requestid"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"sessiondemo"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		cookieCfg  cookie.Config
		sessionCfg session.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&cookieCfg)
	config.MustLoad(&sessionCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	cookies, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		log.Error("failed to create cookie manager", logger.Error(err))
		os.Exit(1)
	}

	sessions := session.NewFromConfig(sessionCfg, cookies)

	r := chi.NewRouter()
	r.Use(environment.Middleware(environment.Environment(appCfg.Env)))
	r.Get("/health", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/", demo.Router(demo.NewHandler(sessions, cookies, log), log))

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.Error("server terminated", logger.Error(err))
		os.Exit(1)
	}
}
