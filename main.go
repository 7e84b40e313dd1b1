package main

import (
	"net/http"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	appConfig "ytembed/config"
	"ytembed/handlers"
	"ytembed/history"
	"ytembed/sentry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	log.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"module"},
	})

	appConfig.NewConfig()

	if appConfig.Config.Sentry.IsEnabled() {
		sentry.Init()
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	store, err := history.New(appConfig.Config.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	manager, err := handlers.NewManager(store)
	if err != nil {
		return err
	}

	router := gin.Default()
	if appConfig.Config.Sentry.IsEnabled() {
		router.Use(sentry.GetSentryGin())
	}
	manager.Register(router)

	port := appConfig.Config.Options.Port
	if port == "" {
		port = "8080"
	}
	log.Infof("Starting harness on :%s", port)
	return http.ListenAndServe(":"+port, router)
}
