package main

import (
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/dkrasnov/shrtnr/internal/app/server"
	"github.com/dkrasnov/shrtnr/internal/app/service"
	"github.com/dkrasnov/shrtnr/internal/config"
	"github.com/dkrasnov/shrtnr/internal/logger"
	"github.com/dkrasnov/shrtnr/internal/middleware"
	"github.com/dkrasnov/shrtnr/internal/repository"
	"github.com/dkrasnov/shrtnr/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()
	hostname := options.Port
	baseURL := options.BaseURL
	filePath := options.FilePath
	dbName := options.DatabaseDSN
	useTLS := options.EnableHTTPS

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	var s service.Store

	log := logger.New()
	defer log.Sync()

	err := log.Init("Info")
	zapLogger := log.Log
	if err != nil {
		panic(err)
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	if dbName != "" {
		zapLogger.Info("using db", zap.String("dbName", dbName))
		db := repository.InitDB(dbName, log.Named("repository"))
		defer db.Close()
		s = repository.CreateURLRepository(db, log.Named("repository"))
		zapLogger.Info("Database connected and table ready.")
	} else if filePath != "" {
		zapLogger.Info("using file", zap.String("filePath", filePath))

		fs, err := storage.NewFileStorage(filePath, log.Named("filestorage"))
		if err != nil {
			panic(err)
		}
		defer fs.Close()
		s = fs
	} else {
		zapLogger.Info("using in memory storage")

		s, err = storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
	}

	shortener := service.NewShortener(s, zapLogger, options.SlugLength)

	admission := middleware.NewAdmissionControl(middleware.DefaultAdmission)
	defer admission.Stop()

	r := server.Init(baseURL, zapLogger, shortener, admission)

	if useTLS {
		tlsHost := hostname
		if parsed, err := url.Parse(baseURL); err == nil && parsed.Host != "" {
			tlsHost = parsed.Host
		}

		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(tlsHost),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", hostname))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", hostname))
		err = http.ListenAndServe(hostname, r)

		if err != nil {
			panic(err)
		}
	}
}
