// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/client"
	"github.com/swfavorites/swfavorites-service/controller"
	"github.com/swfavorites/swfavorites-service/db"
	"github.com/swfavorites/swfavorites-service/metrics"
	mService "github.com/swfavorites/swfavorites-service/migration/service"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/security"
	"github.com/swfavorites/swfavorites-service/service"
	"github.com/swfavorites/swfavorites-service/view"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

type repositories struct {
	userRepo      repository.UserRepository
	characterRepo repository.CharacterRepository
	planetRepo    repository.PlanetRepository
	favoritesRepo repository.FavoritesRepository
}

func initLogging(systemInfoService service.SystemInfoService) {
	log.SetFormatter(&prefixed.TextFormatter{
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		FullTimestamp:   true,
		ForceFormatting: true,
	})
	level, err := log.ParseLevel(systemInfoService.GetLogLevel())
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if logFile := systemInfoService.GetLogFile(); logFile != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}))
	}
}

// initStorage opens the configured store and brings its schema up to date.
func initStorage(systemInfoService service.SystemInfoService) (*repositories, io.Closer, error) {
	if systemInfoService.GetStorageType() == view.StoragePostgres {
		cp, err := db.NewConnectionProvider(systemInfoService.GetDatabaseUrl())
		if err != nil {
			return nil, nil, err
		}
		migrationService, err := mService.NewDBMigrationService(cp, systemInfoService.GetBasePath())
		if err != nil {
			return nil, nil, err
		}
		if err = runMigrations(migrationService); err != nil {
			return nil, nil, err
		}
		return &repositories{
			userRepo:      repository.NewUserRepositoryPG(cp),
			characterRepo: repository.NewCharacterRepositoryPG(cp),
			planetRepo:    repository.NewPlanetRepositoryPG(cp),
			favoritesRepo: repository.NewFavoritesRepositoryPG(cp),
		}, cp, nil
	}

	bp, err := db.NewBoltProvider(systemInfoService.GetLocalDbPath())
	if err != nil {
		return nil, nil, err
	}
	if err = runMigrations(mService.NewBoltMigrationService(bp)); err != nil {
		return nil, nil, err
	}
	return &repositories{
		userRepo:      repository.NewUserRepositoryBolt(bp),
		characterRepo: repository.NewCharacterRepositoryBolt(bp),
		planetRepo:    repository.NewPlanetRepositoryBolt(bp),
		favoritesRepo: repository.NewFavoritesRepositoryBolt(bp),
	}, bp, nil
}

func runMigrations(migrationService mService.DBMigrationService) error {
	currentVersion, newVersion, err := migrationService.Migrate()
	if err != nil {
		return err
	}
	if currentVersion != newVersion {
		log.Infof("Storage schema migrated from version %d to %d", currentVersion, newVersion)
	} else {
		log.Debugf("Storage schema is up to date, version %d", currentVersion)
	}
	return nil
}

func main() {
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		panic(err)
	}
	initLogging(systemInfoService)
	log.Infof("Starting swfavorites service, version %s, storage %s",
		systemInfoService.GetBackendVersion(), systemInfoService.GetStorageType())

	readyChan := make(chan bool, 1)

	repos, storage, err := initStorage(systemInfoService)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer storage.Close()
	readyChan <- true

	metrics.RegisterAllPrometheusApplicationMetrics()
	cronInstance := cron.New()

	favoritesViewBuilder := service.NewFavoritesViewBuilder(repos.favoritesRepo, repos.characterRepo, repos.planetRepo)
	userService := service.NewUserService(repos.userRepo, repos.favoritesRepo, favoritesViewBuilder)
	characterService := service.NewCharacterService(repos.characterRepo, repos.favoritesRepo)
	planetService := service.NewPlanetService(repos.planetRepo, repos.favoritesRepo)
	favoritesService := service.NewFavoritesService(repos.favoritesRepo, repos.userRepo, repos.characterRepo, repos.planetRepo, favoritesViewBuilder)
	excelService := service.NewExcelService(repos.favoritesRepo, repos.userRepo, repos.characterRepo, repos.planetRepo)
	metricsService := service.NewMetricsService(repos.favoritesRepo, cronInstance)
	swapiClient := client.NewSwapiClient(systemInfoService.GetSwapiUrl())
	swapiImportService := service.NewSwapiImportService(swapiClient, repos.characterRepo, repos.planetRepo, cronInstance)

	zeroDayAdminService := service.NewZeroDayAdminService(userService, systemInfoService)
	if err := zeroDayAdminService.CreateZeroDayAdmin(); err != nil {
		log.Warnf("Zero day admin was not created: %v", err)
	}

	if err := security.SetupGoGuardian(userService, systemInfoService); err != nil {
		log.Fatalf("Can't setup go_guardian: %v", err)
	}

	if err := metricsService.CreateJob(systemInfoService.GetMetricsGetterSchedule()); err != nil {
		log.Errorf("Failed to start metrics getter job: %v", err)
	}
	if schedule := systemInfoService.GetSwapiImportSchedule(); schedule != "" {
		if err := swapiImportService.CreateJob(schedule); err != nil {
			log.Errorf("Failed to start SWAPI import job: %v", err)
		}
	}
	cronInstance.Start()
	defer cronInstance.Stop()

	router := makeRouter(controllers{
		health:      controller.NewHealthController(readyChan),
		systemInfo:  controller.NewSystemInfoController(systemInfoService),
		character:   controller.NewCharacterController(characterService),
		planet:      controller.NewPlanetController(planetService),
		user:        controller.NewUserController(userService),
		favorites:   controller.NewFavoritesController(favoritesService, excelService),
		swapiImport: controller.NewSwapiImportController(swapiImportService),
	})

	srv := &http.Server{
		Addr:              systemInfoService.GetListenAddress(),
		Handler:           makeHandler(router, systemInfoService.GetOriginAllowed()),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      300 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Graceful shutdown failed: %v", err)
		}
	}()

	log.Infof("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Errorf("Server failed: %v", err)
	}
}
