package main

import (
	"FarmKeeper/internal/config"
	"FarmKeeper/internal/handlers"
	"FarmKeeper/internal/middleware"
	"FarmKeeper/internal/repo"
	"FarmKeeper/internal/service"
	"FarmKeeper/internal/storage"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	images, err := storage.NewDiskImageStore(cfg.UploadDir)
	if err != nil {
		sugar.Fatalw("failed to initialize image store", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	farmRepo := repo.NewFarmRepository(gormDB)
	animalRepo := repo.NewAnimalRepository(gormDB)
	farmTypeRepo := repo.NewFarmTypeRepository(gormDB)
	productionTypeRepo := repo.NewProductionTypeRepository(gormDB)

	userService := service.NewUserService(userRepo, cfg.AuthSecret)
	farmService := service.NewFarmService(farmRepo, farmTypeRepo, productionTypeRepo, images)
	animalService := service.NewAnimalService(animalRepo, farmRepo)
	farmTypeService := service.NewFarmTypeService(farmTypeRepo)
	productionTypeService := service.NewProductionTypeService(productionTypeRepo)
	statsService := service.NewStatsService(animalRepo, farmRepo)

	h := handlers.NewHandler(
		userService,
		farmService,
		animalService,
		farmTypeService,
		productionTypeService,
		statsService,
		sugar,
		cfg,
	)

	sugar.Infow("Starting server",
		"addr", cfg.RunAddress,
		"upload_dir", cfg.UploadDir,
	)

	if err := http.ListenAndServe(cfg.RunAddress, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
