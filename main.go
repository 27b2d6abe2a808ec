package main

import (
	"log"

	"CampusVault/config"
	"CampusVault/internal/cache"
	"CampusVault/internal/handler"
	"CampusVault/internal/repo"
	"CampusVault/internal/service"
	"CampusVault/internal/storage"
	"CampusVault/router"
)

// main initializes services and starts the HTTP server.
func main() {
	cfg := config.LoadConfig()

	db := repo.InitMysql(cfg)
	lookupCache := cache.New(repo.InitRedis(cfg))

	var store storage.Store
	switch cfg.StorageDriver {
	case "minio":
		minioStore, err := storage.NewMinioStore(cfg)
		if err != nil {
			log.Fatal("init minio fail", err)
		}
		store = minioStore
	default:
		diskStore, err := storage.NewDiskStore(cfg.UploadDir)
		if err != nil {
			log.Fatal("init upload dir fail", err)
		}
		store = diskStore
	}

	users := service.NewUserService(db, lookupCache)
	resources := service.NewResourceService(db, store, lookupCache, cfg.AllowedExtensions)
	groups := service.NewGroupService(db)
	messages := service.NewMessageService(db)

	r := router.InitRouter(cfg, router.Handlers{
		Auth:      handler.NewAuthHandler(users, cfg),
		Users:     handler.NewUserHandler(users),
		Resources: handler.NewResourceHandler(resources),
		Groups:    handler.NewGroupHandler(groups),
		Messages:  handler.NewMessageHandler(messages),
	})

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal("server stopped", err)
	}
}
