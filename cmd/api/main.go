package main

import (
	"log"

	"app/internal/assets"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using process env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var productRepo repo.ProductRepository
	var userRepo repo.UserRepository

	if cfg.IsDev() {
		productRepo = infraRepo.NewProductMemoryRepository(infraRepo.SeedProducts())
		userRepo = infraRepo.NewUserMemoryRepository(seedUsers(cfg))
		log.Printf("dev mode: in-memory catalog and users")
	} else {
		gormDB, err := db.Connect(cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := gormDB.AutoMigrate(
			&model.Product{},
			&model.SizeStock{},
			&model.User{},
		); err != nil {
			log.Fatal(err)
		}
		productRepo = infraRepo.NewProductGormRepository(gormDB)
		userRepo = infraRepo.NewUserGormRepository(gormDB)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	cartRepo, err := infraRepo.NewCartRedisRepository(rdb)
	if err != nil {
		log.Fatal(err)
	}

	promoRepo := infraRepo.NewPromoMemoryRepository(infraRepo.SeedPromos())
	resolver := assets.NewResolver(cfg.AssetBaseURL)

	productUC := usecase.NewProductUsecase(productRepo, resolver)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	authUC := usecase.NewAuthUsecase(userRepo, []byte(cfg.Secret))
	promoUC := usecase.NewPromoUsecase(promoRepo)

	e := server.New(
		cfg,
		handler.NewProductHandler(productUC),
		handler.NewAdminProductHandler(productUC),
		handler.NewCartHandler(cartUC),
		handler.NewAuthHandler(authUC),
		handler.NewPromoHandler(promoUC),
	)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}
	if err := server.Start(e, addr); err != nil {
		log.Fatal(err)
	}
}

// seedUsers builds the dev admin account. Without ADMIN_PASSWORD the
// store starts with no users at all.
func seedUsers(cfg config.Config) []model.User {
	if cfg.AdminPassword == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return []model.User{
		{
			ID:           uuid.NewString(),
			Email:        cfg.AdminEmail,
			Name:         "Admin",
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
		},
	}
}
