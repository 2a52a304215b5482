package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-vault/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-vault/internal/config"
	"github.com/KirkDiggler/character-vault/internal/domain/character"
	"github.com/KirkDiggler/character-vault/internal/domain/rulebook"
	"github.com/KirkDiggler/character-vault/internal/repositories/characters"
	charService "github.com/KirkDiggler/character-vault/internal/services/character"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	classes, err := rulebook.NewClassCatalog()
	if err != nil {
		log.Fatalf("Failed to load class tables: %v", err)
	}

	engine, err := character.NewEngine(&character.EngineConfig{
		Classes:     classes,
		Races:       rulebook.NewRaceCatalog(),
		Backgrounds: rulebook.NewBackgroundCatalog(),
		Weapons:     rulebook.NewWeaponCatalog(),
		Armor:       rulebook.NewArmorCatalog(),
		Items:       rulebook.NewItemCatalog(),
		Feats:       rulebook.NewFeatCatalog(),
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	var repository charService.Repository
	log.Printf("Connecting to Redis at: %s", cfg.Redis.Addr)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory repository")
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
		redisClient = nil
		repository = characters.NewInMemoryRepository()
	} else {
		log.Println("Successfully connected to Redis")
		repository = characters.NewRedis(redisClient)
	}
	defer func() {
		if redisClient == nil {
			return
		}
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
	}()

	svc := charService.NewService(&charService.ServiceConfig{
		Engine:     engine,
		Repository: repository,
	})

	chars, err := svc.ListAllCharacters(ctx)
	if err != nil {
		log.Fatalf("Failed to list characters: %v", err)
	}
	log.Printf("Vault holds %d character(s)", len(chars))

	if cfg.DND5E.Enabled {
		checkCatalogs()
	}
}

// checkCatalogs spot-checks local catalog entries against the published API
// data and logs any drift
func checkCatalogs() {
	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	})
	if err != nil {
		log.Printf("Failed to create D&D 5e client: %v", err)
		return
	}

	weapons := rulebook.NewWeaponCatalog()
	for _, key := range []string{"longsword", "greataxe", "dagger"} {
		published, err := client.GetWeapon(key)
		if err != nil {
			log.Printf("Failed to fetch weapon %s: %v", key, err)
			continue
		}
		local, _ := weapons.ByName(published.Name)
		if local == nil {
			log.Printf("Catalog drift: weapon %s missing locally", published.Name)
			continue
		}
		if local.DamageDice != published.DamageDice {
			log.Printf("Catalog drift: %s damage %s locally, %s published",
				published.Name, local.DamageDice, published.DamageDice)
		}
	}

	armor := rulebook.NewArmorCatalog()
	for _, key := range []string{"chain-mail", "leather-armor", "shield"} {
		published, err := client.GetArmor(key)
		if err != nil {
			log.Printf("Failed to fetch armor %s: %v", key, err)
			continue
		}
		local, _ := armor.ByName(published.Name)
		if local == nil {
			// The local catalog names some body armor with an "Armor" suffix
			local, _ = armor.ByName(published.Name + " Armor")
		}
		if local == nil {
			log.Printf("Catalog drift: armor %s missing locally", published.Name)
			continue
		}
		if local.BaseAC != published.BaseAC {
			log.Printf("Catalog drift: %s base AC %d locally, %d published",
				published.Name, local.BaseAC, published.BaseAC)
		}
	}
}
