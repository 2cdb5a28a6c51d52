package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"skillmatch_backend/internals/configs"
)

var Redis *redis.Client

// ConnectRedis membuka koneksi Redis untuk attempt survey & blacklist session.
func ConnectRedis() {
	log.Println("🔌 Koneksi ke Redis...")

	Redis = redis.NewClient(&redis.Options{
		Addr:     configs.GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		// Tidak fatal: attempt flow yang butuh Redis akan error per-request,
		// halaman publik tetap jalan
		log.Printf("⚠️ Redis belum siap: %v", err)
		return
	}
	log.Println("✅ Redis connected.")
}
