package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Base URL backend REST (survey storage, scoring, auth decisions)
	BackendBaseURL string

	// Target deployment remote untuk route proxy same-origin
	ProxyTargetBaseURL string

	// Dev mode: identity bisa di-mock dan role bisa di-switch
	DevMode              bool
	DevToolsPasswordHash string

	// Delay kosmetik sebelum redirect ke halaman hasil (bukan correctness,
	// hanya pacing UI; bisa di-set 0 lewat env untuk test/CI)
	SubmitDelay time.Duration

	// TTL attempt survey di Redis
	AttemptTTL time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	BackendBaseURL = GetEnv("BACKEND_BASE_URL", "http://localhost:8080")
	ProxyTargetBaseURL = GetEnv("PROXY_TARGET_BASE_URL", BackendBaseURL)
	DevMode = GetEnvBool("DEV_MODE", false)
	DevToolsPasswordHash = GetEnv("DEV_TOOLS_PASSWORD_HASH")
	SubmitDelay = GetEnvDuration("SUBMIT_DELAY", 3*time.Second)
	AttemptTTL = GetEnvDuration("ATTEMPT_TTL", 24*time.Hour)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if GetEnv("BACKEND_BASE_URL") == "" {
		log.Println("⚠️ BACKEND_BASE_URL belum diset, fallback ke", BackendBaseURL)
	} else {
		log.Println("✅ BACKEND_BASE_URL berhasil dimuat.")
	}

	if DevMode {
		log.Println("🧪 DEV_MODE aktif: mock identity & switch-role tersedia.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️ %s bukan boolean valid (%q), pakai default %v", key, v, def)
		return def
	}
	return b
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️ %s bukan duration valid (%q), pakai default %s", key, v, def)
		return def
	}
	return d
}
