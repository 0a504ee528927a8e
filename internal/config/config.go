package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration du serveur, chargée depuis
// l'environnement (.env en développement)
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	LeaderboardStaleAfter time.Duration // fenêtre de péremption du classement
	LeaderboardFetchDelay time.Duration // pause entre deux fetches membres
	CatalogTTL            time.Duration // durée de vie du catalogue de problèmes
	ActivityLogCap        int           // plafond du journal d'activité
}

// LoadConfig charge le .env s'il existe puis lit les variables d'environnement
func LoadConfig() (*Config, error) {
	// Pas d'erreur si le fichier manque: en prod tout vient de l'environnement
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "tsap_club"),

		LeaderboardStaleAfter: getEnvDuration("LEADERBOARD_STALE_AFTER", 15*time.Minute),
		LeaderboardFetchDelay: getEnvDuration("LEADERBOARD_FETCH_DELAY", 500*time.Millisecond),
		CatalogTTL:            getEnvDuration("CATALOG_TTL", time.Hour),
		ActivityLogCap:        getEnvInt("ACTIVITY_LOG_CAP", 50),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT ne peut pas être vide")
	}

	return cfg, nil
}

// HasDatabase indique si une base est configurée. Sans base, le serveur
// tourne en mode mémoire: écritures no-op, données d'exemple en lecture.
func (c *Config) HasDatabase() bool {
	return c.DBHost != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
