package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/effluxation/fend-neighborhood-map/internal/domain/model"
)

// Config アプリケーション全体の設定
type Config struct {
	Port    string
	GinMode string

	PointsSource string
	PointsFile   string

	YelpAPIKey       string
	YelpBaseURL      string
	CORSRelayURL     string
	DirectoryTimeout time.Duration

	SessionTTL time.Duration

	Map model.MapOptions

	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string
	DatabaseURL        string

	FirestoreProjectID string
	CredentialsFile    string
}

// Load は.envファイルと環境変数から設定を読み込む
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ .envファイルが見つかりません（環境変数を直接使用）: %v", err)
	}
	return FromEnv()
}

// FromEnv は環境変数から設定を組み立てる
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		PointsSource:       getEnv("POINTS_SOURCE", model.PointsSourceStatic),
		PointsFile:         os.Getenv("POINTS_FILE"),
		YelpAPIKey:         os.Getenv("YELP_API_KEY"),
		YelpBaseURL:        getEnv("YELP_BASE_URL", "https://api.yelp.com/v3"),
		CORSRelayURL:       os.Getenv("CORS_RELAY_URL"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseDBPassword: os.Getenv("SUPABASE_DB_PASSWORD"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		CredentialsFile:    os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		Map: model.MapOptions{
			MarkerIcon: getEnv("MARKER_ICON", "img/temple-2.png"),
		},
	}

	var err error
	if cfg.DirectoryTimeout, err = getDuration("DIRECTORY_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Map.Center.Lat, err = getFloat("MAP_CENTER_LAT", 35.6895); err != nil {
		return nil, err
	}
	if cfg.Map.Center.Lng, err = getFloat("MAP_CENTER_LNG", 139.6917); err != nil {
		return nil, err
	}
	if cfg.Map.Zoom, err = getInt("MAP_ZOOM", 12); err != nil {
		return nil, err
	}
	if cfg.Map.PanelMaxWidth, err = getInt("PANEL_MAX_WIDTH", 250); err != nil {
		return nil, err
	}

	switch cfg.PointsSource {
	case model.PointsSourceStatic, model.PointsSourcePostgres, model.PointsSourceSupabase, model.PointsSourceFirestore:
	default:
		return nil, fmt.Errorf("POINTS_SOURCE の値が不正です: %s", cfg.PointsSource)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s の解析に失敗: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s の解析に失敗: %w", key, err)
	}
	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s の解析に失敗: %w", key, err)
	}
	return n, nil
}
