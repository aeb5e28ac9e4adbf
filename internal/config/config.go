package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Map      MapConfig
	Events   EventsConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsCacheTTL   time.Duration
	MarkersCacheTTL time.Duration
}

type MapConfig struct {
	TileURLTemplate string
	TileAttribution string
	TileMaxZoom     int
}

type EventsConfig struct {
	Enabled   bool
	StreamKey string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsCacheTTL:   time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
			MarkersCacheTTL: time.Duration(viper.GetInt("MARKERS_CACHE_TTL")) * time.Second,
		},
		Map: MapConfig{
			TileURLTemplate: viper.GetString("MAP_TILE_URL_TEMPLATE"),
			TileAttribution: viper.GetString("MAP_TILE_ATTRIBUTION"),
			TileMaxZoom:     viper.GetInt("MAP_TILE_MAX_ZOOM"),
		},
		Events: EventsConfig{
			Enabled:   viper.GetBool("EVENTS_ENABLED"),
			StreamKey: viper.GetString("EVENTS_STREAM_KEY"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 60 * time.Second
	}
	if cfg.Cache.MarkersCacheTTL == 0 {
		cfg.Cache.MarkersCacheTTL = 60 * time.Second
	}
	if cfg.Map.TileURLTemplate == "" {
		cfg.Map.TileURLTemplate = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	}
	if cfg.Map.TileAttribution == "" {
		cfg.Map.TileAttribution = "&copy; OpenStreetMap contributors"
	}
	if cfg.Map.TileMaxZoom == 0 {
		cfg.Map.TileMaxZoom = 19
	}
	if cfg.Events.StreamKey == "" {
		cfg.Events.StreamKey = "tourism:site-events"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
