package config

import "os"

type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	ServerPort   string
	PollInterval string
	// ScoreDeduction is the fixed deduction in the task-ratio denominator
	// (admin plus assumed overhead roles). Parameterized for visibility but
	// the value must stay at 3 for score parity with past events.
	ScoreDeduction string
}

func Load() *Config {
	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "amongus"),
		JWTSecret:      getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		PollInterval:   getEnv("POLL_INTERVAL", "1"),
		ScoreDeduction: getEnv("SCORE_DEDUCTION", "3"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
