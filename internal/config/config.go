package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	BackendURL  string
	DBDSN       string
	LogFile     string
	HTTPTimeout time.Duration
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	backend := os.Getenv("BACKEND_URL")
	if backend == "" {
		backend = "http://localhost:8090/api"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "tacgear.db"
	} // sqlite file in project root, holds persisted credentials
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./tacgear.log"
	}
	timeout := 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	cfg := Config{Port: port, BackendURL: backend, DBDSN: dsn, LogFile: logFile, HTTPTimeout: timeout}
	log.Printf("[config] PORT=%s BACKEND_URL=%s DB_DSN=%s LOG_FILE=%s HTTP_TIMEOUT=%s",
		cfg.Port, cfg.BackendURL, cfg.DBDSN, cfg.LogFile, cfg.HTTPTimeout)
	return cfg
}
