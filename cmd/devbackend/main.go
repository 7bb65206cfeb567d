package main

import (
	"log"
	"os"

	"tacgear/internal/devserver"
)

func main() {
	dsn := os.Getenv("DEVBACKEND_DSN")
	if dsn == "" {
		dsn = "devbackend.db"
	}
	addr := os.Getenv("DEVBACKEND_ADDR")
	if addr == "" {
		addr = ":8090"
	}

	db, err := devserver.OpenDB(dsn)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("[devbackend] listening on %s (dsn=%s)", addr, dsn)
	log.Fatal(devserver.New(db).Listen(addr))
}
