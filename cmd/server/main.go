package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/Janiciete/to-do-list/internal/config"
	"github.com/Janiciete/to-do-list/internal/serverapp"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("todolist_config.yml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	config.ApplyEnv(cfg)

	handler, closeStorage, err := serverapp.NewHandler(serverapp.Options{
		Config:    cfg,
		StaticDir: "static",
		Logger:    log.Default(),
	})
	if err != nil {
		log.Fatalf("build server: %v", err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	log.Printf("listening on http://localhost%s", cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(cfg.Server.Addr, handler))
}
