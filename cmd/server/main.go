package main

import (
	"fmt"
	"log"

	"github.com/JpGomes035/SGSV/internal/config"
	"github.com/JpGomes035/SGSV/internal/database"
	"github.com/JpGomes035/SGSV/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("SGSV listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
