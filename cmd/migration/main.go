package main

import (
	"flag"
	"log"

	"github.com/hugohenrick/lojista-x/internal/config"
	"github.com/hugohenrick/lojista-x/internal/infrastructure/database"
)

func main() {
	down := flag.Int("down", 0, "quantidade de migrações a reverter")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}
	url := cfg.Database.ConnectionString()

	if *down > 0 {
		if err := database.RollbackMigrations(url, *down); err != nil {
			log.Fatalf("Erro ao reverter migrações: %v", err)
		}
		log.Printf("%d migração(ões) revertida(s)", *down)
		return
	}

	version, err := database.RunMigrations(url)
	if err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
	log.Printf("Migrações executadas com sucesso! Versão atual: %d", version)
}
