package main

import (
	"nexo/bot"
	"nexo/config"
	"nexo/logger"

	"github.com/joho/godotenv"
)

func main() {
	log := logger.New()

	// .env es opcional; la variable puede venir del entorno real.
	if err := godotenv.Load(); err == nil {
		log.Info("variables cargadas desde .env")
	}

	if err := config.Load(log); err != nil {
		log.Fatal("error de configuración", "error", err)
	}

	b, err := bot.New(log)
	if err != nil {
		log.Fatal("no se pudo crear el bot", "error", err)
	}
	if err := b.Start(); err != nil {
		log.Fatal("el bot terminó con error", "error", err)
	}
}
