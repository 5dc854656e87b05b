package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/gym-rutinas/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatal("Failed to start server:", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		log.Fatal("Failed to shutdown server:", err)
	}

	log.Println("Server stopped gracefully")
}
