// File: cmd/webapp/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"inventario-lab/internal/webapp"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("variable de entorno SESSION_SECRET no definida")
	}
	listenAddr := os.Getenv("WEBAPP_ADDR")
	if listenAddr == "" {
		listenAddr = ":5000"
	}

	srv := webapp.NewServer(apiURL, sessionSecret)

	log.Printf("webapp escuchando en %s (API en %s)", listenAddr, apiURL)
	log.Fatal(http.ListenAndServe(listenAddr, srv.Routes()))
}
