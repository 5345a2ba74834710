package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	MongoURI       string
	MongoDBName    string
	ImagesDir      string
	ConnectTimeout int // milliseconds
	SocketTimeout  int // milliseconds
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// mongoURI prefers a full MONGO_URI and otherwise assembles one from the
// host/port/credential variables.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	host := getenv("MONGO_HOST", "localhost")
	port := getenv("MONGO_PORT", "27017")
	user := os.Getenv("MONGO_USERNAME")
	pass := os.Getenv("MONGO_PASSWORD")

	credentials := ""
	if user != "" && pass != "" {
		credentials = fmt.Sprintf("%s:%s@", user, pass)
	}
	return fmt.Sprintf("mongodb://%s%s:%s/", credentials, host, port)
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8000"),
		MongoURI:       mongoURI(),
		MongoDBName:    getenv("MONGO_DB_NAME", "kiosk"),
		ImagesDir:      getenv("IMAGES_DIR", "resources/images"),
		ConnectTimeout: 5000,
		SocketTimeout:  5000,
	}
	log.Printf("[config] HTTP_ADDR=%s", cfg.HTTPAddr)
	log.Printf("[config] MONGO_DB_NAME=%s", cfg.MongoDBName)
	log.Printf("[config] IMAGES_DIR=%s", cfg.ImagesDir)
	return cfg
}
