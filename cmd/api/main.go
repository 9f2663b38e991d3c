package main

import (
	_ "veredicto/docs"
	"veredicto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Veredicto API
// @version         1.0
// @description     Report paywall service (analysis reports + paid unlocks) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
