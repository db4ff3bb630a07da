// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ashishkumar9589411421-svg/navya-jewels/controllers"
	"github.com/ashishkumar9589411421-svg/navya-jewels/middleware"
	"github.com/ashishkumar9589411421-svg/navya-jewels/routes"
	"github.com/ashishkumar9589411421-svg/navya-jewels/session"
	"github.com/ashishkumar9589411421-svg/navya-jewels/store"
	"github.com/ashishkumar9589411421-svg/navya-jewels/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Open the flat-file record store
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	recordStore := store.NewFileStore(dataDir)

	// Session state (carts live here, keyed by a browser cookie)
	sessions := session.NewManager()

	// Initialize controllers
	userController := controllers.NewUserController(recordStore)
	productController := controllers.NewProductController(recordStore)
	cartController := controllers.NewCartController(recordStore, sessions)
	orderController := controllers.NewOrderController(recordStore, sessions, emailService)
	contactController := controllers.NewContactController(recordStore, emailService)
	adminController := controllers.NewAdminController(recordStore)

	// Set up the router
	router := mux.NewRouter()
	// Register routes
	routes.RegisterRoutes(router, userController, productController, cartController, orderController, contactController, adminController)

	// Resolve tokens on every request; protected subrouters enforce them
	router.Use(middleware.AuthMiddleware)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
