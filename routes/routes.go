// routes/routes.go
package routes

import (
	"github.com/ashishkumar9589411421-svg/navya-jewels/controllers"
	"github.com/ashishkumar9589411421-svg/navya-jewels/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, orderController *controllers.OrderController, contactController *controllers.ContactController, adminController *controllers.AdminController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.LoginForm).Methods("GET")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/logout", userController.Logout).Methods("POST")
	router.HandleFunc("/contact", contactController.SubmitContact).Methods("POST")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Cart routes (anonymous carts are fine, the session cookie keys them)
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart/add/{id}", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart/remove/{id}", cartController.RemoveFromCart).Methods("POST")
	router.HandleFunc("/cart/update", cartController.UpdateCart).Methods("POST")

	// Checkout and orders need a signed-in customer; anonymous callers are
	// redirected to the login page.
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.RequireAuth)
	protected.HandleFunc("/checkout", orderController.Checkout).Methods("GET")
	protected.HandleFunc("/checkout", orderController.PlaceOrder).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAuth)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/users", adminController.ListUsers).Methods("GET")
	admin.HandleFunc("/orders", adminController.ListOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", adminController.UpdateOrderStatus).Methods("PUT")
	admin.HandleFunc("/orders/{id}", adminController.DeleteOrder).Methods("DELETE")
	admin.HandleFunc("/contacts", adminController.ListContacts).Methods("GET")
	admin.HandleFunc("/contacts/{id}/status", adminController.UpdateContactStatus).Methods("PUT")
	admin.HandleFunc("/contacts/{id}", adminController.DeleteContact).Methods("DELETE")
}
