package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ashishkumar9589411421-svg/navya-jewels/models"
	"github.com/ashishkumar9589411421-svg/navya-jewels/store"
	"github.com/gorilla/mux"
)

// ProductController handles catalog requests
type ProductController struct {
	Store store.Store
}

// NewProductController creates a new ProductController
func NewProductController(s store.Store) *ProductController {
	return &ProductController{Store: s}
}

// GetProducts lists the catalog, optionally filtered by ?metal= and ?carat=.
// A carat of 0 (or an unparsable one) means no purity filter.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if err := store.LoadOrEmpty(pc.Store, store.Products, &products); err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	if metal := r.URL.Query().Get("metal"); metal != "" {
		carat, _ := strconv.Atoi(r.URL.Query().Get("carat"))
		products = models.FilterByMetal(products, metal, carat)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	var products []models.Product
	if err := store.LoadOrEmpty(pc.Store, store.Products, &products); err != nil {
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}

	product, ok := models.FindProduct(products, params["id"])
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}
