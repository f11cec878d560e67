package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	adminapp "github.com/dimasprsty/storefront/application/admin"
	authapp "github.com/dimasprsty/storefront/application/auth"
	cartapp "github.com/dimasprsty/storefront/application/cart"
	catalogapp "github.com/dimasprsty/storefront/application/catalog"
	orderapp "github.com/dimasprsty/storefront/application/order"
	_ "github.com/dimasprsty/storefront/docs"
)

type RestHandler struct {
	AuthApp    authapp.AuthApp
	CatalogApp catalogapp.CatalogApp
	CartApp    cartapp.CartApp
	OrderApp   orderapp.OrderApp
	AdminApp   adminapp.AdminApp
}

func NewTransport(authApp authapp.AuthApp, catalogApp catalogapp.CatalogApp, cartApp cartapp.CartApp, orderApp orderapp.OrderApp, adminApp adminapp.AdminApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AuthApp:    authApp,
		CatalogApp: catalogApp,
		CartApp:    cartApp,
		OrderApp:   orderApp,
		AdminApp:   adminApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/admin/login", rh.AdminLogin).Methods(http.MethodPost)
	router.HandleFunc("/products", rh.SearchProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/featured", rh.FeaturedProducts).Methods(http.MethodGet)
	router.HandleFunc("/products/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)

	// Authenticated routes
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/cart", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart", rh.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/items/{id:[0-9]+}", rh.UpdateCartItem).Methods(http.MethodPut)
	router.HandleFunc("/cart/items/{id:[0-9]+}", rh.RemoveCartItem).Methods(http.MethodDelete)
	router.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)
	router.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id:[0-9]+}", rh.GetOrder).Methods(http.MethodGet)

	// Admin back office
	admin := router.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/products", rh.AdminCreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id:[0-9]+}", rh.AdminUpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id:[0-9]+}", rh.AdminDeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/categories", rh.AdminCreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/categories/{id:[0-9]+}", rh.AdminUpdateCategory).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{id:[0-9]+}", rh.AdminDeleteCategory).Methods(http.MethodDelete)
	admin.Use(AdminMiddleware())

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(authApp))

	return router
}
