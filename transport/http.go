package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	listingapp "github.com/muhammadheryan/car-market/application/listing"
	supportapp "github.com/muhammadheryan/car-market/application/support"
	userapp "github.com/muhammadheryan/car-market/application/user"
	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/muhammadheryan/car-market/constant"
	"github.com/muhammadheryan/car-market/thirdparty/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	config     *config.Config
	UserApp    userapp.UserApp
	ListingApp listingapp.ListingApp
	SupportApp supportapp.SupportApp
}

func NewTransport(cfg *config.Config, userApp userapp.UserApp, listingApp listingapp.ListingApp, supportApp supportapp.SupportApp) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		config:     cfg,
		UserApp:    userApp,
		ListingApp: listingApp,
		SupportApp: supportApp,
	}

	auth := AuthMiddleware(userApp)
	admin := func(h http.HandlerFunc) http.Handler { return auth(AdminMiddleware()(h)) }
	protected := func(h http.HandlerFunc) http.Handler { return auth(h) }

	// Swagger UI and metrics
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	if cfg.Storage.Driver == constant.StorageDriverLocal {
		router.PathPrefix(storage.PublicUploadsPrefix).Handler(
			http.StripPrefix(storage.PublicUploadsPrefix, http.FileServer(http.Dir(cfg.Storage.UploadDir))),
		).Methods(http.MethodGet)
	}

	// Public routes
	router.HandleFunc("/api/inscription", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/connexion", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodGet)
	router.HandleFunc("/allsales", rh.ListListings).Methods(http.MethodGet)
	router.HandleFunc("/sale/{id}", rh.GetListing).Methods(http.MethodGet)
	router.HandleFunc("/api/search", rh.SearchListings).Methods(http.MethodGet)
	router.HandleFunc("/api/contacter", rh.CreateMessage).Methods(http.MethodPost)

	// Protected routes
	router.Handle("/getJwt", protected(rh.GetSession)).Methods(http.MethodGet)
	router.Handle("/profile/{id}", protected(rh.GetProfile)).Methods(http.MethodGet)
	router.Handle("/profile/{id}", protected(rh.UpdateProfile)).Methods(http.MethodPut)
	router.Handle("/deleteuser/{id}", protected(rh.DeleteAccount)).Methods(http.MethodDelete)
	router.Handle("/addSales", protected(rh.CreateListing)).Methods(http.MethodPost)
	router.Handle("/api/annonces", protected(rh.ListMyListings)).Methods(http.MethodGet)
	router.Handle("/sale/{id}", protected(rh.DeleteListing)).Methods(http.MethodDelete)

	// Admin routes
	router.Handle("/allusers", admin(rh.ListUsers)).Methods(http.MethodGet)
	router.Handle("/deletethisuser/{id}", admin(rh.DeleteUser)).Methods(http.MethodDelete)
	router.Handle("/allmessages", admin(rh.ListMessages)).Methods(http.MethodGet)
	router.Handle("/deletemessage/{id}", admin(rh.DeleteMessage)).Methods(http.MethodDelete)

	// Internal routes, called by the image purge worker
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/images/purge", rh.PurgeImages).Methods(http.MethodPost)

	// middleware
	router.Use(RouteLabelMiddleware())

	// CORS sits outside the router so preflight requests never reach route matching.
	// Logging is outermost so 404s, 405s and 429s are logged and counted too.
	handler := CORSMiddleware(cfg.CORS)(RateLimitMiddleware(cfg.RateLimit)(router))
	return LoggingMiddleware()(handler)
}
