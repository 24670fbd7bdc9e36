package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/peershare/item-sharing-backend/internal/auth"
	"github.com/peershare/item-sharing-backend/internal/booking"
	bookingHttp "github.com/peershare/item-sharing-backend/internal/booking/http"
	"github.com/peershare/item-sharing-backend/internal/item"
	itemHttp "github.com/peershare/item-sharing-backend/internal/item/http"
	"github.com/peershare/item-sharing-backend/internal/itemrequest"
	requestHttp "github.com/peershare/item-sharing-backend/internal/itemrequest/http"
	"github.com/peershare/item-sharing-backend/internal/user"
	userHttp "github.com/peershare/item-sharing-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService itemrequest.Service
}

// NewRouter initializes the HTTP router engine. It assembles middleware
// (recovery, request logging, CORS, sharer identity) and registers the
// routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), auth.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", auth.SharerHeader}
	r.Use(cors.New(corsConfig))

	// sharerMiddleware: resolves the acting user from X-Sharer-User-Id.
	sharerMiddleware := auth.SharerRequired()

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, sharerMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, sharerMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, sharerMiddleware)
	}

	return r
}
