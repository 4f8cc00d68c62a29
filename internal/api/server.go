package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/tdrmf/foundation-api/internal/api/handler/v1"
	"github.com/tdrmf/foundation-api/internal/api/middleware"
	"github.com/tdrmf/foundation-api/internal/config"
	"github.com/tdrmf/foundation-api/internal/repository"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
	"github.com/tdrmf/foundation-api/internal/service"
	"github.com/tdrmf/foundation-api/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// NewServer wires the full handler stack. The payment provider, object
// store and mailer are injected so tests can swap in fakes.
func NewServer(
	conf *config.AppConfig,
	db *gorm.DB,
	store storage.ObjectStore,
	provider service.PaymentProvider,
	mailer Mailer,
) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	auditSvc := service.NewAuditService(repository.NewAuditRepository(dao.NewAuditDAO(db)))
	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	authHandler := s.initAuthHandler(db)
	eventHandler := s.initEventHandler(db, auditSvc)
	donationHandler := s.initDonationHandler(db, provider, mailer)
	galleryHandler := s.initGalleryHandler(db, store, auditSvc)
	sponsorHandler := s.initSponsorHandler(db, auditSvc)
	contactHandler := s.initContactHandler(db, mailer)
	auditHandler := v1.NewAuditHandler(auditSvc)

	s.MountHandlers(userSvc, authHandler, eventHandler, donationHandler, galleryHandler, sponsorHandler, contactHandler, auditHandler)

	return s
}

// Mailer is everything the handler stack sends mail for.
type Mailer interface {
	SendDonationReceipt(to string, amountCents int64, donationID uint) error
	SendContactNotification(name, email, subject, message string) error
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB, audit *service.AuditService) *v1.EventHandler {
	eventDAO := dao.NewEventDAO(db)
	repo := repository.NewEventRepository(eventDAO)
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc, audit)

	return handler
}

func (s *Server) initDonationHandler(db *gorm.DB, provider service.PaymentProvider, mailer Mailer) *v1.DonationHandler {
	donationDAO := dao.NewDonationDAO(db)
	repo := repository.NewDonationRepository(donationDAO)
	svc := service.NewDonationService(repo, provider, mailer)
	handler := v1.NewDonationHandler(svc)

	return handler
}

func (s *Server) initGalleryHandler(db *gorm.DB, store storage.ObjectStore, audit *service.AuditService) *v1.GalleryHandler {
	galleryDAO := dao.NewGalleryDAO(db)
	repo := repository.NewGalleryRepository(galleryDAO)
	svc := service.NewGalleryService(repo, store)
	handler := v1.NewGalleryHandler(svc, audit)

	return handler
}

func (s *Server) initSponsorHandler(db *gorm.DB, audit *service.AuditService) *v1.SponsorHandler {
	sponsorDAO := dao.NewSponsorDAO(db)
	repo := repository.NewSponsorRepository(sponsorDAO)
	svc := service.NewSponsorService(repo)
	handler := v1.NewSponsorHandler(svc, audit)

	return handler
}

func (s *Server) initContactHandler(db *gorm.DB, mailer Mailer) *v1.ContactHandler {
	contactDAO := dao.NewContactDAO(db)
	repo := repository.NewContactRepository(contactDAO)
	svc := service.NewContactService(repo, mailer)
	handler := v1.NewContactHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	userSvc *service.UserService,
	authHandler *v1.AuthHandler,
	eventHandler *v1.EventHandler,
	donationHandler *v1.DonationHandler,
	galleryHandler *v1.GalleryHandler,
	sponsorHandler *v1.SponsorHandler,
	contactHandler *v1.ContactHandler,
	auditHandler *v1.AuditHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/register", authHandler.HandleRegister)
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/events", eventHandler.HandleListUpcoming)
		public.GET("/events/:eventID", eventHandler.HandleGetEvent)
		public.POST("/events/:eventID/rsvp", eventHandler.HandleCreateRSVP)

		public.POST("/donations/checkout", donationHandler.HandleCheckout)
		public.POST("/donations/webhook", donationHandler.HandleWebhook)

		public.GET("/gallery", galleryHandler.HandleListApproved)
		public.POST("/gallery/submit", galleryHandler.HandleSubmit)

		public.GET("/sponsors", sponsorHandler.HandleListActive)

		public.POST("/contact", contactHandler.HandleSubmit)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey, userSvc).VerifyJWT())
	{
		admin.GET("/auth/me", authHandler.HandleGetMe)

		admin.POST("/admin/events", eventHandler.HandleCreateEvent)
		admin.GET("/admin/events", eventHandler.HandleListAllEvents)
		admin.PUT("/admin/events/:eventID", eventHandler.HandleUpdateEvent)
		admin.DELETE("/admin/events/:eventID", eventHandler.HandleDeleteEvent)
		admin.GET("/admin/events/:eventID/rsvps", eventHandler.HandleCountRSVPs)

		admin.GET("/admin/gallery/pending", galleryHandler.HandleListPending)
		admin.PUT("/admin/gallery/:photoID/approve", galleryHandler.HandleModerate)
		admin.DELETE("/admin/gallery/:photoID", galleryHandler.HandleDeletePhoto)

		admin.POST("/admin/sponsors", sponsorHandler.HandleCreateTier)
		admin.GET("/admin/sponsors", sponsorHandler.HandleListAllTiers)
		admin.PUT("/admin/sponsors/:tierID", sponsorHandler.HandleUpdateTier)
		admin.DELETE("/admin/sponsors/:tierID", sponsorHandler.HandleDeleteTier)

		admin.GET("/admin/donations", donationHandler.HandleListDonations)
		admin.GET("/admin/donations/stats", donationHandler.HandleDonationStats)

		admin.GET("/admin/audit", auditHandler.HandleHistory)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
