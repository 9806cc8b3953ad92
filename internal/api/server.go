package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/vaccination/docs"
	v1 "github.com/yizeng/gab/gin/gorm/vaccination/internal/api/handler/v1"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/config"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth         *v1.AuthHandler
	catalog      *v1.CatalogHandler
	parent       *v1.ParentHandler
	hospital     *v1.HospitalHandler
	healthWorker *v1.HealthWorkerHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	accountRepo := repository.NewAccountRepository(dao.NewAccountDAO(db))
	childRepo := repository.NewChildRepository(dao.NewChildDAO(db))
	vaccinationRepo := repository.NewVaccinationRepository(dao.NewVaccinationDAO(db))

	authSvc := service.NewAuthService(accountRepo)
	childSvc := service.NewChildService(childRepo)
	hospitalSvc := service.NewHospitalService(accountRepo)
	reminderSvc := service.NewReminderService(childRepo, vaccinationRepo)
	vaccinationSvc := service.NewVaccinationService(vaccinationRepo, childRepo, accountRepo, s.Config.Payment.FlatFeeCents)

	return handlers{
		auth:         v1.NewAuthHandler(s.Config.API, authSvc),
		catalog:      v1.NewCatalogHandler(vaccinationSvc),
		parent:       v1.NewParentHandler(childSvc, vaccinationSvc, reminderSvc),
		hospital:     v1.NewHospitalHandler(hospitalSvc, vaccinationSvc),
		healthWorker: v1.NewHealthWorkerHandler(vaccinationSvc),
	}
}

func (s *Server) MountMiddlewares() {
	// Recovery is needed unless we use gin.Default().
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", h.auth.HandleSignup)
		auth.POST("/auth/login", h.auth.HandleLogin)
	}

	signedIn := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		signedIn.GET("/me", h.auth.HandleGetMe)
		signedIn.GET("/vaccines", h.catalog.HandleListVaccines)
		signedIn.GET("/hospitals", h.catalog.HandleListHospitals)
	}

	parent := s.Router.Group(basePath+"/parent", authenticator.VerifyJWT(), middleware.RequireRole(domain.RoleParent))
	{
		parent.GET("/children", h.parent.HandleListChildren)
		parent.POST("/children", h.parent.HandleAddChild)
		parent.GET("/appointments", h.parent.HandleListAppointments)
		parent.POST("/appointments", h.parent.HandleBookAppointment)
		parent.POST("/appointments/:appointmentID/payment", h.parent.HandlePay)
		parent.GET("/reminders", h.parent.HandleListReminders)
	}

	hospital := s.Router.Group(basePath+"/hospital", authenticator.VerifyJWT(), middleware.RequireRole(domain.RoleHospital))
	{
		hospital.GET("/appointments", h.hospital.HandleListAppointments)
		hospital.GET("/health-workers", h.hospital.HandleListHealthWorkers)
		hospital.POST("/health-workers", h.hospital.HandleAddHealthWorker)
	}

	healthWorker := s.Router.Group(basePath+"/health-worker", authenticator.VerifyJWT(), middleware.RequireRole(domain.RoleHealthWorker))
	{
		healthWorker.GET("/appointments", h.healthWorker.HandleListAppointments)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Child Vaccination API"
	docs.SwaggerInfo.Description = "Parents register children, book vaccinations and pay; hospitals manage their appointments and health workers."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
