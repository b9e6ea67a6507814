package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/eduka/eduka-api/docs"
	v1 "github.com/eduka/eduka-api/internal/api/handler/v1"
	"github.com/eduka/eduka-api/internal/api/middleware"
	"github.com/eduka/eduka-api/internal/config"
	"github.com/eduka/eduka-api/internal/repository"
	"github.com/eduka/eduka-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, repos *repository.Registry) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	notificationSvc := service.NewNotificationService(repos.Notifications, repos.Users)
	historiqueSvc := service.NewHistoriqueService(repos.Historique)
	missionSvc := service.NewMissionService(repos.Missions, repos.Referentiel, repos.Users, notificationSvc)
	propositionSvc := service.NewPropositionService(repos.Propositions, repos.Referentiel, repos.Users)
	factureSvc := service.NewFactureService(repos.Factures, repos.Users, notificationSvc)
	userSvc := service.NewUserService(repos.Users)
	dashboardSvc := service.NewDashboardService(missionSvc, propositionSvc, factureSvc, repos.Users, repos.Referentiel)

	authHandler := v1.NewAuthHandler(s.Config.API, service.NewAuthService(repos.Users))
	missionHandler := v1.NewMissionHandler(missionSvc)
	propositionHandler := v1.NewPropositionHandler(propositionSvc, historiqueSvc)
	factureHandler := v1.NewFactureHandler(factureSvc, historiqueSvc)
	notificationHandler := v1.NewNotificationHandler(notificationSvc)
	profileHandler := v1.NewProfileHandler(userSvc, historiqueSvc)
	historiqueHandler := v1.NewHistoriqueHandler(historiqueSvc)
	contactHandler := v1.NewContactHandler(notificationSvc)
	adminHandler := v1.NewAdminHandler(dashboardSvc, userSvc)

	s.MountHandlers(repos,
		authHandler, missionHandler, propositionHandler, factureHandler,
		notificationHandler, profileHandler, historiqueHandler, contactHandler, adminHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(repos *repository.Registry,
	authHandler *v1.AuthHandler,
	missionHandler *v1.MissionHandler,
	propositionHandler *v1.PropositionHandler,
	factureHandler *v1.FactureHandler,
	notificationHandler *v1.NotificationHandler,
	profileHandler *v1.ProfileHandler,
	historiqueHandler *v1.HistoriqueHandler,
	contactHandler *v1.ContactHandler,
	adminHandler *v1.AdminHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.GET("/auth/me", authHandler.HandleGetCurrentUser)
		users.POST("/auth/logout", authHandler.HandleLogout)

		users.GET("/missions", missionHandler.HandleListMissions)
		users.GET("/missions/calendar", missionHandler.HandleGetCalendar)
		users.GET("/missions/historique", missionHandler.HandleHistoriqueAnnuel)
		users.GET("/missions/:missionID", missionHandler.HandleGetMission)
		users.POST("/missions/:missionID/demarrer", missionHandler.HandleDemarrerMission)
		users.POST("/missions/:missionID/terminer", missionHandler.HandleTerminerMission)
		users.POST("/missions/:missionID/fichiers", missionHandler.HandleAjouterFichierNote)

		users.GET("/propositions", propositionHandler.HandleListPropositions)
		users.GET("/propositions/candidatures", propositionHandler.HandleListMesCandidatures)
		users.GET("/propositions/:propositionID", propositionHandler.HandleGetProposition)
		users.POST("/propositions/:propositionID/postuler", propositionHandler.HandlePostuler)

		users.GET("/factures", factureHandler.HandleListFactures)
		users.GET("/factures/stats", factureHandler.HandleFactureStats)
		users.GET("/factures/:factureID", factureHandler.HandleGetFacture)
		users.GET("/factures/:factureID/pdf", factureHandler.HandleDownloadFacturePDF)
		users.POST("/factures", factureHandler.HandleCreateFacture)
		users.POST("/factures/:factureID/soumettre", factureHandler.HandleSoumettreFacture)

		users.GET("/notifications", notificationHandler.HandleListNotifications)
		users.GET("/notifications/unread", notificationHandler.HandleUnreadCount)
		users.POST("/notifications/lu", notificationHandler.HandleMarkAllAsRead)
		users.POST("/notifications/:notificationID/lu", notificationHandler.HandleMarkAsRead)
		users.DELETE("/notifications/:notificationID", notificationHandler.HandleDeleteNotification)

		users.GET("/profile", profileHandler.HandleGetProfile)
		users.PUT("/profile", profileHandler.HandleUpdateProfile)
		users.POST("/profile/competences", profileHandler.HandleAjouterCompetence)
		users.DELETE("/profile/competences/:competenceID", profileHandler.HandleSupprimerCompetence)
		users.POST("/profile/documents", profileHandler.HandleAjouterDocument)
		users.DELETE("/profile/documents/:documentID", profileHandler.HandleSupprimerDocument)

		users.GET("/historique", historiqueHandler.HandleListHistorique)
		users.POST("/contact", contactHandler.HandleContact)
	}

	admin := s.Router.Group(basePath+"/admin", verifyJWT, middleware.RequireAdmin(repos.Users))
	{
		admin.GET("/dashboard", adminHandler.HandleDashboardStats)
		admin.GET("/dashboard/missions", adminHandler.HandleRecentMissions)
		admin.GET("/dashboard/propositions", adminHandler.HandleRecentPropositions)

		admin.GET("/missions", missionHandler.HandleAdminListMissions)
		admin.GET("/missions/stats", missionHandler.HandleMissionStats)
		admin.POST("/missions/:missionID/annuler", missionHandler.HandleAnnulerMission)
		admin.PUT("/missions/:missionID/suivi", missionHandler.HandleUpdateStatutSuivi)
		admin.POST("/missions/:missionID/alertes", missionHandler.HandleAjouterAlerte)
		admin.POST("/missions/:missionID/alertes/:alerteID/resoudre", missionHandler.HandleResoudreAlerte)

		admin.GET("/propositions", propositionHandler.HandleAdminListPropositions)
		admin.GET("/propositions/stats", propositionHandler.HandlePropositionStats)
		admin.POST("/propositions", propositionHandler.HandleCreateProposition)
		admin.POST("/propositions/:propositionID/accepter", propositionHandler.HandleAccepterProposition)
		admin.POST("/propositions/:propositionID/refuser", propositionHandler.HandleRefuserProposition)

		admin.GET("/factures", factureHandler.HandleAdminListFactures)
		admin.POST("/factures/:factureID/valider", factureHandler.HandleValiderFacture)
		admin.POST("/factures/:factureID/payer", factureHandler.HandlePayerFacture)
		admin.POST("/factures/:factureID/refuser", factureHandler.HandleRefuserFacture)

		admin.GET("/ecoles", adminHandler.HandleListEcoles)
		admin.GET("/formateurs", adminHandler.HandleListFormateurs)
		admin.GET("/formateurs/:formateurID", adminHandler.HandleGetFormateur)
		admin.POST("/formateurs/:formateurID/alertes", adminHandler.HandleAjouterAlerteFormateur)
		admin.POST("/formateurs/:formateurID/alertes/:alerteID/resoudre", adminHandler.HandleResoudreAlerteFormateur)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Eduka API"
	docs.SwaggerInfo.Description = "Staffing API for the Eduka training agency."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
