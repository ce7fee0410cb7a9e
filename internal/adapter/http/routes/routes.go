package routes

import (
	_ "hsj_mel/docs" // This will be auto-generated
	"hsj_mel/internal/adapter/http/handlers"
	repository2 "hsj_mel/internal/adapter/persistence/repository"
	"hsj_mel/internal/domain/entities"
	"hsj_mel/internal/domain/mel"
	"hsj_mel/internal/infrastructure/cache"
	"hsj_mel/internal/infrastructure/database"
	"hsj_mel/internal/infrastructure/effort"
	"hsj_mel/internal/usecase"
	"hsj_mel/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ruleRepo := repository2.NewMelRuleDynamoRepository(ddb)
	alertRepo := repository2.NewMelAlertDynamoRepository(ddb)

	var provider interfaces.IEquipmentProvider
	effortClient, err := effort.NewClient(os.Getenv("EFFORT_API_URL"), os.Getenv("EFFORT_API_TOKEN"))
	if err != nil {
		log.Fatalf("Effort client not configured: %v", err)
	}
	provider = effortClient

	catalog := entities.BuiltinGroups()
	matchCache := cache.NewSectorMatchCache(0)
	matcher := mel.NewSectorMatcher(matchCache)
	calc := mel.NewCalculator(catalog, matcher)

	ruleUseCase := usecase.NewMelRuleUseCase(ruleRepo, catalog, matchCache)
	availabilityUseCase := usecase.NewAvailabilityUseCase(ruleRepo, alertRepo, provider, calc, catalog)
	reconcileUseCase := usecase.NewReconcileUseCase(ruleRepo, alertRepo, provider, calc)

	ruleHandler := handlers.NewMelRuleHandler(ruleUseCase)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUseCase)
	alertHandler := handlers.NewMelAlertHandler(reconcileUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMelRoutes(v1, ruleHandler, availabilityHandler, alertHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
