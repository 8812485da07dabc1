package api

import (
	"database/sql"
	"fmt"
	"time"

	"stocktracker/internal/logger"
	"stocktracker/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// defaultPortfolioName is used when a request omits the portfolio.
const defaultPortfolioName = "main"

type ApiHandler struct {
	Db                 *sql.DB
	TransactionService service.TransactionService
	DashboardService   service.DashboardService
	PerformanceService service.PerformanceService
	AllocationService  service.AllocationService
	CalendarService    service.CalendarService
	SimulationService  service.SimulationService
	PriceService       service.PriceService
	PositionService    service.PositionService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(loggerMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stocktracker"})
	})
	router.POST("/dashboard", m.dashboard)
	router.POST("/addTransaction", m.addTransaction)
	router.POST("/performanceSinceInception", m.performanceSinceInception)
	router.POST("/portfolioChart", m.portfolioChart)
	router.POST("/sectorAllocation", m.sectorAllocation)
	router.POST("/calendar", m.calendar)
	router.POST("/updatePrices", m.updatePrices)
	router.POST("/simulate", m.simulate)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func loggerMiddleware(ctx *gin.Context) {
	log := logger.New()
	ctx.Set(logger.ContextKey, log)

	start := time.Now()
	ctx.Next()

	log.Infow("request handled",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// portfolioScope is the (user, portfolio) pair most requests carry.
type portfolioScope struct {
	UserID        uuid.UUID `json:"userID"`
	PortfolioName string    `json:"portfolioName"`
}

func (s portfolioScope) normalized() (uuid.UUID, string, error) {
	if s.UserID == uuid.Nil {
		return uuid.Nil, "", fmt.Errorf("userID is required")
	}
	name := s.PortfolioName
	if name == "" {
		name = defaultPortfolioName
	}
	return s.UserID, name, nil
}
