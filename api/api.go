package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"investorapi/internal/domain"
	"investorapi/internal/logger"
	"investorapi/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	IngestService  service.IngestService
	ReportService  service.ReportService
	AllowedOrigins []string
	MaxUploadBytes int64
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(m.corsMiddleware())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the investors api"})
	})

	investors := router.Group("/investors")
	investors.POST("/upload-csv", m.uploadCsv)
	investors.GET("/summary", m.getInvestorSummaries)
	investors.GET("/summary-filtered", m.getInvestorSummariesFiltered)
	investors.GET("/:investor_id/details", m.getInvestorDetails)
	investors.GET("/asset-classes", m.getAssetClasses)
	investors.GET("/stats", m.getInvestmentStats)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) corsMiddleware() gin.HandlerFunc {
	if len(m.AllowedOrigins) == 0 {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     m.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// returnErrorJson picks the status from the error: invalid input is the
// caller's fault, unknown ids are 404, anything else is ours.
func returnErrorJson(err error, c *gin.Context) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		returnErrorJsonCode(err, c, http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		returnErrorJsonCode(err, c, http.StatusNotFound)
	default:
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
	}
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "error", err, "status", code)
	} else {
		log.Infow("request rejected", "error", err, "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	requestID := uuid.New()

	log := logger.FromContext(ctx.Request.Context()).With(
		"requestID", requestID.String(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	profile, endProfile := domain.NewProfile()
	reqCtx := logger.NewContext(ctx.Request.Context(), log)
	reqCtx = domain.NewContextWithProfile(reqCtx, profile)
	ctx.Request = ctx.Request.WithContext(reqCtx)
	ctx.Header("X-Request-ID", requestID.String())

	ctx.Next()

	endProfile()
	log.Infow("handled request",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
		"spans", profile.Spans(),
	)
}
