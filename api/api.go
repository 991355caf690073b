package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"time"

	"grpvtracker/internal/db/models/postgres/public/model"
	"grpvtracker/internal/domain"
	"grpvtracker/internal/logger"
	"grpvtracker/internal/repository"
	"grpvtracker/internal/service"
	"grpvtracker/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                   *sql.DB
	AnalysisService      service.AnalysisService
	SymbolSearchService  service.SymbolSearchService
	ApiRequestRepository repository.ApiRequestRepository
	JwtDecodeToken       string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to grpvtracker"})
	})
	router.GET("/symbols/search", m.searchSymbols)

	authed := router.Group("/", m.authMiddleware)
	authed.POST("/analyses", m.calculateAnalysis)
	authed.GET("/analyses", m.listAnalyses)
	authed.GET("/analyses/:id", m.getAnalysis)
	authed.DELETE("/analyses/:id", m.deleteAnalysis)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson translates the error-kind taxonomy to HTTP exactly once.
// Everything without a kind is a plain 500.
func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)

	status := http.StatusInternalServerError
	switch domain.KindOf(err) {
	case domain.ErrorKind_Validation:
		status = http.StatusBadRequest
	case domain.ErrorKind_InsufficientData:
		status = http.StatusUnprocessableEntity
	case domain.ErrorKind_NotFound:
		status = http.StatusNotFound
	case domain.ErrorKind_Authorization:
		status = http.StatusForbidden
	case domain.ErrorKind_Provider:
		status = http.StatusBadGateway
	case domain.ErrorKind_ConcurrencyConflict:
		status = http.StatusConflict
	}

	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
		"kind":  string(domain.KindOf(err)),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// getUserID reads the authenticated user id the auth middleware stored on
// the request.
func getUserID(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, domain.NewError(domain.ErrorKind_Authorization, "must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, domain.NewError(domain.ErrorKind_Authorization, "misformatted user account id")
	}
	userID, err := uuid.Parse(userAccountIDStr)
	if err != nil {
		return uuid.Nil, domain.WrapError(domain.ErrorKind_Authorization, err, "misformatted user account id")
	}
	return userID, nil
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.Warn("failed to get raw request data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   util.StrPointer(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: util.StrPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		logger.Warn("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(ctx.Writer.Status()))
		req.ResponseBody = util.StrPointer(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			logger.Warn("failed to update api request log: %v", err)
		}
	}
}
