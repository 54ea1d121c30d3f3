package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/adrianrdguez/GoFast/config"
	flighterr "github.com/adrianrdguez/GoFast/errors"
	"github.com/adrianrdguez/GoFast/models"
	"github.com/adrianrdguez/GoFast/service"
)

// Server represents the HTTP server and API handler
type Server struct {
	router        *gin.Engine
	db            *gorm.DB
	config        *config.Config
	flightService service.FlightServiceInterface
}

// validateTransportMode validates the transport mode enum value
func validateTransportMode(fl validator.FieldLevel) bool {
	return models.TransportMode(fl.Field().String()).IsValid()
}

// NewServer creates and configures a new HTTP server
func NewServer(
	db *gorm.DB,
	config *config.Config,
	flightService service.FlightServiceInterface,
) *Server {
	// Register custom validator for TransportMode enum
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("transportmode", validateTransportMode); err != nil {
			slog.Warn("Failed to register transport mode validator", "error", err)
		}
	}

	router := gin.Default()

	server := &Server{
		router:        router,
		db:            db,
		config:        config,
		flightService: flightService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/flights", s.getFlights)
		api.POST("/flights/detect", s.detectFlights)
		api.POST("/flights/manual", s.addManualFlight)
		api.GET("/flights/next", s.getNextFlight)
		api.GET("/leave-time", s.getLeaveTime)
		api.GET("/leave-time/options", s.getLeaveTimeOptions)
		api.GET("/display", s.getDisplay)
		api.GET("/status", s.getStatus)
		api.DELETE("/sources", s.disconnectSources)
		api.GET("/debug", s.debugEndpoint)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.ServeStaticFiles()
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) getFlights(c *gin.Context) {
	slog.Debug("Fetching flights from all sources")

	flights, err := s.flightService.FetchFlights(c.Request.Context())
	if err != nil {
		slog.Error("Flight fetch error", "error", err)
		s.handleError(c, err)
		return
	}

	slog.Debug("Flights fetched", "count", len(flights))
	c.JSON(http.StatusOK, gin.H{"flights": flights, "count": len(flights)})
}

func (s *Server) detectFlights(c *gin.Context) {
	var req models.DetectRequest
	slog.Debug("Handling detection request")

	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, flighterr.NewValidationError("invalid request format"))
		return
	}

	slog.Debug("Detection request received", "events", len(req.Events))

	flights, err := s.flightService.DetectFlights(req.Events)
	if err != nil {
		slog.Error("Detection error", "error", err, "events", len(req.Events))
		s.handleError(c, err)
		return
	}

	slog.Debug("Detection finished", "flights", len(flights))
	c.JSON(http.StatusOK, gin.H{"flights": flights, "count": len(flights)})
}

func (s *Server) addManualFlight(c *gin.Context) {
	var req models.ManualFlightRequest
	slog.Debug("Handling manual flight request")

	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, flighterr.NewValidationError("invalid request format"))
		return
	}

	slog.Debug("Manual flight request received", "flightNumber", req.FlightNumber, "departure", req.DepartureCode)

	flight, err := s.flightService.AddManualFlight(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Manual flight error", "error", err, "flightNumber", req.FlightNumber)
		s.handleError(c, err)
		return
	}

	slog.Debug("Manual flight created", "id", flight.ID)
	c.JSON(http.StatusCreated, flight)
}

func (s *Server) getNextFlight(c *gin.Context) {
	slog.Debug("Getting next upcoming flight")

	flight, err := s.flightService.NextFlight(c.Request.Context())
	if err != nil {
		slog.Error("Next flight error", "error", err)
		s.handleError(c, err)
		return
	}

	slog.Debug("Next flight result", "flight", flight.FlightNumber)
	c.JSON(http.StatusOK, flight)
}

func (s *Server) getLeaveTime(c *gin.Context) {
	var req models.LeaveTimeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, flighterr.NewValidationError("invalid request format"))
		return
	}

	slog.Debug("Calculating leave time", "flightID", req.FlightID, "mode", req.Mode)

	calculation, err := s.flightService.LeaveTime(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Leave time error", "error", err, "flightID", req.FlightID)
		s.handleError(c, err)
		return
	}

	slog.Debug("Leave time result", "leaveTime", calculation.LeaveTime)
	c.JSON(http.StatusOK, calculation)
}

func (s *Server) getLeaveTimeOptions(c *gin.Context) {
	var req models.LeaveTimeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, flighterr.NewValidationError("invalid request format"))
		return
	}

	modes, err := parseModes(c.Query("modes"))
	if err != nil {
		slog.Error("Mode parsing error", "error", err)
		s.handleError(c, err)
		return
	}

	slog.Debug("Calculating leave time options", "flightID", req.FlightID, "modes", len(modes))

	options, err := s.flightService.LeaveTimeOptions(c.Request.Context(), &req, modes)
	if err != nil {
		slog.Error("Leave time options error", "error", err, "flightID", req.FlightID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"options": options, "count": len(options)})
}

func (s *Server) getDisplay(c *gin.Context) {
	slog.Debug("Getting display view")

	view, err := s.flightService.Display(c.Request.Context())
	if err != nil {
		slog.Error("Display error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) getStatus(c *gin.Context) {
	slog.Debug("Getting source status")

	report := s.flightService.SourceStatus(c.Request.Context())
	c.JSON(http.StatusOK, report)
}

func (s *Server) disconnectSources(c *gin.Context) {
	slog.Debug("Disconnecting all flight sources")

	if err := s.flightService.DisconnectAll(c.Request.Context()); err != nil {
		slog.Error("Disconnect error", "error", err)
		s.handleError(c, err)
		return
	}

	slog.Debug("All sources disconnected")
	c.JSON(http.StatusOK, gin.H{"message": "All flight sources disconnected"})
}

func (s *Server) debugEndpoint(c *gin.Context) {
	slog.Debug("Debug endpoint called")

	var manualFlightCount int64
	dbErr := s.db.Model(&models.ManualFlight{}).Count(&manualFlightCount).Error

	status := s.flightService.SourceStatus(c.Request.Context())

	response := gin.H{
		"database": map[string]interface{}{
			"connected":         dbErr == nil,
			"error":             dbErr,
			"manualFlightCount": manualFlightCount,
		},
		"sources":   status,
		"transport": s.flightService.ProviderInfo(),
		"config": map[string]string{
			"defaultMode": s.config.Calculator.DefaultMode,
			"tier":        s.config.Calculator.Tier,
		},
	}

	c.JSON(http.StatusOK, response)
}

// parseModes splits a comma-separated modes parameter. An empty parameter
// means every supported mode.
func parseModes(raw string) ([]models.TransportMode, error) {
	if raw == "" {
		return models.AllTransportModes(), nil
	}

	var modes []models.TransportMode
	for _, part := range strings.Split(raw, ",") {
		mode := models.TransportMode(strings.TrimSpace(part))
		if !mode.IsValid() {
			return nil, flighterr.NewValidationError(fmt.Sprintf("unsupported transport mode: %s", part))
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

// handleError handles different types of application errors
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *flighterr.AppError
	var statusCode int
	var message string

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case flighterr.ValidationError, flighterr.InvalidFlightError, flighterr.LocationUnavailable:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case flighterr.NotFoundError, flighterr.AirportNotFound, flighterr.NoEventsFound:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case flighterr.CalendarAccessDenied, flighterr.CalendarAccessRestricted:
			statusCode = http.StatusForbidden
			message = appErr.Message
		case flighterr.AlreadyExistsError:
			statusCode = http.StatusConflict
			message = appErr.Message
		case flighterr.TransportCalculationFailed, flighterr.NoDataSourceAvailable:
			statusCode = http.StatusServiceUnavailable
			message = appErr.Message
		case flighterr.ExternalAPIError:
			statusCode = http.StatusServiceUnavailable
			message = "External service unavailable"
		case flighterr.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
