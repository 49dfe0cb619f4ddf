package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/services/planner"
	"tripwise/utils"
)

// PlannerHandler exposes the planning workflow over REST.
type PlannerHandler struct {
	Service planner.Service
	Logger  *zap.Logger
}

func NewPlannerHandler(service planner.Service, logger *zap.Logger) *PlannerHandler {
	return &PlannerHandler{Service: service, Logger: logger}
}

// PlanTrip handles POST /api/v2/plan-trip.
func (h *PlannerHandler) PlanTrip(c *gin.Context) {
	var req models.TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid trip plan request", err.Error())
		return
	}

	result, err := h.Service.PlanTrip(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("plan trip failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Trip planning failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchFlights handles POST /api/v2/search/flights.
func (h *PlannerHandler) SearchFlights(c *gin.Context) {
	var req models.FlightSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid flight search request", err.Error())
		return
	}

	result, err := h.Service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("flight search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Flight search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchHotels handles POST /api/v2/search/hotels.
func (h *PlannerHandler) SearchHotels(c *gin.Context) {
	var req models.HotelSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid hotel search request", err.Error())
		return
	}

	result, err := h.Service.SearchHotels(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("hotel search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Hotel search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchActivities handles POST /api/v2/search/activities.
func (h *PlannerHandler) SearchActivities(c *gin.Context) {
	var req models.ActivitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid activity search request", err.Error())
		return
	}

	result, err := h.Service.SearchActivities(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("activity search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Activity search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// CheckWeather handles POST /api/v2/search/weather.
func (h *PlannerHandler) CheckWeather(c *gin.Context) {
	var req models.WeatherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid weather request", err.Error())
		return
	}

	result, err := h.Service.CheckWeather(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("weather check failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Weather check failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
