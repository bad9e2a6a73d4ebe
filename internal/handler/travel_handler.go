package handler

import (
	"errors"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/middleware"
	"travel-planner/internal/models"
	"travel-planner/internal/query"
	"travel-planner/internal/service"
	"travel-planner/pkg/response"

	"github.com/gin-gonic/gin"
)

// TravelHandler handles HTTP requests for travel operations.
type TravelHandler struct {
	service service.TravelServicer
}

// NewTravelHandler creates a new TravelHandler.
func NewTravelHandler(service service.TravelServicer) *TravelHandler {
	return &TravelHandler{service: service}
}

// ListTravels godoc
// @Summary      List user's travels
// @Description  Retrieve the authenticated user's travels with optional search, status filter, and sort order
// @Tags         travels
// @Accept       json
// @Produce      json
// @Param        search  query     string  false  "Keep travels whose title, destination, or description contains the term"
// @Param        status  query     string  false  "Filter by status (planning, confirmed, completed, cancelled, all)"
// @Param        sortBy  query     string  false  "Sort order (newest, oldest, title, destination, startDate, budget)"
// @Success      200     {object}  response.Response{data=[]models.Travel}
// @Failure      401     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /travels [get]
func (h *TravelHandler) ListTravels(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	opts := query.Options{
		SearchTerm: c.Query("search"),
		Status:     c.Query("status"),
		SortBy:     query.SortOrder(c.DefaultQuery("sortBy", string(query.SortNewest))),
	}

	travels, err := h.service.List(c.Request.Context(), userID, opts)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, travels)
}

// GetTravel godoc
// @Summary      Get travel details
// @Description  Retrieve a single travel owned by the authenticated user
// @Tags         travels
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Travel ID"
// @Success      200  {object}  response.Response{data=models.Travel}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /travels/{id} [get]
func (h *TravelHandler) GetTravel(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	travel, err := h.service.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTravelNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, travel)
}

// CreateTravel godoc
// @Summary      Create a new travel
// @Description  Create a new travel owned by the authenticated user
// @Tags         travels
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateTravelRequest  true  "Travel details"
// @Success      201      {object}  response.Response{data=models.Travel}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /travels [post]
func (h *TravelHandler) CreateTravel(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.CreateTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	travel, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, travel)
}

// UpdateTravel godoc
// @Summary      Update travel
// @Description  Partially update a travel owned by the authenticated user. Each update bumps the travel's version; concurrent updates lose with a conflict.
// @Tags         travels
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Travel ID"
// @Param        request  body      models.UpdateTravelRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Travel}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /travels/{id} [put]
func (h *TravelHandler) UpdateTravel(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.UpdateTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	travel, err := h.service.Update(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTravelNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrTravelVersionConflict) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, travel)
}

// DeleteTravel godoc
// @Summary      Delete travel
// @Description  Delete a travel owned by the authenticated user
// @Tags         travels
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Travel ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /travels/{id} [delete]
func (h *TravelHandler) DeleteTravel(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, apperrors.ErrTravelNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "travel deleted"})
}

// AddActivity godoc
// @Summary      Add activity
// @Description  Append an activity to a travel owned by the authenticated user
// @Tags         travels
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Travel ID"
// @Param        request  body      models.ActivityRequest  true  "Activity details"
// @Success      201      {object}  response.Response{data=models.Travel}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /travels/{id}/activities [post]
func (h *TravelHandler) AddActivity(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	travel, err := h.service.AddActivity(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTravelNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, travel)
}

// AddAccommodation godoc
// @Summary      Add accommodation
// @Description  Append an accommodation to a travel owned by the authenticated user
// @Tags         travels
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Travel ID"
// @Param        request  body      models.AccommodationRequest  true  "Accommodation details"
// @Success      201      {object}  response.Response{data=models.Travel}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /travels/{id}/accommodations [post]
func (h *TravelHandler) AddAccommodation(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	travel, err := h.service.AddAccommodation(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTravelNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, travel)
}

// GetStats godoc
// @Summary      Get travel statistics
// @Description  Retrieve aggregate statistics over the authenticated user's travels
// @Tags         travels
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=query.Statistics}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /travels/stats [get]
func (h *TravelHandler) GetStats(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, stats)
}

// RequestCoverUpload godoc
// @Summary      Request cover photo upload
// @Description  Issue a pre-signed upload URL for the travel's cover photo. The client uploads the file directly to object storage with a PUT request.
// @Tags         travels
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Travel ID"
// @Param        request  body      models.CoverPhotoRequest  true  "Cover photo content type"
// @Success      200      {object}  response.Response{data=models.CoverPhotoResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /travels/{id}/cover [post]
func (h *TravelHandler) RequestCoverUpload(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.CoverPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.RequestCoverUpload(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTravelNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}
