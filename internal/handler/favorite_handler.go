package handler

import (
	"errors"

	apperrors "travel-planner/internal/errors"
	"travel-planner/internal/middleware"
	"travel-planner/internal/models"
	"travel-planner/internal/service"
	"travel-planner/pkg/response"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler handles HTTP requests for favorite operations.
type FavoriteHandler struct {
	service service.FavoriteServicer
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service service.FavoriteServicer) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// ListFavorites godoc
// @Summary      List favorites
// @Description  Retrieve the authenticated user's favorites with their travels, newest first
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.FavoriteWithTravel}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, favorites)
}

// AddFavorite godoc
// @Summary      Add favorite
// @Description  Add a travel to the authenticated user's favorites. Adding the same travel twice is a conflict.
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        request  body      models.AddFavoriteRequest  true  "Travel to favorite"
// @Success      201      {object}  response.Response{data=models.Favorite}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /favorites [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	var req models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	favorite, err := h.service.Add(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFavoriteAlreadyExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, favorite)
}

// RemoveFavorite godoc
// @Summary      Remove favorite
// @Description  Remove a travel from the authenticated user's favorites
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        travelId  path      string  true  "Travel ID"
// @Success      200       {object}  response.Response
// @Failure      401       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /favorites/{travelId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID.IsZero() {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, c.Param("travelId")); err != nil {
		if errors.Is(err, apperrors.ErrFavoriteNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "favorite removed"})
}
