package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// @Summary Update profile
// @Description Omitted fields keep their current value.
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/profile [patch]
func (h *ProfileHandler) Update(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	ctx := c.Request.Context()
	current, err := s.Account.CurrentUser(ctx)
	if err != nil {
		abortWithDomainError(c, err, "Update failed")
		return
	}
	if req.IsEmpty() {
		c.JSON(http.StatusOK, resdto.FromUserView(current))
		return
	}

	updated, err := s.Profile.UpdateProfile(ctx, req.ToInput(current))
	if err != nil {
		abortWithDomainError(c, err, "Update failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(updated))
}
