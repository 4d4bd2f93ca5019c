package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gallery-backend/internal/httperr"
	"gallery-backend/internal/identity/dto"
	"gallery-backend/internal/identity/usecase"
	"gallery-backend/pkg/apperrors"
)

type IdentityHandler struct {
	identityUsecase usecase.IdentityUsecase
}

func NewIdentityHandler(identityUsecase usecase.IdentityUsecase) *IdentityHandler {
	return &IdentityHandler{
		identityUsecase: identityUsecase,
	}
}

func (h *IdentityHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, apperrors.E(apperrors.ErrValidation, err.Error()))
		return
	}

	resp, err := h.identityUsecase.Signup(&req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *IdentityHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, apperrors.E(apperrors.ErrValidation, err.Error()))
		return
	}

	resp, err := h.identityUsecase.Login(&req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *IdentityHandler) GetProfile(c *gin.Context) {
	resp, err := h.identityUsecase.GetProfile(c.GetString("userID"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *IdentityHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, apperrors.E(apperrors.ErrValidation, err.Error()))
		return
	}

	resp, err := h.identityUsecase.UpdateProfile(c.GetString("userID"), &req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *IdentityHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, apperrors.E(apperrors.ErrValidation, err.Error()))
		return
	}

	if err := h.identityUsecase.UpdatePassword(c.GetString("userID"), &req); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
