package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kaagyebi/lumea-api/internal/dto"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/httpresp"
	"github.com/kaagyebi/lumea-api/internal/middleware"
	ucSkinReport "github.com/kaagyebi/lumea-api/internal/usecase/skinreport"
	ucUser "github.com/kaagyebi/lumea-api/internal/usecase/user"
)

type UserHandler struct {
	get           *ucUser.GetUser
	list          *ucUser.ListUsers
	updateProfile *ucUser.UpdateProfile
	uploadPicture *ucUser.UploadProfilePicture
	history       *ucSkinReport.ListMyReports
}

func NewUserHandler(
	get *ucUser.GetUser,
	list *ucUser.ListUsers,
	updateProfile *ucUser.UpdateProfile,
	uploadPicture *ucUser.UploadProfilePicture,
	history *ucSkinReport.ListMyReports,
) *UserHandler {
	return &UserHandler{
		get:           get,
		list:          list,
		updateProfile: updateProfile,
		uploadPicture: uploadPicture,
		history:       history,
	}
}

type UpdateProfileRequest struct {
	Bio            *string `json:"bio" validate:"omitempty,max=2000"`
	Specialization *string `json:"specialization" validate:"omitempty,max=120"`
	Availability   *string `json:"availability" validate:"omitempty,max=2000"`
	Image          *string `json:"image" validate:"omitempty,url"`
}

// List returns every user, or the public summaries of cosmetologists with
// ?role=cosmetologist.
func (h *UserHandler) List(c *gin.Context) {
	users, summary, err := h.list.Execute(c.Request.Context(), c.Query("role"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if summary {
		httpresp.OK(c, dto.UserSummaries(users))
		return
	}
	httpresp.OK(c, users)
}

func (h *UserHandler) Me(c *gin.Context) {
	httpresp.OK(c, middleware.CurrentUser(c))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}

	u, err := h.updateProfile.Execute(c.Request.Context(), middleware.Principal(c), ucUser.ProfileInput{
		Bio:            req.Bio,
		Specialization: req.Specialization,
		Availability:   req.Availability,
		Image:          req.Image,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}

func (h *UserHandler) UploadPicture(c *gin.Context) {
	data, filename, err := readUpload(c, "image", ucUser.MaxPictureBytes)
	if err != nil {
		httperr.BadRequest(c, "invalid_upload", "The uploaded file could not be read.")
		return
	}

	u, err := h.uploadPicture.Execute(c.Request.Context(), middleware.Principal(c), filename, data)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":  "Profile picture uploaded successfully",
		"imageUrl": u.Profile.Image,
		"user":     u,
	})
}

func (h *UserHandler) History(c *gin.Context) {
	reps, err := h.history.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.SkinReports(reps))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id", "user_not_found", "User not found.")
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}
