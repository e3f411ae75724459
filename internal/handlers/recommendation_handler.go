package handlers

import (

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/dto"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/httpresp"
	"github.com/kaagyebi/lumea-api/internal/middleware"
	ucRecommendation "github.com/kaagyebi/lumea-api/internal/usecase/recommendation"
)

type RecommendationHandler struct {
	create       *ucRecommendation.CreateRecommendation
	listForUser  *ucRecommendation.ListForUser
	listAuthored *ucRecommendation.ListAuthored
}

func NewRecommendationHandler(
	create *ucRecommendation.CreateRecommendation,
	listForUser *ucRecommendation.ListForUser,
	listAuthored *ucRecommendation.ListAuthored,
) *RecommendationHandler {
	return &RecommendationHandler{
		create:       create,
		listForUser:  listForUser,
		listAuthored: listAuthored,
	}
}

type CreateRecommendationRequest struct {
	UserID   string   `json:"userId" validate:"required,uuid"`
	ReportID string   `json:"reportId" validate:"omitempty,uuid"`
	Products []string `json:"products" validate:"omitempty,dive,max=300"`
	Routines []string `json:"routines" validate:"omitempty,dive,max=500"`
	Notes    string   `json:"notes"`
}

func (h *RecommendationHandler) Create(c *gin.Context) {
	var req CreateRecommendationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	in := ucRecommendation.CreateInput{
		Requester: middleware.Principal(c),
		UserID:    uuid.MustParse(req.UserID),
		Products:  req.Products,
		Routines:  req.Routines,
		Notes:     req.Notes,
	}
	if req.ReportID != "" {
		id := uuid.MustParse(req.ReportID)
		in.ReportID = &id
	}

	rec, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.Recommendation(rec))
}

func (h *RecommendationHandler) ListForUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId", "user_not_found", "User not found.")
	if !ok {
		return
	}

	recs, err := h.listForUser.Execute(c.Request.Context(), middleware.Principal(c), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Recommendations(recs))
}

func (h *RecommendationHandler) ListAuthored(c *gin.Context) {
	recs, err := h.listAuthored.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Recommendations(recs))
}
