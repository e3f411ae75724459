package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/dto"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/httpresp"
	"github.com/kaagyebi/lumea-api/internal/middleware"
	ucAppointment "github.com/kaagyebi/lumea-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book           *ucAppointment.BookAppointment
	update         *ucAppointment.UpdateAppointment
	listMine       *ucAppointment.ListUserAppointments
	listForCosmo   *ucAppointment.ListCosmetologistAppointments
	listBothScopes *ucAppointment.ListMyAppointments
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	update *ucAppointment.UpdateAppointment,
	listMine *ucAppointment.ListUserAppointments,
	listForCosmo *ucAppointment.ListCosmetologistAppointments,
	listBothScopes *ucAppointment.ListMyAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:           book,
		update:         update,
		listMine:       listMine,
		listForCosmo:   listForCosmo,
		listBothScopes: listBothScopes,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	CosmetologistID string   `json:"cosmetologistId" validate:"required,uuid"`
	SkinType        string   `json:"skinType" validate:"required,max=50"`
	Tone            string   `json:"tone" validate:"max=50"`
	Weight          *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height          *float64 `json:"height" validate:"omitempty,gt=0"`
	HairColor       string   `json:"hairColor" validate:"max=50"`
	HairType        string   `json:"hairType" validate:"max=50"`
	Description     string   `json:"description"`
	Concern         string   `json:"concern"`
	Age             *int     `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender          string   `json:"gender" validate:"required,max=20"`
	Date            string   `json:"date" validate:"required"`
	Time            string   `json:"time" validate:"required"`
	Notes           string   `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req BookAppointmentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		Requester:       middleware.Principal(c),
		CosmetologistID: uuid.MustParse(req.CosmetologistID),
		SkinType:        req.SkinType,
		Tone:            req.Tone,
		Weight:          req.Weight,
		Height:          req.Height,
		HairColor:       req.HairColor,
		HairType:        req.HairType,
		Description:     req.Description,
		Concern:         req.Concern,
		Age:             req.Age,
		Gender:          req.Gender,
		Date:            req.Date,
		Time:            req.Time,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Appointment(ap))
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	apps, err := h.listMine.Execute(c.Request.Context(), middleware.Principal(c), c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Appointments(apps))
}

func (h *AppointmentHandler) ListForCosmetologist(c *gin.Context) {
	apps, err := h.listForCosmo.Execute(c.Request.Context(), middleware.Principal(c), c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Appointments(apps))
}

// Debug lists from either side of the relationship, ?as=cosmetologist or the
// default user side.
func (h *AppointmentHandler) Debug(c *gin.Context) {
	as := c.Query("as")

	requester := middleware.Principal(c)

	listing, err := h.listBothScopes.Execute(c.Request.Context(), requester, as)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	column := "userId"
	if listing.Scope == "cosmetologist" {
		column = "cosmetologistId"
	}

	httpresp.OK(c, dto.AppointmentDebugDTO{
		Count:        len(listing.Appointments),
		Appointments: dto.Appointments(listing.Appointments),
		Query:        map[string]any{column: requester.ID},
		UserRole:     string(requester.Role),
	})
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id", "appointment_not_found", "Appointment not found.")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindAndValidate(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.Principal(c), id, ucAppointment.UpdateInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Appointment(ap))
}
