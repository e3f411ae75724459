package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/dto"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/httpresp"
	"github.com/kaagyebi/lumea-api/internal/middleware"
	ucAppointment "github.com/kaagyebi/lumea-api/internal/usecase/appointment"
	ucSkinReport "github.com/kaagyebi/lumea-api/internal/usecase/skinreport"
	ucUser "github.com/kaagyebi/lumea-api/internal/usecase/user"
)

type CosmetologistHandler struct {
	availability *ucUser.UpdateAvailability
	register     *ucUser.RegisterCosmetologist
	appointments *ucAppointment.ListCosmetologistAppointments
	notes        *ucSkinReport.AddConsultationNotes
}

func NewCosmetologistHandler(
	availability *ucUser.UpdateAvailability,
	register *ucUser.RegisterCosmetologist,
	appointments *ucAppointment.ListCosmetologistAppointments,
	notes *ucSkinReport.AddConsultationNotes,
) *CosmetologistHandler {
	return &CosmetologistHandler{
		availability: availability,
		register:     register,
		appointments: appointments,
		notes:        notes,
	}
}

type AvailabilityRequest struct {
	Availability string `json:"availability" validate:"max=2000"`
}

type ConsultationNotesRequest struct {
	Notes    string `json:"notes" validate:"required"`
	ReportID string `json:"reportId" validate:"required,uuid"`
}

func (h *CosmetologistHandler) UpdateAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if !bindAndValidate(c, &req) {
		return
	}

	availability, err := h.availability.Execute(c.Request.Context(), middleware.Principal(c), req.Availability)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"availability": availability})
}

func (h *CosmetologistHandler) Appointments(c *gin.Context) {
	apps, err := h.appointments.Execute(c.Request.Context(), middleware.Principal(c), c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.Appointments(apps))
}

func (h *CosmetologistHandler) AddNotes(c *gin.Context) {
	userID, ok := uuidParam(c, "userId", "user_not_found", "User not found.")
	if !ok {
		return
	}

	var req ConsultationNotesRequest
	if !bindAndValidate(c, &req) {
		return
	}

	rep, err := h.notes.Execute(c.Request.Context(), ucSkinReport.NotesInput{
		Requester: middleware.Principal(c),
		UserID:    userID,
		ReportID:  uuid.MustParse(req.ReportID),
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.SkinReport(rep))
}

// Register takes a multipart form: certificate file plus areaOfExpertise.
func (h *CosmetologistHandler) Register(c *gin.Context) {
	data, filename, err := readUpload(c, "certificate", ucUser.MaxCertificateBytes)
	if err != nil {
		httperr.BadRequest(c, "invalid_upload", "The uploaded file could not be read.")
		return
	}

	u, err := h.register.Execute(c.Request.Context(), ucUser.CosmetologistInput{
		Requester:       middleware.Principal(c),
		AreaOfExpertise: c.PostForm("areaOfExpertise"),
		Filename:        filename,
		Certificate:     data,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}
