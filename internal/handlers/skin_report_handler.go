package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaagyebi/lumea-api/internal/dto"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/httpresp"
	"github.com/kaagyebi/lumea-api/internal/middleware"
	ucSkinReport "github.com/kaagyebi/lumea-api/internal/usecase/skinreport"
)

type SkinReportHandler struct {
	analyze     *ucSkinReport.AnalyzeSkinImage
	listMine    *ucSkinReport.ListMyReports
	listForUser *ucSkinReport.ListUserReports
	get         *ucSkinReport.GetReport
	download    *ucSkinReport.DownloadReport
}

func NewSkinReportHandler(
	analyze *ucSkinReport.AnalyzeSkinImage,
	listMine *ucSkinReport.ListMyReports,
	listForUser *ucSkinReport.ListUserReports,
	get *ucSkinReport.GetReport,
	download *ucSkinReport.DownloadReport,
) *SkinReportHandler {
	return &SkinReportHandler{
		analyze:     analyze,
		listMine:    listMine,
		listForUser: listForUser,
		get:         get,
		download:    download,
	}
}

func (h *SkinReportHandler) Analyze(c *gin.Context) {
	data, filename, err := readUpload(c, "image", ucSkinReport.MaxImageBytes)
	if err != nil {
		httperr.BadRequest(c, "invalid_upload", "The uploaded file could not be read.")
		return
	}

	rep, err := h.analyze.Execute(c.Request.Context(), ucSkinReport.AnalyzeInput{
		Requester: middleware.Principal(c),
		Filename:  filename,
		Data:      data,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.SkinReport(rep))
}

func (h *SkinReportHandler) ListMine(c *gin.Context) {
	reps, err := h.listMine.Execute(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.SkinReports(reps))
}

func (h *SkinReportHandler) ListForUser(c *gin.Context) {
	userID, ok := uuidParam(c, "userId", "user_not_found", "User not found.")
	if !ok {
		return
	}

	reps, err := h.listForUser.Execute(c.Request.Context(), middleware.Principal(c), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.SkinReports(reps))
}

func (h *SkinReportHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "report_not_found", "Skin report not found.")
	if !ok {
		return
	}

	rep, err := h.get.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.SkinReport(rep))
}

func (h *SkinReportHandler) Download(c *gin.Context) {
	id, ok := uuidParam(c, "id", "report_not_found", "Skin report not found.")
	if !ok {
		return
	}

	doc, err := h.download.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}
