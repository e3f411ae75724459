package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/httpresp"
	"github.com/kaagyebi/lumea-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageSize)))

	// --------------------------------------------------
	// Date range (days in the server timezone)
	// --------------------------------------------------

	if from := c.Query("from"); from != "" {
		t, err := timezone.ParseDate(from, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "from must be YYYY-MM-DD.")
			return
		}
		q.From = t
	}

	if to := c.Query("to"); to != "" {
		t, err := timezone.ParseDate(to, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "to must be YYYY-MM-DD.")
			return
		}
		q.To = t
	}

	q = q.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, httperr.Store(err))
		return
	}

	httpresp.Paged(c, q.Page, q.Limit, total, logs)
}
