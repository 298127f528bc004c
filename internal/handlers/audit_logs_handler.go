package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	"github.com/BruksfildServices01/studio-booking/internal/domain/access"
	"github.com/BruksfildServices01/studio-booking/internal/guard"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/httpresp"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogReader interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLogReader
}

func NewAuditLogsHandler(logs AuditLogReader) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if guard.DecisionFrom(c).State.Role != access.RoleAdmin {
		httperr.Forbidden(c, "forbidden", guard.AccessDeniedMessage)
		return
	}

	f := ParseAuditFilter(c)

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs.")
		return
	}

	httpresp.Paged(c, logs, f.Page, f.Limit, total)
}

// ParseAuditFilter reads action, entity, from, to (YYYY-MM-DD, inclusive),
// page and limit. Invalid values fall back to defaults.
func ParseAuditFilter(c *gin.Context) audit.Filter {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if f.Page <= 0 {
		f.Page = 1
	}

	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	return f
}
