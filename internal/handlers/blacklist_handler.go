package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agenasports/pitch-scheduler/internal/audit"
	"github.com/agenasports/pitch-scheduler/internal/httperr"
	"github.com/agenasports/pitch-scheduler/internal/httpresp"
	"github.com/agenasports/pitch-scheduler/internal/middleware"
	"github.com/agenasports/pitch-scheduler/internal/models"
	"github.com/agenasports/pitch-scheduler/internal/validators"
)

type BlacklistHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBlacklistHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *BlacklistHandler {
	return &BlacklistHandler{db: db, audit: auditDisp}
}

type BlacklistRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone" binding:"required"`
	Note  string `json:"note"`
}

func (h *BlacklistHandler) List(c *gin.Context) {
	var entries []models.BlacklistEntry
	if err := h.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar bloqueios.")
		return
	}
	httpresp.List(c, entries)
}

func (h *BlacklistHandler) Add(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	var req BlacklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Telefone é obrigatório.")
		return
	}

	phone := validators.NormalizePhone(req.Phone)
	if phone == "" {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	var count int64
	h.db.Model(&models.BlacklistEntry{}).Where("phone = ?", phone).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "already_blacklisted", "Número já bloqueado.")
		return
	}

	entry := models.BlacklistEntry{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Phone: phone,
		Note:  req.Note,
	}
	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao bloquear número.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor: username, Action: "phone_blacklisted",
		Entity: "blacklist", EntityID: entry.ID,
		Detail: entry.Name + " — " + validators.FormatPhone(entry.Phone),
	})

	httpresp.Created(c, entry)
}

func (h *BlacklistHandler) Remove(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	result := h.db.Delete(&models.BlacklistEntry{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao remover bloqueio.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "entry_not_found", "Bloqueio não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor: username, Action: "blacklist_removed",
		Entity: "blacklist", EntityID: c.Param("id"),
	})

	httpresp.OK(c, gin.H{"status": "removed"})
}
