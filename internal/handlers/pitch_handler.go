package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/agenasports/pitch-scheduler/internal/audit"
	"github.com/agenasports/pitch-scheduler/internal/httperr"
	"github.com/agenasports/pitch-scheduler/internal/httpresp"
	"github.com/agenasports/pitch-scheduler/internal/middleware"
	"github.com/agenasports/pitch-scheduler/internal/models"
)

type notifier interface {
	Notify(ctx context.Context)
}

type PitchHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	notifier notifier
}

func NewPitchHandler(db *gorm.DB, auditDisp *audit.Dispatcher, n notifier) *PitchHandler {
	return &PitchHandler{db: db, audit: auditDisp, notifier: n}
}

type PitchRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *PitchHandler) List(c *gin.Context) {
	var pitches []models.Pitch
	if err := h.db.Order("created_at ASC").Find(&pitches).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar quadras.")
		return
	}
	httpresp.List(c, pitches)
}

func (h *PitchHandler) Create(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	var req PitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome é obrigatório.")
		return
	}

	pitch := models.Pitch{ID: uuid.NewString(), Name: req.Name}
	if err := h.db.Create(&pitch).Error; err != nil {
		httperr.Internal(c, "create_failed", "Erro ao criar quadra.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor: username, Action: "pitch_created",
		Entity: "pitch", EntityID: pitch.ID, Detail: pitch.Name,
	})

	httpresp.Created(c, pitch)
}

func (h *PitchHandler) Rename(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	var req PitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome é obrigatório.")
		return
	}

	result := h.db.Model(&models.Pitch{}).
		Where("id = ?", c.Param("id")).
		Update("name", req.Name)
	if result.Error != nil {
		httperr.Internal(c, "rename_failed", "Erro ao renomear quadra.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "pitch_not_found", "Quadra não encontrada.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor: username, Action: "pitch_renamed",
		Entity: "pitch", EntityID: c.Param("id"), Detail: req.Name,
	})

	httpresp.OK(c, gin.H{"status": "renamed"})
}

// Delete removes the pitch and every reservation anchored to it, in one
// transaction. The realtime hub is poked afterwards so clients drop the
// orphaned entries.
func (h *PitchHandler) Delete(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)
	id := c.Param("id")

	err := h.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Pitch{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.Reservation{}, "pitch_id = ?", id).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "pitch_not_found", "Quadra não encontrada.")
			return
		}
		httperr.Internal(c, "delete_failed", "Erro ao excluir quadra.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor: username, Action: "pitch_deleted",
		Entity: "pitch", EntityID: id,
	})
	h.notifier.Notify(c.Request.Context())

	httpresp.OK(c, gin.H{"status": "deleted"})
}
