package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agenasports/pitch-scheduler/internal/httperr"
	"github.com/agenasports/pitch-scheduler/internal/httpresp"
	"github.com/agenasports/pitch-scheduler/internal/models"
	"github.com/agenasports/pitch-scheduler/internal/validators"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// List searches customers by phone fragment or name/note substring.
func (h *CustomerHandler) List(c *gin.Context) {
	q := c.Query("q")

	query := h.db.Model(&models.Customer{}).Order("updated_at DESC").Limit(400)
	if q != "" {
		like := "%" + q + "%"
		phone := validators.NormalizePhone(q)
		if phone != "" {
			query = query.Where(
				"phone LIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR note ILIKE ?",
				"%"+phone+"%", like, like, like,
			)
		} else {
			query = query.Where(
				"first_name ILIKE ? OR last_name ILIKE ? OR note ILIKE ?",
				like, like, like,
			)
		}
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar clientes.")
		return
	}
	httpresp.List(c, customers)
}

type UpdateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone" binding:"required"`
	Note      string `json:"note"`
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Telefone é obrigatório.")
		return
	}

	phone := validators.NormalizePhone(req.Phone)
	if phone == "" {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Phone = phone
	customer.Note = req.Note

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar cliente.")
		return
	}
	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	result := h.db.Delete(&models.Customer{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Erro ao excluir cliente.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}
	httpresp.OK(c, gin.H{"status": "deleted"})
}
