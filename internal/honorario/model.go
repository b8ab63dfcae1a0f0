// internal/honorario/model.go
package honorario

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/legalpay/api-honorarios/internal/models"
	"github.com/legalpay/api-honorarios/internal/utils"
)

type Status string

const (
	StatusPendente  Status = "pendente"
	StatusEmAnalise Status = "em análise"
	StatusPago      Status = "pago"
)

// Statuses segue a ordem do ciclo de vida. Nenhuma transição é imposta:
// qualquer status pode ser gravado a partir de qualquer outro.
var Statuses = []Status{StatusPendente, StatusEmAnalise, StatusPago}

func (s Status) Valido() bool {
	return s == StatusPendente || s == StatusEmAnalise || s == StatusPago
}

// Honorario é a fatura cobrada de um contrato. Escritório e contrato
// referenciados não são conferidos na gravação.
type Honorario struct {
	ID             string         `gorm:"primaryKey;size:26" json:"id"`
	EscritorioID   string         `gorm:"size:26;not null;index" json:"lawFirmId"`
	ContratoID     string         `gorm:"size:26;not null;index" json:"contractId"`
	NumeroProcesso string         `gorm:"size:50" json:"processNumber,omitempty"`
	Valor          float64        `gorm:"not null;default:0" json:"value"`
	Moeda          models.Moeda   `gorm:"size:3;not null;default:'BRL';index" json:"currency"`
	DataVencimento datatypes.Date `gorm:"not null" json:"dueDate"`
	Status         Status         `gorm:"size:20;not null;default:'pendente';index" json:"status"`
	DocumentoURL   string         `gorm:"size:255" json:"documentUrl,omitempty"`
	DataCriacao    datatypes.Date `gorm:"not null" json:"createdAt"` // definida na criação, nunca alterada
}

func (Honorario) TableName() string {
	return "honorarios"
}

func (h *Honorario) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = utils.NovoID()
	}
	return nil
}

func (h Honorario) Pago() bool {
	return h.Status == StatusPago
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Honorario{})
}
