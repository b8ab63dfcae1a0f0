// internal/escritorio/model.go
package escritorio

import (
	"gorm.io/gorm"

	"github.com/legalpay/api-honorarios/internal/utils"
)

type Status string

const (
	StatusAtivo   Status = "ativo"
	StatusInativo Status = "inativo"
)

func (s Status) Valido() bool {
	return s == StatusAtivo || s == StatusInativo
}

// Escritorio é o escritório ou advogado que recebe os honorários.
// Nunca é apagado; sai de cena ao ser inativado.
type Escritorio struct {
	ID        string `gorm:"primaryKey;size:26" json:"id"`
	Nome      string `gorm:"size:200;not null" json:"name"`
	Documento string `gorm:"size:14;not null;index" json:"document"` // CPF ou CNPJ, só dígitos
	Email     string `gorm:"size:100" json:"email"`
	Telefone  string `gorm:"size:30" json:"phone"`
	Area      string `gorm:"size:100" json:"area"`
	Status    Status `gorm:"size:10;not null;default:'ativo';index" json:"status"`
}

func (Escritorio) TableName() string {
	return "escritorios"
}

// BeforeCreate gera o ID quando ele não vem preenchido.
func (e *Escritorio) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = utils.NovoID()
	}
	return nil
}

// Ativo indica se o escritório entra nos indicadores do dashboard.
func (e Escritorio) Ativo() bool {
	return e.Status == StatusAtivo
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Escritorio{})
}
