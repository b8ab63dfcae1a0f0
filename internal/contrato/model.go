package contrato

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/legalpay/api-honorarios/internal/models"
	"github.com/legalpay/api-honorarios/internal/utils"
)

type TipoServico string

const (
	Consultivo  TipoServico = "Consultivo"
	Contencioso TipoServico = "Contencioso"
	Trabalhista TipoServico = "Trabalhista"
	Tributario  TipoServico = "Tributário"
	Societario  TipoServico = "Societário"
	Outro       TipoServico = "Outro"
)

func (t TipoServico) Valido() bool {
	switch t {
	case Consultivo, Contencioso, Trabalhista, Tributario, Societario, Outro:
		return true
	}
	return false
}

// Contrato de prestação de serviço com um escritório. O escritório
// referenciado não é conferido na gravação.
type Contrato struct {
	ID           string         `gorm:"primaryKey;size:26" json:"id"`
	EscritorioID string         `gorm:"size:26;not null;index" json:"lawFirmId"`
	TipoServico  TipoServico    `gorm:"size:20;not null" json:"serviceType"`
	Valor        float64        `gorm:"not null;default:0" json:"value"`
	Moeda        models.Moeda   `gorm:"size:3;not null;default:'BRL'" json:"currency"`
	DataInicio   datatypes.Date `gorm:"not null" json:"startDate"`
	DataFim      datatypes.Date `gorm:"not null" json:"endDate"`
	Departamento string         `gorm:"size:100" json:"department"`
	Anexo        string         `gorm:"size:255" json:"attachment,omitempty"` // referência do arquivo, não o conteúdo
}

func (Contrato) TableName() string {
	return "contratos"
}

func (c *Contrato) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = utils.NovoID()
	}
	return nil
}

// Vigente indica se o contrato ainda não terminou na data informada.
func (c Contrato) Vigente(agora time.Time) bool {
	return !time.Time(c.DataFim).Before(time.Time(utils.Hoje(agora)))
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
