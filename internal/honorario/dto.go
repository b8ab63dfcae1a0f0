// internal/honorario/dto.go
package honorario

import (
	"errors"
	"strings"

	"github.com/legalpay/api-honorarios/internal/models"
	"github.com/legalpay/api-honorarios/internal/utils"
)

// CreateRequest é usado em POST /honorarios. A data de criação é sempre a do servidor.
type CreateRequest struct {
	EscritorioID   string       `json:"lawFirmId"`
	ContratoID     string       `json:"contractId"`
	NumeroProcesso string       `json:"processNumber"`
	Valor          float64      `json:"value"`
	Moeda          models.Moeda `json:"currency"` // vazio assume BRL
	DataVencimento string       `json:"dueDate"`
	Status         Status       `json:"status"` // vazio assume "pendente"
	DocumentoURL   string       `json:"documentUrl"`
}

// UpdateRequest é usado em PUT /honorarios/{id}. createdAt não é alterável.
type UpdateRequest struct {
	EscritorioID   *string       `json:"lawFirmId,omitempty"`
	ContratoID     *string       `json:"contractId,omitempty"`
	NumeroProcesso *string       `json:"processNumber,omitempty"`
	Valor          *float64      `json:"value,omitempty"`
	Moeda          *models.Moeda `json:"currency,omitempty"`
	DataVencimento *string       `json:"dueDate,omitempty"`
	Status         *Status       `json:"status,omitempty"`
	DocumentoURL   *string       `json:"documentUrl,omitempty"`
}

func (c CreateRequest) Validar() error {
	if strings.TrimSpace(c.EscritorioID) == "" {
		return errors.New("escritório é obrigatório")
	}
	if strings.TrimSpace(c.ContratoID) == "" {
		return errors.New("contrato é obrigatório")
	}
	if c.Valor < 0 {
		return errors.New("valor não pode ser negativo")
	}
	if c.Moeda != "" && !c.Moeda.Valida() {
		return errors.New("moeda inválida")
	}
	if c.Status != "" && !c.Status.Valido() {
		return errors.New("status inválido")
	}
	_, err := utils.ParseData(c.DataVencimento)
	return err
}

func (u UpdateRequest) Validar() error {
	if u.Valor != nil && *u.Valor < 0 {
		return errors.New("valor não pode ser negativo")
	}
	if u.Moeda != nil && !u.Moeda.Valida() {
		return errors.New("moeda inválida")
	}
	if u.Status != nil && !u.Status.Valido() {
		return errors.New("status inválido")
	}
	_, err := utils.ParseDataOpcional(u.DataVencimento)
	return err
}

// Novo monta o modelo sem a data de criação, que fica a cargo do store.
func (c CreateRequest) Novo() (*Honorario, error) {
	venc, err := utils.ParseData(c.DataVencimento)
	if err != nil {
		return nil, err
	}
	status := c.Status
	if status == "" {
		status = StatusPendente
	}
	return &Honorario{
		EscritorioID:   c.EscritorioID,
		ContratoID:     c.ContratoID,
		NumeroProcesso: c.NumeroProcesso,
		Valor:          c.Valor,
		Moeda:          c.Moeda.OuPadrao(),
		DataVencimento: venc,
		Status:         status,
		DocumentoURL:   c.DocumentoURL,
	}, nil
}

func (u UpdateRequest) Campos() (map[string]interface{}, error) {
	campos := map[string]interface{}{}
	if u.EscritorioID != nil {
		campos["escritorio_id"] = *u.EscritorioID
	}
	if u.ContratoID != nil {
		campos["contrato_id"] = *u.ContratoID
	}
	if u.NumeroProcesso != nil {
		campos["numero_processo"] = *u.NumeroProcesso
	}
	if u.Valor != nil {
		campos["valor"] = *u.Valor
	}
	if u.Moeda != nil {
		campos["moeda"] = *u.Moeda
	}
	if u.DataVencimento != nil {
		d, err := utils.ParseData(*u.DataVencimento)
		if err != nil {
			return nil, err
		}
		campos["data_vencimento"] = d
	}
	if u.Status != nil {
		campos["status"] = *u.Status
	}
	if u.DocumentoURL != nil {
		campos["documento_url"] = *u.DocumentoURL
	}
	return campos, nil
}
