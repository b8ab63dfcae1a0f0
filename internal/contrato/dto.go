package contrato

import (
	"errors"
	"strings"

	"github.com/legalpay/api-honorarios/internal/models"
	"github.com/legalpay/api-honorarios/internal/utils"
)

// CreateRequest é usado em POST /contratos. Datas em aaaa-mm-dd.
type CreateRequest struct {
	EscritorioID string       `json:"lawFirmId"`
	TipoServico  TipoServico  `json:"serviceType"`
	Valor        float64      `json:"value"`
	Moeda        models.Moeda `json:"currency"` // vazio assume BRL
	DataInicio   string       `json:"startDate"`
	DataFim      string       `json:"endDate"`
	Departamento string       `json:"department"`
	Anexo        string       `json:"attachment"`
}

// UpdateRequest é usado em PUT /contratos/{id}
type UpdateRequest struct {
	EscritorioID *string       `json:"lawFirmId,omitempty"`
	TipoServico  *TipoServico  `json:"serviceType,omitempty"`
	Valor        *float64      `json:"value,omitempty"`
	Moeda        *models.Moeda `json:"currency,omitempty"`
	DataInicio   *string       `json:"startDate,omitempty"`
	DataFim      *string       `json:"endDate,omitempty"`
	Departamento *string       `json:"department,omitempty"`
	Anexo        *string       `json:"attachment,omitempty"`
}

func (c CreateRequest) Validar() error {
	if strings.TrimSpace(c.EscritorioID) == "" {
		return errors.New("escritório é obrigatório")
	}
	if !c.TipoServico.Valido() {
		return errors.New("tipo de serviço inválido")
	}
	if c.Valor < 0 {
		return errors.New("valor não pode ser negativo")
	}
	if c.Moeda != "" && !c.Moeda.Valida() {
		return errors.New("moeda inválida")
	}
	if _, err := utils.ParseData(c.DataInicio); err != nil {
		return err
	}
	if _, err := utils.ParseData(c.DataFim); err != nil {
		return err
	}
	return nil
}

func (u UpdateRequest) Validar() error {
	if u.EscritorioID != nil && strings.TrimSpace(*u.EscritorioID) == "" {
		return errors.New("escritório não pode ficar vazio")
	}
	if u.TipoServico != nil && !u.TipoServico.Valido() {
		return errors.New("tipo de serviço inválido")
	}
	if u.Valor != nil && *u.Valor < 0 {
		return errors.New("valor não pode ser negativo")
	}
	if u.Moeda != nil && !u.Moeda.Valida() {
		return errors.New("moeda inválida")
	}
	if _, err := utils.ParseDataOpcional(u.DataInicio); err != nil {
		return err
	}
	if _, err := utils.ParseDataOpcional(u.DataFim); err != nil {
		return err
	}
	return nil
}

// Novo monta o modelo a partir do pedido.
func (c CreateRequest) Novo() (*Contrato, error) {
	inicio, err := utils.ParseData(c.DataInicio)
	if err != nil {
		return nil, err
	}
	fim, err := utils.ParseData(c.DataFim)
	if err != nil {
		return nil, err
	}
	return &Contrato{
		EscritorioID: c.EscritorioID,
		TipoServico:  c.TipoServico,
		Valor:        c.Valor,
		Moeda:        c.Moeda.OuPadrao(),
		DataInicio:   inicio,
		DataFim:      fim,
		Departamento: c.Departamento,
		Anexo:        c.Anexo,
	}, nil
}

// Campos devolve as colunas a alterar.
func (u UpdateRequest) Campos() (map[string]interface{}, error) {
	campos := map[string]interface{}{}
	if u.EscritorioID != nil {
		campos["escritorio_id"] = *u.EscritorioID
	}
	if u.TipoServico != nil {
		campos["tipo_servico"] = *u.TipoServico
	}
	if u.Valor != nil {
		campos["valor"] = *u.Valor
	}
	if u.Moeda != nil {
		campos["moeda"] = *u.Moeda
	}
	if u.DataInicio != nil {
		d, err := utils.ParseData(*u.DataInicio)
		if err != nil {
			return nil, err
		}
		campos["data_inicio"] = d
	}
	if u.DataFim != nil {
		d, err := utils.ParseData(*u.DataFim)
		if err != nil {
			return nil, err
		}
		campos["data_fim"] = d
	}
	if u.Departamento != nil {
		campos["departamento"] = *u.Departamento
	}
	if u.Anexo != nil {
		campos["anexo"] = *u.Anexo
	}
	return campos, nil
}
