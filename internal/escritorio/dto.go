// internal/escritorio/dto.go
package escritorio

import (
	"errors"
	"strings"

	"github.com/legalpay/api-honorarios/internal/utils"
)

// CreateRequest é usado em POST /escritorios
type CreateRequest struct {
	Nome      string `json:"name"`
	Documento string `json:"document"`
	Email     string `json:"email"`
	Telefone  string `json:"phone"`
	Area      string `json:"area"`
	Status    Status `json:"status"` // vazio assume "ativo"
}

// UpdateRequest é usado em PUT /escritorios/{id}
// Campos como ponteiro permitem omitir no JSON se não quiser alterar
type UpdateRequest struct {
	Nome      *string `json:"name,omitempty"`
	Documento *string `json:"document,omitempty"`
	Email     *string `json:"email,omitempty"`
	Telefone  *string `json:"phone,omitempty"`
	Area      *string `json:"area,omitempty"`
	Status    *Status `json:"status,omitempty"`
}

// Validar confere os campos obrigatórios do cadastro.
func (c CreateRequest) Validar() error {
	if strings.TrimSpace(c.Nome) == "" {
		return errors.New("nome é obrigatório")
	}
	if n := len(utils.SomenteDigitos(c.Documento)); n != 11 && n != 14 {
		return errors.New("documento deve ser CPF (11 dígitos) ou CNPJ (14 dígitos)")
	}
	if c.Status != "" && !c.Status.Valido() {
		return errors.New("status inválido")
	}
	return nil
}

// Validar confere apenas os campos presentes no patch.
func (u UpdateRequest) Validar() error {
	if u.Nome != nil && strings.TrimSpace(*u.Nome) == "" {
		return errors.New("nome não pode ficar vazio")
	}
	if u.Documento != nil {
		if n := len(utils.SomenteDigitos(*u.Documento)); n != 11 && n != 14 {
			return errors.New("documento deve ser CPF (11 dígitos) ou CNPJ (14 dígitos)")
		}
	}
	if u.Status != nil && !u.Status.Valido() {
		return errors.New("status inválido")
	}
	return nil
}

// Novo monta o modelo a partir do pedido, com documento na forma canônica.
func (c CreateRequest) Novo() *Escritorio {
	status := c.Status
	if status == "" {
		status = StatusAtivo
	}
	return &Escritorio{
		Nome:      c.Nome,
		Documento: utils.SomenteDigitos(c.Documento),
		Email:     c.Email,
		Telefone:  c.Telefone,
		Area:      c.Area,
		Status:    status,
	}
}

// Campos devolve as colunas a alterar; patch vazio devolve mapa vazio.
func (u UpdateRequest) Campos() map[string]interface{} {
	campos := map[string]interface{}{}
	if u.Nome != nil {
		campos["nome"] = *u.Nome
	}
	if u.Documento != nil {
		campos["documento"] = utils.SomenteDigitos(*u.Documento)
	}
	if u.Email != nil {
		campos["email"] = *u.Email
	}
	if u.Telefone != nil {
		campos["telefone"] = *u.Telefone
	}
	if u.Area != nil {
		campos["area"] = *u.Area
	}
	if u.Status != nil {
		campos["status"] = *u.Status
	}
	return campos
}
