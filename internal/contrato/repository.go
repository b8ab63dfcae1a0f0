package contrato

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

func (r *Repository) Criar(ctx context.Context, c *Contrato) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

// BuscarPorID devolve nil, nil quando o contrato não existe.
func (r *Repository) BuscarPorID(ctx context.Context, id string) (*Contrato, error) {
	var c Contrato
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListarTodos(ctx context.Context) ([]Contrato, error) {
	var contratos []Contrato
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&contratos).Error
	return contratos, err
}

// ListarPorEscritorio mantém a ordem de cadastro.
func (r *Repository) ListarPorEscritorio(ctx context.Context, escritorioID string) ([]Contrato, error) {
	var contratos []Contrato
	err := r.DB.WithContext(ctx).
		Where("escritorio_id = ?", escritorioID).
		Order("id ASC").
		Find(&contratos).Error
	return contratos, err
}

// Atualizar retorna false se nenhum contrato casou com o ID.
func (r *Repository) Atualizar(ctx context.Context, id string, campos map[string]interface{}) (bool, error) {
	if len(campos) == 0 {
		var n int64
		err := r.DB.WithContext(ctx).Model(&Contrato{}).Where("id = ?", id).Count(&n).Error
		return n > 0, err
	}
	res := r.DB.WithContext(ctx).Model(&Contrato{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
