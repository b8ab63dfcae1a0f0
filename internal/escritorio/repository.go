// internal/escritorio/repository.go
package escritorio

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de escritórios.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Criar insere o escritório; o ID é gerado no BeforeCreate se vier vazio.
func (r *Repository) Criar(ctx context.Context, e *Escritorio) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

// BuscarPorID devolve nil, nil quando não existe escritório com o ID.
func (r *Repository) BuscarPorID(ctx context.Context, id string) (*Escritorio, error) {
	var e Escritorio
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListarTodos devolve os escritórios na ordem de cadastro.
func (r *Repository) ListarTodos(ctx context.Context) ([]Escritorio, error) {
	var list []Escritorio
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

// Atualizar aplica as colunas informadas. Retorna false se nenhum registro casou com o ID.
func (r *Repository) Atualizar(ctx context.Context, id string, campos map[string]interface{}) (bool, error) {
	if len(campos) == 0 {
		var n int64
		err := r.DB.WithContext(ctx).Model(&Escritorio{}).Where("id = ?", id).Count(&n).Error
		return n > 0, err
	}
	res := r.DB.WithContext(ctx).Model(&Escritorio{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
