// internal/honorario/repository.go
package honorario

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/legalpay/api-honorarios/internal/models"
)

// Repository encapsula o acesso a dados de honorários.
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

/* ========================= CRUD ========================= */

func (r *Repository) Criar(ctx context.Context, h *Honorario) error {
	return r.DB.WithContext(ctx).Create(h).Error
}

// BuscarPorID devolve nil, nil quando o honorário não existe.
func (r *Repository) BuscarPorID(ctx context.Context, id string) (*Honorario, error) {
	var h Honorario
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListarTodos devolve os honorários na ordem de cadastro.
func (r *Repository) ListarTodos(ctx context.Context) ([]Honorario, error) {
	var list []Honorario
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *Repository) ListarPorEscritorio(ctx context.Context, escritorioID string) ([]Honorario, error) {
	var list []Honorario
	err := r.DB.WithContext(ctx).
		Where("escritorio_id = ?", escritorioID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *Repository) ListarPorContrato(ctx context.Context, contratoID string) ([]Honorario, error) {
	var list []Honorario
	err := r.DB.WithContext(ctx).
		Where("contrato_id = ?", contratoID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

// Atualizar retorna false se nenhum honorário casou com o ID.
func (r *Repository) Atualizar(ctx context.Context, id string, campos map[string]interface{}) (bool, error) {
	if len(campos) == 0 {
		var n int64
		err := r.DB.WithContext(ctx).Model(&Honorario{}).Where("id = ?", id).Count(&n).Error
		return n > 0, err
	}
	res := r.DB.WithContext(ctx).Model(&Honorario{}).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

/* ========================= Somas ========================= */

// SomarPagosPorMoeda soma os valores pagos na moeda; 0 quando não há nenhum.
func (r *Repository) SomarPagosPorMoeda(ctx context.Context, moeda models.Moeda) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&Honorario{}).
		Where("status = ? AND moeda = ?", StatusPago, moeda).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
