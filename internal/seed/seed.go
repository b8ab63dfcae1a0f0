// Package seed carrega os dados de demonstração na subida.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/legalpay/api-honorarios/internal/contrato"
	"github.com/legalpay/api-honorarios/internal/escritorio"
	"github.com/legalpay/api-honorarios/internal/honorario"
	"github.com/legalpay/api-honorarios/internal/models"
	"github.com/legalpay/api-honorarios/internal/store"
	"github.com/legalpay/api-honorarios/internal/utils"
)

var escritorios = []escritorio.Escritorio{
	{Nome: "Almeida & Associados Advocacia", Documento: "12345678000190", Email: "contato@almeida.adv.br", Telefone: "(11) 3456-7890", Area: "Tributário", Status: escritorio.StatusAtivo},
	{Nome: "Barbosa Sociedade de Advogados", Documento: "98765432000110", Email: "financeiro@barbosa.adv.br", Telefone: "(21) 2345-6789", Area: "Trabalhista", Status: escritorio.StatusAtivo},
	{Nome: "Carla Mendes", Documento: "12345678901", Email: "carla@mendes.adv.br", Telefone: "(31) 99876-5432", Area: "Civil", Status: escritorio.StatusAtivo},
	{Nome: "Duarte Advogados", Documento: "11222333000144", Email: "contato@duarte.adv.br", Telefone: "(41) 3222-1100", Area: "Societário", Status: escritorio.StatusInativo},
	{Nome: "Evans & Partners LLP", Documento: "55666777000188", Email: "billing@evans.com", Telefone: "+1 212 555 0100", Area: "Internacional", Status: escritorio.StatusAtivo},
}

type contratoSeed struct {
	escritorio int
	contrato.Contrato
}

var contratos = []contratoSeed{
	{0, contrato.Contrato{TipoServico: contrato.Tributario, Valor: 120000, Moeda: models.BRL, DataInicio: utils.NovaData(2024, time.January, 1), DataFim: utils.NovaData(2026, time.December, 31), Departamento: "Fiscal"}},
	{1, contrato.Contrato{TipoServico: contrato.Trabalhista, Valor: 85000, Moeda: models.BRL, DataInicio: utils.NovaData(2024, time.March, 1), DataFim: utils.NovaData(2025, time.February, 28), Departamento: "RH"}},
	{2, contrato.Contrato{TipoServico: contrato.Contencioso, Valor: 40000, Moeda: models.BRL, DataInicio: utils.NovaData(2024, time.June, 15), DataFim: utils.NovaData(2027, time.June, 14), Departamento: "Jurídico"}},
	{3, contrato.Contrato{TipoServico: contrato.Societario, Valor: 60000, Moeda: models.BRL, DataInicio: utils.NovaData(2023, time.January, 10), DataFim: utils.NovaData(2024, time.January, 9), Departamento: "Diretoria"}},
	{4, contrato.Contrato{TipoServico: contrato.Consultivo, Valor: 30000, Moeda: models.USD, DataInicio: utils.NovaData(2024, time.February, 1), DataFim: utils.NovaData(2026, time.January, 31), Departamento: "Internacional"}},
}

type honorarioSeed struct {
	contrato int
	honorario.Honorario
}

var honorarios = []honorarioSeed{
	{0, honorario.Honorario{NumeroProcesso: "0001234-56.2024.8.26.0100", Valor: 15000, Moeda: models.BRL, DataVencimento: utils.NovaData(2024, time.March, 10), Status: honorario.StatusPendente, DataCriacao: utils.NovaData(2024, time.February, 1)}},
	{0, honorario.Honorario{Valor: 22000, Moeda: models.BRL, DataVencimento: utils.NovaData(2024, time.January, 5), Status: honorario.StatusPago, DataCriacao: utils.NovaData(2023, time.December, 5)}},
	{1, honorario.Honorario{NumeroProcesso: "0100200-30.2024.5.01.0001", Valor: 9800, Moeda: models.BRL, DataVencimento: utils.NovaData(2024, time.January, 5), Status: honorario.StatusPendente, DataCriacao: utils.NovaData(2023, time.December, 20)}},
	{1, honorario.Honorario{Valor: 12500, Moeda: models.BRL, DataVencimento: utils.NovaData(2024, time.April, 20), Status: honorario.StatusEmAnalise, DataCriacao: utils.NovaData(2024, time.March, 20)}},
	{2, honorario.Honorario{NumeroProcesso: "5004321-11.2024.8.13.0024", Valor: 7300, Moeda: models.BRL, DataVencimento: utils.NovaData(2024, time.February, 20), Status: honorario.StatusPendente, DataCriacao: utils.NovaData(2024, time.January, 22)}},
	{2, honorario.Honorario{Valor: 5000, Moeda: models.BRL, DataVencimento: utils.NovaData(2024, time.May, 2), Status: honorario.StatusPago, DataCriacao: utils.NovaData(2024, time.April, 2)}},
	{3, honorario.Honorario{Valor: 18000, Moeda: models.BRL, DataVencimento: utils.NovaData(2023, time.July, 1), Status: honorario.StatusPago, DataCriacao: utils.NovaData(2023, time.June, 1)}},
	{4, honorario.Honorario{Valor: 4200, Moeda: models.USD, DataVencimento: utils.NovaData(2024, time.March, 15), Status: honorario.StatusPago, DataCriacao: utils.NovaData(2024, time.February, 15)}},
	{4, honorario.Honorario{Valor: 3100, Moeda: models.USD, DataVencimento: utils.NovaData(2024, time.June, 15), Status: honorario.StatusPendente, DataCriacao: utils.NovaData(2024, time.May, 15)}},
}

// Carregar grava os dados de demonstração direto nos repositórios, numa única
// transação, preservando as datas de criação. Não faz nada se já houver escritórios cadastrados.
func Carregar(ctx context.Context, s *store.Store, log *zap.Logger) error {
	existentes, err := s.Escritorios.ListarTodos(ctx)
	if err != nil {
		return err
	}
	if len(existentes) > 0 {
		log.Info("banco já possui dados, seed ignorado", zap.Int("escritorios", len(existentes)))
		return nil
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		escRepo := s.Escritorios.WithDB(tx)
		conRepo := s.Contratos.WithDB(tx)
		honRepo := s.Honorarios.WithDB(tx)

		ids := make([]string, len(escritorios))
		for i := range escritorios {
			e := escritorios[i]
			if err := escRepo.Criar(ctx, &e); err != nil {
				return fmt.Errorf("seed escritório %s: %w", e.Nome, err)
			}
			ids[i] = e.ID
		}

		contratoIDs := make([]string, len(contratos))
		contratoEscritorio := make([]string, len(contratos))
		for i, cs := range contratos {
			c := cs.Contrato
			c.EscritorioID = ids[cs.escritorio]
			if err := conRepo.Criar(ctx, &c); err != nil {
				return fmt.Errorf("seed contrato: %w", err)
			}
			contratoIDs[i] = c.ID
			contratoEscritorio[i] = c.EscritorioID
		}

		for _, hs := range honorarios {
			h := hs.Honorario
			h.ContratoID = contratoIDs[hs.contrato]
			h.EscritorioID = contratoEscritorio[hs.contrato]
			if err := honRepo.Criar(ctx, &h); err != nil {
				return fmt.Errorf("seed honorário: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("dados de demonstração carregados",
		zap.Int("escritorios", len(escritorios)),
		zap.Int("contratos", len(contratos)),
		zap.Int("honorarios", len(honorarios)))
	return nil
}
