package database

import (
	"errors"

	"github.com/JpGomes035/SGSV/internal/models"

	"gorm.io/gorm"
)

var ErrNaoEncontrado = errors.New("solicitação não encontrada")

// FiltroGestao — filtros opcionais do painel de gestão e da exportação.
// Unidade e Regiao casam por substring, sem diferenciar maiúsculas.
type FiltroGestao struct {
	Status  string
	Unidade string
	Regiao  string
}

// consultaGestao monta a query base do painel de gestão: solicitações com
// join no autor para filtrar por unidade/região.
func consultaGestao(db *gorm.DB, f FiltroGestao) *gorm.DB {
	q := db.Model(&models.Solicitacao{}).
		Joins("JOIN usuarios ON usuarios.id = solicitacoes.usuario_id")

	if f.Status != "" {
		q = q.Where("solicitacoes.status = ?", f.Status)
	}
	if f.Unidade != "" {
		q = q.Where("LOWER(usuarios.nome_uvis) LIKE LOWER(?)", "%"+f.Unidade+"%")
	}
	if f.Regiao != "" {
		q = q.Where("LOWER(usuarios.regiao) LIKE LOWER(?)", "%"+f.Regiao+"%")
	}

	return q
}

// ListarDoUsuario devolve a página pedida das solicitações do próprio
// usuário, mais recentes primeiro, com filtro opcional de status.
func ListarDoUsuario(db *gorm.DB, usuarioID uint, status string, pagina int) ([]models.Solicitacao, *Paginacao, error) {
	q := db.Model(&models.Solicitacao{}).Where("usuario_id = ?", usuarioID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	pag := novaPaginacao(pagina, total)

	var itens []models.Solicitacao
	err := q.Order("created_at desc").
		Offset(pag.offset()).
		Limit(pag.PorPagina).
		Find(&itens).Error
	if err != nil {
		return nil, nil, err
	}

	return itens, pag, nil
}

// ListarGestao devolve a página pedida da visão geral, com os filtros do
// painel de gestão aplicados e o autor pré-carregado.
func ListarGestao(db *gorm.DB, f FiltroGestao, pagina int) ([]models.Solicitacao, *Paginacao, error) {
	var total int64
	if err := consultaGestao(db, f).Count(&total).Error; err != nil {
		return nil, nil, err
	}

	pag := novaPaginacao(pagina, total)

	var itens []models.Solicitacao
	err := consultaGestao(db, f).
		Preload("Autor").
		Order("solicitacoes.created_at desc").
		Offset(pag.offset()).
		Limit(pag.PorPagina).
		Find(&itens).Error
	if err != nil {
		return nil, nil, err
	}

	return itens, pag, nil
}

// ListarParaExportacao devolve o conjunto completo (sem paginação) com os
// mesmos filtros do painel de gestão, para a planilha.
func ListarParaExportacao(db *gorm.DB, f FiltroGestao) ([]models.Solicitacao, error) {
	var itens []models.Solicitacao
	err := consultaGestao(db, f).
		Preload("Autor").
		Order("solicitacoes.created_at desc").
		Find(&itens).Error
	return itens, err
}

// CriarSolicitacao insere o pedido em uma transação. Status e dono já devem
// vir forçados pelo handler (PENDENTE / usuário da sessão).
func CriarSolicitacao(db *gorm.DB, s *models.Solicitacao) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(s).Error
	})
}

// CamposGestao — únicos campos mutáveis depois da criação.
type CamposGestao struct {
	Protocolo     string
	Status        models.StatusSolicitacao
	Justificativa string
	Latitude      string
	Longitude     string
}

// AtualizarGestao aplica os cinco campos administrativos de uma só vez,
// dentro de uma transação. Devolve ErrNaoEncontrado se o id não existe;
// nesse caso nada é gravado.
func AtualizarGestao(db *gorm.DB, id uint, campos CamposGestao) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var pedido models.Solicitacao
		if err := tx.First(&pedido, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNaoEncontrado
			}
			return err
		}

		return tx.Model(&pedido).Updates(map[string]interface{}{
			"protocolo":     campos.Protocolo,
			"status":        campos.Status,
			"justificativa": campos.Justificativa,
			"latitude":      campos.Latitude,
			"longitude":     campos.Longitude,
		}).Error
	})
}
