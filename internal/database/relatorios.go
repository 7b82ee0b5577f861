package database

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JpGomes035/SGSV/internal/models"

	"gorm.io/gorm"
)

// exprMes devolve a expressão SQL que formata created_at como "YYYY-MM",
// conforme o dialeto em uso (o legado roda em SQLite, produção em postgres).
func exprMes(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "to_char(solicitacoes.created_at, 'YYYY-MM')"
	}
	return "strftime('%Y-%m', solicitacoes.created_at)"
}

// Contagem — um bucket de agrupamento. Valor vazio é um bucket válido
// (campo ausente), não é descartado.
type Contagem struct {
	Valor string
	Total int64
}

// ContagemMensal — total de solicitações de um mês ("YYYY-MM").
type ContagemMensal struct {
	Mes   string
	Total int64
}

// RelatorioMensal agrega as métricas do mês pedido.
type RelatorioMensal struct {
	Ano int
	Mes int

	Total     int64
	Aprovadas int64
	Negadas   int64
	EmAnalise int64
	Pendentes int64

	PorRegiao     []Contagem
	PorStatus     []Contagem
	PorFoco       []Contagem
	PorTipoVisita []Contagem
	PorAlturaVoo  []Contagem
}

// filtroMes restringe a query às solicitações criadas no ano-mês indicado,
// comparando o prefixo "YYYY-MM" de created_at.
func filtroMes(q *gorm.DB, ano, mes int) *gorm.DB {
	return q.Where(exprMes(q)+" = ?", fmt.Sprintf("%d-%02d", ano, mes))
}

func contagemPorCampo(db *gorm.DB, campo string, ano, mes int) ([]Contagem, error) {
	var linhas []Contagem
	q := db.Model(&models.Solicitacao{}).
		Select("COALESCE(" + campo + ", '') AS valor, COUNT(solicitacoes.id) AS total")
	if strings.HasPrefix(campo, "usuarios.") {
		q = q.Joins("JOIN usuarios ON usuarios.id = solicitacoes.usuario_id")
	}
	err := filtroMes(q, ano, mes).
		Group(campo).
		Order(campo).
		Scan(&linhas).Error
	return linhas, err
}

func contagemStatusMes(db *gorm.DB, ano, mes int, status models.StatusSolicitacao) (int64, error) {
	var n int64
	q := db.Model(&models.Solicitacao{}).Where("status = ?", status)
	err := filtroMes(q, ano, mes).Count(&n).Error
	return n, err
}

// GerarRelatorioMensal calcula todas as métricas do mês: totais por status
// e os agrupamentos por região, status, foco, tipo de visita e altura de voo.
func GerarRelatorioMensal(db *gorm.DB, ano, mes int) (*RelatorioMensal, error) {
	rel := &RelatorioMensal{Ano: ano, Mes: mes}

	if err := filtroMes(db.Model(&models.Solicitacao{}), ano, mes).Count(&rel.Total).Error; err != nil {
		return nil, err
	}

	var err error
	if rel.Aprovadas, err = contagemStatusMes(db, ano, mes, models.StatusAprovado); err != nil {
		return nil, err
	}
	if rel.Negadas, err = contagemStatusMes(db, ano, mes, models.StatusNegado); err != nil {
		return nil, err
	}
	if rel.EmAnalise, err = contagemStatusMes(db, ano, mes, models.StatusEmAnalise); err != nil {
		return nil, err
	}
	if rel.Pendentes, err = contagemStatusMes(db, ano, mes, models.StatusPendente); err != nil {
		return nil, err
	}

	if rel.PorRegiao, err = contagemPorCampo(db, "usuarios.regiao", ano, mes); err != nil {
		return nil, err
	}
	if rel.PorStatus, err = contagemPorCampo(db, "solicitacoes.status", ano, mes); err != nil {
		return nil, err
	}
	if rel.PorFoco, err = contagemPorCampo(db, "solicitacoes.foco", ano, mes); err != nil {
		return nil, err
	}
	if rel.PorTipoVisita, err = contagemPorCampo(db, "solicitacoes.tipo_visita", ano, mes); err != nil {
		return nil, err
	}
	if rel.PorAlturaVoo, err = contagemPorCampo(db, "solicitacoes.altura_voo", ano, mes); err != nil {
		return nil, err
	}

	return rel, nil
}

// SerieMensal conta as solicitações por mês em todo o histórico, em ordem
// cronológica, para o gráfico de tendência.
func SerieMensal(db *gorm.DB) ([]ContagemMensal, error) {
	expr := exprMes(db)
	var linhas []ContagemMensal
	err := db.Model(&models.Solicitacao{}).
		Select(expr + " AS mes, COUNT(solicitacoes.id) AS total").
		Group(expr).
		Order(expr).
		Scan(&linhas).Error
	return linhas, err
}

// AnosDisponiveis extrai da série mensal os anos distintos, do mais recente
// para o mais antigo, para o seletor de ano do relatório.
func AnosDisponiveis(serie []ContagemMensal) []string {
	vistos := map[string]bool{}
	var anos []string
	for _, c := range serie {
		ano, _, ok := strings.Cut(c.Mes, "-")
		if !ok || vistos[ano] {
			continue
		}
		vistos[ano] = true
		anos = append(anos, ano)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(anos)))
	return anos
}
