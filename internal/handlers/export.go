package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/JpGomes035/SGSV/internal/database"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// NomePlanilha — aba única da exportação.
const NomePlanilha = "Relatório de Solicitações"

var cabecalhoExportacao = []string{
	"ID", "Unidade", "Região",
	"Data Agendada", "Hora",
	"CEP", "Logradouro", "Número", "Bairro", "Cidade/UF", "Complemento",
	"Latitude", "Longitude",
	"Foco", "Tipo Visita", "Altura", "Criadouro?", "Apoio CET?",
	"Observação",
	"Status", "Protocolo", "Justificativa",
}

func simNao(v bool) string {
	if v {
		return "SIM"
	}
	return "NÃO"
}

// formatarData converte "2006-01-02" para "02-01-06". Valor que não estiver
// no formato ISO sai cru, nunca derruba a exportação; vazio vira célula vazia.
func formatarData(valor string) string {
	if valor == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", valor)
	if err != nil {
		return valor
	}
	return t.Format("02-01-06")
}

// linhaExportacao monta as 22 colunas de um pedido na ordem do cabeçalho.
func linhaExportacao(p models.Solicitacao) []interface{} {
	return []interface{}{
		p.ID,
		p.Autor.NomeUVIS,
		p.Autor.Regiao,
		formatarData(p.DataAgendamento),
		p.HoraAgendamento,
		p.CEP,
		p.Logradouro,
		p.Numero,
		p.Bairro,
		p.Cidade + "/" + p.UF,
		p.Complemento,
		p.Latitude,
		p.Longitude,
		p.Foco,
		p.TipoVisita,
		p.AlturaVoo,
		simNao(p.Criadouro),
		simNao(p.ApoioCET),
		p.Observacao,
		string(p.Status),
		p.Protocolo,
		p.Justificativa,
	}
}

// GerarPlanilha monta a planilha da exportação: cabeçalho fixo congelado e
// estilizado, bordas finas em tudo e larguras ajustadas ao conteúdo.
func GerarPlanilha(pedidos []models.Solicitacao) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", NomePlanilha); err != nil {
		return nil, err
	}

	bordaFina := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}

	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    bordaFina,
	})
	if err != nil {
		return nil, err
	}

	estiloCorpo, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    bordaFina,
	})
	if err != nil {
		return nil, err
	}

	larguras := make([]int, len(cabecalhoExportacao))

	for col, titulo := range cabecalhoExportacao {
		celula, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(NomePlanilha, celula, titulo); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(NomePlanilha, celula, celula, estiloCabecalho); err != nil {
			return nil, err
		}
		larguras[col] = len([]rune(titulo))
	}

	for i, pedido := range pedidos {
		linha := linhaExportacao(pedido)
		for col, valor := range linha {
			celula, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(NomePlanilha, celula, valor); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(NomePlanilha, celula, celula, estiloCorpo); err != nil {
				return nil, err
			}
			if n := len([]rune(fmt.Sprint(valor))); n > larguras[col] {
				larguras[col] = n
			}
		}
	}

	// congela o cabeçalho
	if err := f.SetPanes(NomePlanilha, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	for col := range cabecalhoExportacao {
		nome, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(NomePlanilha, nome, nome, float64(larguras[col]+2)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// ExportarExcel — GET /admin/exportar_excel. Mesmo conjunto de filtros do
// painel de gestão, sem paginação.
func ExportarExcel(c *gin.Context) {
	pedidos, err := database.ListarParaExportacao(database.DB, filtrosDaQuery(c))
	if err != nil {
		render(c, http.StatusInternalServerError, "erro.html", gin.H{"Mensagem": "Erro ao gerar a exportação"})
		return
	}

	f, err := GerarPlanilha(pedidos)
	if err != nil {
		render(c, http.StatusInternalServerError, "erro.html", gin.H{"Mensagem": "Erro ao gerar a exportação"})
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		render(c, http.StatusInternalServerError, "erro.html", gin.H{"Mensagem": "Erro ao gerar a exportação"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="relatorio_solicitacoes.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
