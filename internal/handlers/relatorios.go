package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JpGomes035/SGSV/internal/database"

	"github.com/gin-gonic/gin"
)

// Relatorios — GET /relatorios, exclusivo do admin. Aceita ?mes= e ?ano=;
// valor ausente ou ilegível cai no mês/ano corrente.
func Relatorios(c *gin.Context) {
	agora := time.Now()

	mes, err := strconv.Atoi(c.DefaultQuery("mes", strconv.Itoa(int(agora.Month()))))
	if err != nil || mes < 1 || mes > 12 {
		mes = int(agora.Month())
	}
	ano, err := strconv.Atoi(c.DefaultQuery("ano", strconv.Itoa(agora.Year())))
	if err != nil || ano <= 0 {
		ano = agora.Year()
	}

	rel, err := database.GerarRelatorioMensal(database.DB, ano, mes)
	if err != nil {
		render(c, http.StatusInternalServerError, "erro.html", gin.H{"Mensagem": "Erro ao gerar o relatório"})
		return
	}

	serie, err := database.SerieMensal(database.DB)
	if err != nil {
		render(c, http.StatusInternalServerError, "erro.html", gin.H{"Mensagem": "Erro ao gerar o relatório"})
		return
	}

	render(c, http.StatusOK, "relatorios.html", gin.H{
		"Relatorio":       rel,
		"DadosMensais":    serie,
		"AnosDisponiveis": database.AnosDisponiveis(serie),
		"MesSelecionado":  mes,
		"AnoSelecionado":  ano,
	})
}
