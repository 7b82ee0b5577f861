package handlers

import (
	"net/http"
	"strconv"

	"github.com/JpGomes035/SGSV/internal/database"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-gonic/gin"
)

// paginaDaQuery lê ?page= com fallback para 1.
func paginaDaQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// Dashboard — painel da unidade: só os pedidos do próprio usuário, com
// filtro opcional de status. Perfis de gestão caem no /admin.
func Dashboard(c *gin.Context) {
	tipo := tipoDaSessao(c)
	if models.Autorizado(tipo, models.AcaoVerTodas) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	uid, _ := usuarioDaSessao(c)
	filtroStatus := c.Query("status")

	itens, pag, err := database.ListarDoUsuario(database.DB, uid, filtroStatus, paginaDaQuery(c))
	if err != nil {
		render(c, http.StatusInternalServerError, "erro.html", gin.H{"Mensagem": "Erro ao carregar solicitações"})
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Nome":         nomeDaSessao(c),
		"Solicitacoes": itens,
		"Paginacao":    pag,
		"FiltroStatus": filtroStatus,
	})
}
