package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JpGomes035/SGSV/internal/database"
	"github.com/JpGomes035/SGSV/internal/flash"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func filtrosDaQuery(c *gin.Context) database.FiltroGestao {
	return database.FiltroGestao{
		Status:  c.Query("status"),
		Unidade: c.Query("unidade"),
		Regiao:  c.Query("regiao"),
	}
}

// AdminDashboard — painel de gestão: todas as solicitações, com filtros de
// status, unidade e região. O flag IsEditable controla os formulários de
// edição no template (visualizar enxerga tudo, não edita nada).
func AdminDashboard(c *gin.Context) {
	tipo := tipoDaSessao(c)
	filtros := filtrosDaQuery(c)

	pedidos, pag, err := database.ListarGestao(database.DB, filtros, paginaDaQuery(c))
	if err != nil {
		render(c, http.StatusInternalServerError, "erro.html", gin.H{"Mensagem": "Erro ao carregar solicitações"})
		return
	}

	render(c, http.StatusOK, "admin.html", gin.H{
		"Pedidos":       pedidos,
		"Paginacao":     pag,
		"IsEditable":    models.Autorizado(tipo, models.AcaoEditar),
		"FiltroStatus":  filtros.Status,
		"FiltroUnidade": filtros.Unidade,
		"FiltroRegiao":  filtros.Regiao,
	})
}

// Atualizar — POST /admin/atualizar/:id. Grava os cinco campos
// administrativos de uma vez; id inexistente responde 404 sem gravar nada.
func Atualizar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusNotFound, "Solicitação não encontrada")
		return
	}

	status := models.StatusSolicitacao(c.PostForm("status"))
	if !models.StatusValido(status) {
		sess := sessions.Default(c)
		flash.Add(sess, flash.Warning, "Status inválido.")
		_ = sess.Save()
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	campos := database.CamposGestao{
		Protocolo:     c.PostForm("protocolo"),
		Status:        status,
		Justificativa: c.PostForm("justificativa"),
		Latitude:      c.PostForm("latitude"),
		Longitude:     c.PostForm("longitude"),
	}

	sess := sessions.Default(c)
	if err := database.AtualizarGestao(database.DB, uint(id), campos); err != nil {
		if errors.Is(err, database.ErrNaoEncontrado) {
			c.String(http.StatusNotFound, "Solicitação não encontrada")
			return
		}
		flash.Add(sess, flash.Danger, "Erro ao salvar a solicitação.")
		_ = sess.Save()
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	flash.Add(sess, flash.Success, "Pedido atualizado com sucesso!")
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/admin")
}
