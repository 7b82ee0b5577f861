package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/JpGomes035/SGSV/internal/database"
	"github.com/JpGomes035/SGSV/internal/flash"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ShowNovo — formulário de novo cadastro; Hoje vira a menor data
// selecionável no campo de agendamento.
func ShowNovo(c *gin.Context) {
	render(c, http.StatusOK, "cadastro.html", gin.H{
		"Hoje": time.Now().Format("2006-01-02"),
	})
}

// CriarSolicitacao grava um novo pedido. Status entra sempre como PENDENTE
// e o dono é sempre o usuário da sessão, ignorando qualquer coisa que o
// formulário tente mandar nesses campos.
func CriarSolicitacao(c *gin.Context) {
	uid, ok := usuarioDaSessao(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	hoje := time.Now().Format("2006-01-02")

	dataStr := strings.TrimSpace(c.PostForm("data"))
	horaStr := strings.TrimSpace(c.PostForm("hora"))

	if dataStr != "" {
		if _, err := time.Parse("2006-01-02", dataStr); err != nil {
			render(c, http.StatusBadRequest, "cadastro.html", gin.H{
				"Hoje": hoje,
				"Erro": "Erro no formato de data/hora: data deve ser AAAA-MM-DD",
			})
			return
		}
	}
	if horaStr != "" {
		if _, err := time.Parse("15:04", horaStr); err != nil {
			render(c, http.StatusBadRequest, "cadastro.html", gin.H{
				"Hoje": hoje,
				"Erro": "Erro no formato de data/hora: hora deve ser HH:MM",
			})
			return
		}
	}

	pedido := models.Solicitacao{
		DataAgendamento: dataStr,
		HoraAgendamento: horaStr,

		CEP:         c.PostForm("cep"),
		Logradouro:  c.PostForm("logradouro"),
		Numero:      c.PostForm("numero"),
		Bairro:      c.PostForm("bairro"),
		Cidade:      c.PostForm("cidade"),
		UF:          c.PostForm("uf"),
		Complemento: c.PostForm("complemento"),
		Latitude:    c.PostForm("latitude"),
		Longitude:   c.PostForm("longitude"),

		Foco:       c.PostForm("foco"),
		TipoVisita: c.PostForm("tipo_visita"),
		AlturaVoo:  c.PostForm("altura_voo"),
		Criadouro:  c.PostForm("criadouro") == "sim",
		ApoioCET:   c.PostForm("apoio_cet") == "sim",
		Observacao: c.PostForm("observacao"),

		UsuarioID: uid,
		Status:    models.StatusPendente,
	}

	if err := database.CriarSolicitacao(database.DB, &pedido); err != nil {
		render(c, http.StatusInternalServerError, "cadastro.html", gin.H{
			"Hoje": hoje,
			"Erro": "Erro ao salvar a solicitação. Tente novamente.",
		})
		return
	}

	sess := sessions.Default(c)
	flash.Add(sess, flash.Success, "Pedido enviado!")
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}
