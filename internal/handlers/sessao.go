package handlers

import (
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// helpers de leitura da sessão; a validação forte fica no middleware.

func usuarioDaSessao(c *gin.Context) (uint, bool) {
	sess := sessions.Default(c)
	uid, ok := sess.Get("user_id").(uint)
	return uid, ok && uid > 0
}

func tipoDaSessao(c *gin.Context) models.TipoUsuario {
	sess := sessions.Default(c)
	tipoStr, _ := sess.Get("user_tipo").(string)
	return models.TipoUsuario(tipoStr)
}

func nomeDaSessao(c *gin.Context) string {
	sess := sessions.Default(c)
	nome, _ := sess.Get("user_nome").(string)
	return nome
}
