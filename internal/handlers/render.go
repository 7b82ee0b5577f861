package handlers

import (
	"github.com/JpGomes035/SGSV/internal/flash"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render — envelope do c.HTML que propaga o usuário logado e consome as
// mensagens flash pendentes para todos os templates.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("UsuarioAtual"); ok {
		if u, ok := uVal.(models.Usuario); ok {
			data["UsuarioAtual"] = u
			data["NomeAtual"] = u.NomeUVIS
			data["TipoAtual"] = u.TipoUsuario
		}
	}

	sess := sessions.Default(c)
	if msgs := flash.Pop(sess); len(msgs) > 0 {
		data["Flashes"] = msgs
		_ = sess.Save()
	}

	c.HTML(status, tmpl, data)
}
