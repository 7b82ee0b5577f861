package middleware

import (
	"net/http"

	"github.com/JpGomes035/SGSV/internal/flash"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth exige uma sessão autenticada e íntegra. Sessão ausente manda
// para o login; sessão corrompida (id com tipo errado) é limpa e tratada
// como não autenticada, nunca como erro.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		uidRaw := sess.Get("user_id")
		if uidRaw == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if uid, ok := uidRaw.(uint); !ok || uid == 0 {
			sess.Clear()
			flash.Add(sess, flash.Warning, "Sessão inválida. Por favor, faça login novamente.")
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAcao barra quem não tem a capacidade exigida: avisa e devolve o
// usuário para a sua página inicial. Nenhuma negação é silenciosa.
func RequireAcao(acao models.Acao) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		tipoStr, ok := sess.Get("user_tipo").(string)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		tipo := models.TipoUsuario(tipoStr)

		if !models.Autorizado(tipo, acao) {
			flash.Add(sess, flash.Danger, "Acesso restrito.")
			_ = sess.Save()
			c.Redirect(http.StatusFound, models.PaginaInicial(tipo))
			c.Abort()
			return
		}

		c.Next()
	}
}
