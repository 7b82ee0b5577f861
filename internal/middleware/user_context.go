package middleware

import (
	"github.com/JpGomes035/SGSV/internal/database"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// InjectUser carrega o usuário da sessão para o contexto da requisição,
// para os templates saberem quem está logado. Sessão sem usuário válido
// simplesmente não injeta nada.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var usuario models.Usuario
				if err := database.DB.First(&usuario, uid).Error; err == nil {
					c.Set("UsuarioAtual", usuario)
				}
			}
		}

		c.Next()
	}
}
