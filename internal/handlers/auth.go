package handlers

import (
	"net/http"
	"strings"

	"github.com/JpGomes035/SGSV/internal/database"
	"github.com/JpGomes035/SGSV/internal/flash"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ShowLogin(c *gin.Context) {
	// já logado? vai direto para a página inicial do seu tipo
	if _, ok := usuarioDaSessao(c); ok {
		c.Redirect(http.StatusFound, models.PaginaInicial(tipoDaSessao(c)))
		return
	}

	render(c, http.StatusOK, "login.html", nil)
}

type loginForm struct {
	Login string `form:"login"`
	Senha string `form:"senha"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Erro": "Dados inválidos"})
		return
	}
	form.Login = strings.TrimSpace(form.Login)

	var usuario models.Usuario
	if err := database.DB.Where("login = ?", form.Login).First(&usuario).Error; err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Erro": "Login ou senha incorretos. Tente novamente."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(form.Senha)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Erro": "Login ou senha incorretos. Tente novamente."})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", usuario.ID)
	sess.Set("user_nome", usuario.NomeUVIS)
	sess.Set("user_tipo", string(usuario.TipoUsuario))
	flash.Add(sess, flash.Success, "Bem-vindo, "+usuario.NomeUVIS+"! Login realizado com sucesso.")
	_ = sess.Save()

	c.Redirect(http.StatusFound, models.PaginaInicial(usuario.TipoUsuario))
}

func Logout(c *gin.Context) {
	// limpa incondicionalmente, mesmo uma sessão pela metade
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
