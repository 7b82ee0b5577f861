package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/JpGomes035/SGSV/internal/config"
	"github.com/JpGomes035/SGSV/internal/handlers"
	"github.com/JpGomes035/SGSV/internal/middleware"
	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// datetimeformat — "2006-01-02" vira "02-01-06" nos templates; valor fora
// do formato é exibido como está.
func datetimeformat(valor string) string {
	t, err := time.Parse("2006-01-02", valor)
	if err != nil {
		return valor
	}
	return t.Format("02-01-06")
}

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())

	// falha inesperada nunca vaza stack trace nem corrompe a sessão:
	// só uma página genérica de erro
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.HTML(http.StatusInternalServerError, "erro.html", gin.H{
			"Mensagem": "Erro interno. Tente novamente mais tarde.",
		})
	}))

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"datetimeformat": datetimeformat,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("sgsv_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// PAINEL DA UNIDADE
	auth.GET("/", handlers.Dashboard)

	// NOVO CADASTRO
	auth.GET("/novo_cadastro",
		middleware.RequireAcao(models.AcaoCriar),
		handlers.ShowNovo,
	)
	auth.POST("/novo_cadastro",
		middleware.RequireAcao(models.AcaoCriar),
		handlers.CriarSolicitacao,
	)

	// PAINEL DE GESTÃO
	auth.GET("/admin",
		middleware.RequireAcao(models.AcaoVerTodas),
		handlers.AdminDashboard,
	)
	auth.GET("/admin/exportar_excel",
		middleware.RequireAcao(models.AcaoExportar),
		handlers.ExportarExcel,
	)
	auth.POST("/admin/atualizar/:id",
		middleware.RequireAcao(models.AcaoEditar),
		handlers.Atualizar,
	)

	// RELATÓRIOS (só admin)
	auth.GET("/relatorios",
		middleware.RequireAcao(models.AcaoRelatorios),
		handlers.Relatorios,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
