package models

// Acao — operação protegida do sistema. A tabela abaixo é a única fonte de
// verdade sobre o que cada tipo de usuário pode fazer.
type Acao string

const (
	AcaoVerProprias Acao = "ver_proprias" // painel da unidade (só os próprios pedidos)
	AcaoVerTodas    Acao = "ver_todas"    // painel de gestão com filtros
	AcaoCriar       Acao = "criar"        // novo cadastro de solicitação
	AcaoEditar      Acao = "editar"       // status / protocolo / justificativa / geo
	AcaoExportar    Acao = "exportar"     // planilha Excel
	AcaoRelatorios  Acao = "relatorios"   // métricas mensais
)

var permissoes = map[TipoUsuario]map[Acao]bool{
	TipoUVIS: {
		AcaoVerProprias: true,
		AcaoCriar:       true,
	},
	TipoVisualizar: {
		AcaoVerTodas: true,
	},
	TipoOperario: {
		AcaoVerTodas: true,
		AcaoEditar:   true,
		AcaoExportar: true,
	},
	TipoAdmin: {
		AcaoVerTodas:   true,
		AcaoEditar:     true,
		AcaoExportar:   true,
		AcaoRelatorios: true,
	},
}

// Autorizado decide se o tipo de usuário pode executar a ação.
// Tipos desconhecidos não podem nada.
func Autorizado(tipo TipoUsuario, acao Acao) bool {
	return permissoes[tipo][acao]
}

// PaginaInicial — rota para onde cada tipo de usuário é mandado após login
// ou após uma negação de acesso.
func PaginaInicial(tipo TipoUsuario) string {
	switch tipo {
	case TipoAdmin, TipoOperario, TipoVisualizar:
		return "/admin"
	default:
		return "/"
	}
}
