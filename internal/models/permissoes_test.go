package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var todasAcoes = []Acao{
	AcaoVerProprias,
	AcaoVerTodas,
	AcaoCriar,
	AcaoEditar,
	AcaoExportar,
	AcaoRelatorios,
}

// Espelho ponto a ponto da tabela de capacidades; qualquer desvio, para mais
// ou para menos, falha aqui.
func TestAutorizado_TabelaCompleta(t *testing.T) {
	t.Parallel()

	esperado := map[TipoUsuario]map[Acao]bool{
		TipoUVIS: {
			AcaoVerProprias: true,
			AcaoVerTodas:    false,
			AcaoCriar:       true,
			AcaoEditar:      false,
			AcaoExportar:    false,
			AcaoRelatorios:  false,
		},
		TipoVisualizar: {
			AcaoVerProprias: false,
			AcaoVerTodas:    true,
			AcaoCriar:       false,
			AcaoEditar:      false,
			AcaoExportar:    false,
			AcaoRelatorios:  false,
		},
		TipoOperario: {
			AcaoVerProprias: false,
			AcaoVerTodas:    true,
			AcaoCriar:       false,
			AcaoEditar:      true,
			AcaoExportar:    true,
			AcaoRelatorios:  false,
		},
		TipoAdmin: {
			AcaoVerProprias: false,
			AcaoVerTodas:    true,
			AcaoCriar:       false,
			AcaoEditar:      true,
			AcaoExportar:    true,
			AcaoRelatorios:  true,
		},
	}

	for tipo, acoes := range esperado {
		for _, acao := range todasAcoes {
			assert.Equal(t, acoes[acao], Autorizado(tipo, acao),
				"tipo=%s acao=%s", tipo, acao)
		}
	}
}

func TestAutorizado_TipoDesconhecidoNaoPodeNada(t *testing.T) {
	t.Parallel()

	for _, acao := range todasAcoes {
		assert.False(t, Autorizado(TipoUsuario("convidado"), acao))
		assert.False(t, Autorizado(TipoUsuario(""), acao))
	}
}

func TestPaginaInicial(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/admin", PaginaInicial(TipoAdmin))
	assert.Equal(t, "/admin", PaginaInicial(TipoOperario))
	assert.Equal(t, "/admin", PaginaInicial(TipoVisualizar))
	assert.Equal(t, "/", PaginaInicial(TipoUVIS))
	assert.Equal(t, "/", PaginaInicial(TipoUsuario("convidado")))
}

func TestStatusValido(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusValido(StatusPendente))
	assert.True(t, StatusValido(StatusEmAnalise))
	assert.True(t, StatusValido(StatusAprovado))
	assert.True(t, StatusValido(StatusNegado))
	assert.False(t, StatusValido(StatusSolicitacao("CANCELADO")))
	assert.False(t, StatusValido(StatusSolicitacao("")))
}
