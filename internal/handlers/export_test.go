package handlers

import (
	"testing"

	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pedidoExemplo() models.Solicitacao {
	p := models.Solicitacao{
		Autor: models.Usuario{
			NomeUVIS: "UVIS Lapa/Pinheiros",
			Regiao:   "OESTE",
		},
		DataAgendamento: "2026-03-10",
		HoraAgendamento: "14:30",
		CEP:             "05077-000",
		Logradouro:      "Rua Guaicurus",
		Numero:          "1000",
		Bairro:          "Lapa",
		Cidade:          "São Paulo",
		UF:              "SP",
		Foco:            "Imóvel Abandonado",
		TipoVisita:      "Drone",
		AlturaVoo:       "30m",
		Criadouro:       true,
		ApoioCET:        false,
		Status:          models.StatusPendente,
	}
	p.ID = 42
	return p
}

func linhasDaPlanilha(t *testing.T, pedidos []models.Solicitacao) [][]string {
	t.Helper()

	f, err := GerarPlanilha(pedidos)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	linhas, err := f.GetRows(NomePlanilha)
	require.NoError(t, err)
	return linhas
}

func TestGerarPlanilha_CabecalhoEContagem(t *testing.T) {
	t.Parallel()

	pedidos := []models.Solicitacao{pedidoExemplo(), pedidoExemplo(), pedidoExemplo()}
	linhas := linhasDaPlanilha(t, pedidos)

	require.Len(t, linhas, 4) // cabeçalho + 3 pedidos
	assert.Equal(t, cabecalhoExportacao, linhas[0])
}

func TestGerarPlanilha_ConteudoDaLinha(t *testing.T) {
	t.Parallel()

	linhas := linhasDaPlanilha(t, []models.Solicitacao{pedidoExemplo()})
	require.Len(t, linhas, 2)
	linha := linhas[1]

	assert.Equal(t, "42", linha[0])
	assert.Equal(t, "UVIS Lapa/Pinheiros", linha[1])
	assert.Equal(t, "OESTE", linha[2])
	assert.Equal(t, "10-03-26", linha[3], "data ISO sai como dd-mm-aa")
	assert.Equal(t, "14:30", linha[4])
	assert.Equal(t, "São Paulo/SP", linha[9])
	assert.Equal(t, "SIM", linha[16])
	assert.Equal(t, "NÃO", linha[17])
	assert.Equal(t, "PENDENTE", linha[19])
}

func TestGerarPlanilha_DataForaDoFormatoSaiCrua(t *testing.T) {
	t.Parallel()

	p := pedidoExemplo()
	p.DataAgendamento = "10/03/2026" // legado fora do ISO

	linhas := linhasDaPlanilha(t, []models.Solicitacao{p})
	assert.Equal(t, "10/03/2026", linhas[1][3])
}

func TestGerarPlanilha_CamposAusentesViramCelulaVazia(t *testing.T) {
	t.Parallel()

	p := models.Solicitacao{Status: models.StatusPendente}
	p.ID = 1

	f, err := GerarPlanilha([]models.Solicitacao{p})
	require.NoError(t, err)
	defer f.Close()

	data, err := f.GetCellValue(NomePlanilha, "D2")
	require.NoError(t, err)
	assert.Equal(t, "", data)

	protocolo, err := f.GetCellValue(NomePlanilha, "U2")
	require.NoError(t, err)
	assert.Equal(t, "", protocolo)
}

func TestGerarPlanilha_SemPedidos(t *testing.T) {
	t.Parallel()

	linhas := linhasDaPlanilha(t, nil)
	require.Len(t, linhas, 1) // só o cabeçalho
}

func TestFormatarData(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "09-12-25", formatarData("2025-12-09"))
	assert.Equal(t, "", formatarData(""))
	assert.Equal(t, "ontem", formatarData("ontem"))
	assert.Equal(t, "2026-13-40", formatarData("2026-13-40"))
}

func TestSimNao(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SIM", simNao(true))
	assert.Equal(t, "NÃO", simNao(false))
}
