package database

// PorPagina — tamanho fixo de página dos painéis.
const PorPagina = 6

// Paginacao carrega os metadados que os templates usam para montar os
// controles de navegação.
type Paginacao struct {
	Pagina       int
	PorPagina    int
	Total        int64
	TotalPaginas int
}

func novaPaginacao(pagina int, total int64) *Paginacao {
	if pagina < 1 {
		pagina = 1
	}
	totalPaginas := int((total + PorPagina - 1) / PorPagina)
	return &Paginacao{
		Pagina:       pagina,
		PorPagina:    PorPagina,
		Total:        total,
		TotalPaginas: totalPaginas,
	}
}

func (p *Paginacao) TemAnterior() bool { return p.Pagina > 1 }
func (p *Paginacao) TemProxima() bool  { return p.Pagina < p.TotalPaginas }
func (p *Paginacao) Anterior() int     { return p.Pagina - 1 }
func (p *Paginacao) Proxima() int      { return p.Pagina + 1 }

func (p *Paginacao) offset() int { return (p.Pagina - 1) * p.PorPagina }
