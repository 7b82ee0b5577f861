package models

import "gorm.io/gorm"

type StatusSolicitacao string

const (
	StatusPendente  StatusSolicitacao = "PENDENTE"
	StatusEmAnalise StatusSolicitacao = "EM ANÁLISE"
	StatusAprovado  StatusSolicitacao = "APROVADO"
	StatusNegado    StatusSolicitacao = "NEGADO"
)

// StatusValido reporta se s é um dos quatro status reconhecidos.
func StatusValido(s StatusSolicitacao) bool {
	switch s {
	case StatusPendente, StatusEmAnalise, StatusAprovado, StatusNegado:
		return true
	}
	return false
}

// Solicitacao — pedido de visita de controle de vetores.
//
// Após a criação só mudam protocolo, status, justificativa, latitude e
// longitude, e somente por admin/operario. O dono e o CreatedAt nunca mudam;
// CreatedAt é a única chave de ordenação e de agregação mensal.
type Solicitacao struct {
	gorm.Model

	UsuarioID uint    `gorm:"not null;index"`
	Autor     Usuario `gorm:"foreignKey:UsuarioID"`

	// Agendamento. Guardados como texto ("2006-01-02" / "15:04") porque o
	// banco legado carrega valores históricos fora do formato; a exportação
	// tenta interpretar e, se falhar, emite o valor cru.
	DataAgendamento string `gorm:"size:20"`
	HoraAgendamento string `gorm:"size:10"`

	// Endereço
	CEP         string `gorm:"size:10"`
	Logradouro  string `gorm:"size:255"`
	Numero      string `gorm:"size:20"`
	Bairro      string `gorm:"size:100"`
	Cidade      string `gorm:"size:100"`
	UF          string `gorm:"size:2"`
	Complemento string `gorm:"size:255"`
	Latitude    string `gorm:"size:30"`
	Longitude   string `gorm:"size:30"`

	// Classificação
	Foco       string `gorm:"size:100"`
	TipoVisita string `gorm:"size:100"`
	AlturaVoo  string `gorm:"size:50"`
	Criadouro  bool
	ApoioCET   bool
	Observacao string `gorm:"type:text"`

	Status StatusSolicitacao `gorm:"type:varchar(20);not null;default:PENDENTE"`

	// Campos administrativos
	Protocolo     string `gorm:"size:100"`
	Justificativa string `gorm:"type:text"`
}

func (Solicitacao) TableName() string { return "solicitacoes" }
