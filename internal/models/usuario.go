package models

import "gorm.io/gorm"

type TipoUsuario string

const (
	TipoAdmin      TipoUsuario = "admin"
	TipoOperario   TipoUsuario = "operario"
	TipoVisualizar TipoUsuario = "visualizar"
	TipoUVIS       TipoUsuario = "uvis"
)

// Usuario — unidade de campo (UVIS) ou conta administrativa.
// Contas são provisionadas via seed; não há auto-cadastro.
type Usuario struct {
	gorm.Model
	NomeUVIS    string      `gorm:"size:255;not null"` // nome da unidade
	Regiao      string      `gorm:"size:100"`          // CENTRAL, OESTE, SUL etc.
	CodigoSetor string      `gorm:"size:10"`
	Login       string      `gorm:"uniqueIndex;size:50;not null"`
	SenhaHash   string      `gorm:"not null"`
	TipoUsuario TipoUsuario `gorm:"type:varchar(20);not null"`
}

func (Usuario) TableName() string { return "usuarios" }
