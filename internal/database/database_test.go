package database

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JpGomes035/SGSV/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var seqBanco atomic.Int64

// abrirBancoTeste abre um SQLite em memória exclusivo do teste, já migrado.
func abrirBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:teste%d?mode=memory&cache=shared", seqBanco.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrar(db))

	return db
}

func criarUsuarioTeste(t *testing.T, db *gorm.DB, login, nome, regiao string, tipo models.TipoUsuario) models.Usuario {
	t.Helper()

	u := models.Usuario{
		NomeUVIS:    nome,
		Regiao:      regiao,
		Login:       login,
		SenhaHash:   "hash-irrelevante",
		TipoUsuario: tipo,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// criarSolicitacaoTeste insere um pedido com CreatedAt controlado, para os
// testes de ordenação e de agregação mensal.
func criarSolicitacaoTeste(t *testing.T, db *gorm.DB, dono models.Usuario, status models.StatusSolicitacao, criadaEm time.Time, ajustes func(*models.Solicitacao)) models.Solicitacao {
	t.Helper()

	s := models.Solicitacao{
		UsuarioID: dono.ID,
		Status:    status,
	}
	s.CreatedAt = criadaEm
	if ajustes != nil {
		ajustes(&s)
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}
