package database

import (
	"log"
	"strings"
	"time"

	"github.com/JpGomes035/SGSV/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// abrir escolhe o driver pelo formato do DSN: URLs postgres vão para o
// driver postgres, qualquer outra coisa é tratada como arquivo SQLite
// (compatível com o sgsv.db legado).
func abrir(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = abrir(dsn)
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrar(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	SeedUsuarios(DB)
}

// Migrar roda o AutoMigrate dos dois modelos do sistema.
func Migrar(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Solicitacao{},
	)
}

type seedUsuario struct {
	NomeUVIS    string
	Regiao      string
	CodigoSetor string
	Login       string
	Senha       string
	Tipo        models.TipoUsuario
}

// SeedUsuarios garante as contas provisionadas. Idempotente: contas
// existentes só têm o tipo corrigido caso tenha divergido; a senha nunca
// é sobrescrita.
func SeedUsuarios(db *gorm.DB) {
	contas := []seedUsuario{
		{
			NomeUVIS:    "Administrador Original",
			Regiao:      "CENTRAL",
			CodigoSetor: "00",
			Login:       "admin",
			Senha:       "admin123",
			Tipo:        models.TipoAdmin,
		},
		{
			NomeUVIS:    "Usuário Operário",
			Regiao:      "OPERACIONAL",
			CodigoSetor: "98",
			Login:       "operario",
			Senha:       "operario123",
			Tipo:        models.TipoOperario,
		},
		{
			NomeUVIS:    "UVIS Lapa/Pinheiros",
			Regiao:      "OESTE",
			CodigoSetor: "90",
			Login:       "lapa",
			Senha:       "1234",
			Tipo:        models.TipoUVIS,
		},
		{
			NomeUVIS:    "UVIS Teste QA",
			Regiao:      "SUL",
			CodigoSetor: "10",
			Login:       "teste",
			Senha:       "1234",
			Tipo:        models.TipoUVIS,
		},
	}

	for _, conta := range contas {
		var existente models.Usuario
		err := db.Where("login = ?", conta.Login).First(&existente).Error
		if err == nil {
			if existente.TipoUsuario != conta.Tipo {
				existente.TipoUsuario = conta.Tipo
				if err := db.Save(&existente).Error; err != nil {
					log.Printf("failed to fix role for %s: %v", conta.Login, err)
				}
			}
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(conta.Senha), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", conta.Login, err)
			continue
		}

		usuario := models.Usuario{
			NomeUVIS:    conta.NomeUVIS,
			Regiao:      conta.Regiao,
			CodigoSetor: conta.CodigoSetor,
			Login:       conta.Login,
			SenhaHash:   string(hash),
			TipoUsuario: conta.Tipo,
		}

		if err := db.Create(&usuario).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", conta.Login, err)
			continue
		}

		log.Printf("created seed user: %s (tipo=%s)", conta.Login, conta.Tipo)

		// garante pelo menos um pedido para a conta de QA
		if conta.Login == "teste" {
			pedido := models.Solicitacao{
				DataAgendamento: "2026-01-01",
				HoraAgendamento: "10:00",
				Logradouro:      "Rua Teste Funcional",
				Numero:          "999",
				Foco:            "Imóvel Abandonado",
				UsuarioID:       usuario.ID,
				Status:          models.StatusEmAnalise,
			}
			if err := db.Create(&pedido).Error; err != nil {
				log.Printf("failed to create sample request: %v", err)
			}
		}
	}
}
