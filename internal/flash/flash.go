// Package flash guarda mensagens de uma exibição só na sessão, com a
// categoria que o template base usa para escolher a cor do alerta.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
)

type Categoria string

const (
	Success Categoria = "success"
	Danger  Categoria = "danger"
	Warning Categoria = "warning"
)

type Mensagem struct {
	Categoria Categoria
	Texto     string
}

func init() {
	// o cookie store serializa via gob
	gob.Register(Mensagem{})
}

// Add enfileira a mensagem. O chamador é responsável por sess.Save().
func Add(sess sessions.Session, cat Categoria, texto string) {
	sess.AddFlash(Mensagem{Categoria: cat, Texto: texto})
}

// Pop devolve e consome as mensagens pendentes. Também cabe ao chamador
// salvar a sessão para que o consumo persista.
func Pop(sess sessions.Session) []Mensagem {
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	msgs := make([]Mensagem, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(Mensagem); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
