package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera o identificador curto usado como chave primária das
// tabelas da aplicação
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
