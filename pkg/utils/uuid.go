package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "0123456789abcdefghijklmnopqrstuvwxyz"

// ShortID gera um identificador curto para marcar execuções do CLI
func ShortID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
