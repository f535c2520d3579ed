package passwordgenerator

import (
	"crypto/rand"
	"math/big"

	"cuentas/internal/core/domain/account"
)

const PasswordLength = 10

type Generator struct {
	chars []rune
}

func NewGenerator() *Generator {
	return &Generator{
		chars: []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	}
}

func (g *Generator) GeneratePassword() account.RawPassword {
	b := make([]rune, PasswordLength)
	max := big.NewInt(int64(len(g.chars)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("could not read from the random source")
		}
		b[i] = g.chars[n.Int64()]
	}
	return account.RawPassword(b)
}
