// Package password abstrae el hashing de contraseñas detrás de una interfaz
// para que el dominio no dependa del algoritmo concreto.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashea y verifica contraseñas. Hash siempre produce un hash con sal;
// Verify compara en tiempo constante respecto al contenido del hash.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) bool
}

// BcryptHasher implementa Hasher con bcrypt (costo adaptativo).
type BcryptHasher struct {
	Cost int
}

var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher construye el hasher con el costo por defecto de bcrypt.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

// Hash genera un hash bcrypt con sal aleatoria. Nunca almacena el texto plano.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify compara la contraseña en plano contra el hash almacenado.
func (h *BcryptHasher) Verify(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
