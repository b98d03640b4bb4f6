package decrypt

// Decryptor turns a marked ciphertext value into plaintext. It is supplied
// by the host; keystore handling and asymmetric schemes live behind this
// boundary.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: malformed or unrecoverable input must return an error, never
//   garbage plaintext.
// - Secrecy: implementations must not log plaintext or key material.
type Decryptor interface {
	Decrypt(cipherText string) (string, error)
}

// DecryptorFunc adapts a function to the Decryptor interface.
type DecryptorFunc func(cipherText string) (string, error)

// Decrypt implements Decryptor.
func (f DecryptorFunc) Decrypt(cipherText string) (string, error) {
	return f(cipherText)
}

// Noop passes marked values through with the marker stripped (dev/test
// mode).
type Noop struct{}

// Decrypt implements Decryptor.
func (Noop) Decrypt(cipherText string) (string, error) {
	return cipherText, nil
}

// Ensure implementations satisfy Decryptor
var (
	_ Decryptor = DecryptorFunc(nil)
	_ Decryptor = Noop{}
)
