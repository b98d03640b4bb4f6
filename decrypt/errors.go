package decrypt

import "errors"

var (
	// ErrNilProvider indicates a layer was constructed without an inner
	// provider.
	ErrNilProvider = errors.New("decrypt: provider is nil")

	// ErrNilDecryptor indicates a layer was constructed without a
	// decryptor.
	ErrNilDecryptor = errors.New("decrypt: decryptor is nil")

	// ErrDecryptFailed indicates a marked value could not be decrypted.
	// It wraps the decryptor's own error and surfaces on that key only.
	ErrDecryptFailed = errors.New("decrypt: decryption failed")
)
