// Package decrypt adds transparent value decryption to a provider chain.
//
// Layer is a synthetic provider that recognizes cipher-marked values
// (prefix "{cipher}" by default) and hands them to an injected Decryptor.
// It wraps either raw providers or a placeholder.View; composed with the
// latter, placeholder expansion runs first so a placeholder may select a
// key whose raw value is ciphertext and have it decrypted exactly once,
// when it is finally chosen as the resolved value.
//
// The cryptographic capability is supplied by the host. AESGCM is shipped
// as the reference Decryptor for symmetric keys; keystore or asymmetric
// schemes live behind the Decryptor interface.
package decrypt
