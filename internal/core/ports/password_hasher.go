package ports

// PasswordHasher abstracts the one-way credential hashing scheme.
// Hash embeds a fresh random salt on every call, so two hashes of the
// same plaintext differ; Verify compares in constant time. Emptiness
// checks on the plaintext belong to the caller, not the hasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
