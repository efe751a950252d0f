package authenticator

type TokenEngine[T any] interface {
	// Generate issues a signed token wrapping obj with the engine's
	// expiration.
	Generate(sub string, obj T) (string, error)

	// Verify checks the token signature and expiration, then returns the
	// wrapped object.
	Verify(token string) (T, error)
}
