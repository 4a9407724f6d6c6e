package model

// TokenManager mints and verifies stateless bearer tokens. Verification is a
// pure function of the token and the shared secret, so any process holding
// the secret can verify tokens issued by any other.
type TokenManager interface {
	Generate(identity Identity) (string, error)
	Parse(token string) (Identity, error)
}
