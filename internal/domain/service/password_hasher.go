// Package service declares the outbound capabilities the use cases depend on: hashing,
// cookie signing, link shortening, QR rendering, event publishing, rate limiting and the bot.
package service

// PasswordHasher stores account passwords. Check never distinguishes a malformed hash
// from a wrong password.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
