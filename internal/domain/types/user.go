package types

// User is a registered login. It never changes after registration.
type User struct {
	Username     Username
	PasswordHash string // base64
	Salt         string // base64
}
