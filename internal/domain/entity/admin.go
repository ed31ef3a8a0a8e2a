package entity

// Admin is an administrator account. There is no role hierarchy:
// every admin may decide every request.
type Admin struct {
	Email    string
	Password string
	Name     string
}

// CheckCredentials performs the plaintext equality check used at login.
func (a *Admin) CheckCredentials(email, password string) bool {
	return a.Email == email && a.Password == password
}
