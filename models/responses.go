package models

// PasswordsResponse is the body of GET /api/passwords: the full decrypted
// vault, account name to secret.
type PasswordsResponse struct {
	Passwords CredentialMap `json:"passwords"`

	// Length is the number of entries in Passwords.
	Length int `json:"length"`
}

// AccountsResponse is the body of GET /api/accounts: account names in
// lexical order, without secrets.
type AccountsResponse struct {
	Accounts []string `json:"accounts"`
	Length   int      `json:"length"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// ErrorResponse carries a human-readable status text for a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
