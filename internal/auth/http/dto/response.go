package dto

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Result LoginResult `json:"result"`
}

// LoginResult reports the login outcome.
type LoginResult struct {
	Success bool `json:"success"`
}

// LogoutResponse is the body returned by logout.
type LogoutResponse struct {
	Result LogoutResult `json:"result"`
}

// LogoutResult reports the logout outcome.
type LogoutResult struct {
	LoggedOff bool `json:"logged_off"`
}
