package models

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	if c.Email == "" {
		return invalid("email", "is required")
	}
	if c.Password == "" {
		return invalid("password", "is required")
	}
	return nil
}

// Registration is the register request body.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r Registration) Validate() error {
	if err := (Credentials{Email: r.Email, Password: r.Password}).Validate(); err != nil {
		return err
	}
	if r.Name == "" {
		return invalid("name", "is required")
	}
	return nil
}

// TokenPair is returned by login and refresh. Servers report the lifetime
// either relative (ExpiresIn, seconds) or absolute (ExpiresAt, Unix ms).
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
	ExpiresAt    int64  `json:"expiresAt,omitempty"`
}

// RefreshRequest is the body of /auth/refresh and /auth/logout.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RegisterResult is the payload of /auth/register.
type RegisterResult struct {
	User User `json:"user"`
}
