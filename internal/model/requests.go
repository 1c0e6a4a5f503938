package model

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninRequest is the body of POST /auth/signin.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ShortenRequest is the body of POST /url/shorten.
type ShortenRequest struct {
	OriginalURL string `json:"originalUrl"`
}

// RedirectData is the payload the frontend follows after resolving a code.
type RedirectData struct {
	OriginalURL string `json:"originalUrl"`
	ShortURL    string `json:"shortUrl"`
	ID          uint   `json:"id"`
}

// RedirectResponse is the 200 body of GET /{shortCode}.
type RedirectResponse struct {
	Success bool         `json:"success"`
	Data    RedirectData `json:"data"`
}
