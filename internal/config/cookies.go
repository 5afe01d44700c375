package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Cookies struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
	jwt      *JWT
}

type AccountClaims struct {
	AccountId int64  `json:"account_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

func NewAccountClaims(accountId int64, username string) *AccountClaims {
	return &AccountClaims{
		AccountId: accountId,
		Username:  username,
	}
}

func NewCookies(jwt *JWT) (*Cookies, error) {
	domain, err := lookup("COOKIES_DOMAIN")
	if err != nil {
		return nil, err
	}

	secureStr, err := lookup("COOKIES_SECURE")
	if err != nil {
		return nil, err
	}
	secure := secureStr != "0"

	sameSiteStr, err := lookup("COOKIES_SAMESITE")
	if err != nil {
		return nil, err
	}
	sameSite := http.SameSiteStrictMode
	switch strings.ToUpper(sameSiteStr) {
	case "DEFAULT":
		sameSite = http.SameSiteDefaultMode
	case "LAX":
		sameSite = http.SameSiteLaxMode
	case "STRICT":
		sameSite = http.SameSiteStrictMode
	case "NONE":
		sameSite = http.SameSiteNoneMode
	}

	cookies := &Cookies{
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		jwt:      jwt,
	}

	return cookies, nil
}

func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth",
		Path:     "/",
		Value:    "delete",
		MaxAge:   -1,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "sign",
		Path:     "/",
		Value:    "delete",
		MaxAge:   -1,
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// Refresh splits the JWT so that the unsigned half stays readable by
// the frontend while the signature travels in an HttpOnly cookie.
func (c *Cookies) Refresh(w http.ResponseWriter, token string) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fmt.Errorf("malformed JWT token generated")
	}
	header, payload, signature := parts[0], parts[1], parts[2]
	http.SetCookie(w, &http.Cookie{
		Name:     "auth",
		Path:     "/",
		Value:    header + "." + payload,
		Expires:  time.Now().Add(c.jwt.tokenLifetime),
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "sign",
		Path:     "/",
		Value:    signature,
		Expires:  time.Now().Add(c.jwt.tokenLifetime),
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
	return nil
}

func (c *Cookies) ParseAccountClaims(r *http.Request) (*AccountClaims, error) {
	authCookie, err := r.Cookie("auth")
	if err != nil {
		return nil, err
	}
	signCookie, err := r.Cookie("sign")
	if err != nil {
		return nil, err
	}
	token, err := c.jwt.ParseWithClaims(
		authCookie.Value+"."+signCookie.Value, &AccountClaims{},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AccountClaims)
	if !ok {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}
