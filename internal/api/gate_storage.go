package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// gateCookieMaxAge keeps the free-read flag for roughly a year
const gateCookieMaxAge = 365 * 24 * 60 * 60

// cookieStorage adapts a request's cookies to gate.Storage. It is the HTTP
// counterpart of browser local storage: the flag lives with the visitor,
// and clearing cookies resets it. Values written during a request are
// visible to later reads in the same request.
type cookieStorage struct {
	c       *gin.Context
	written map[string]*string // key -> value, nil means removed
}

func newCookieStorage(c *gin.Context) *cookieStorage {
	return &cookieStorage{c: c, written: make(map[string]*string)}
}

func (s *cookieStorage) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	v, err := s.c.Cookie(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *cookieStorage) Set(key, value string) {
	s.written[key] = &value
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, value, gateCookieMaxAge, "/", "", false, true)
}

func (s *cookieStorage) Remove(key string) {
	s.written[key] = nil
	s.c.SetCookie(key, "", -1, "/", "", false, true)
}
