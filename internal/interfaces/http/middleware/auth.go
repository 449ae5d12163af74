package middleware

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"intake/internal/shared/constants"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
	"intake/internal/shared/utils"
)

// Credentials is the single staff account accepted by BasicAuth. Password
// is either plain text or a bcrypt hash.
type Credentials struct {
	Username string
	Password string
}

type AuthMiddleware struct {
	username []byte
	password []byte
	hashed   bool
	logger   logger.Interface
}

func NewAuthMiddleware(creds Credentials, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		username: []byte(creds.Username),
		password: []byte(creds.Password),
		hashed:   isBcryptHash(creds.Password),
		logger:   logger,
	}
}

// RequireAuth checks HTTP Basic credentials and stores the username in the
// context. Failures answer 401 with a Basic challenge.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	challenge := fmt.Sprintf(`Basic realm="%s"`, constants.BasicAuthRealm)

	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header(constants.HeaderWWWAuthenticate, challenge)
			utils.AbortWithError(c, errors.NewUnauthorizedError("Authentication required"))
			return
		}

		if !m.verify(username, password) {
			m.logger.Warnw("basic auth rejected",
				"username", username,
				"client_ip", c.ClientIP(),
			)
			c.Header(constants.HeaderWWWAuthenticate, challenge)
			utils.AbortWithError(c, errors.NewUnauthorizedError("Invalid credentials"))
			return
		}

		c.Set(constants.ContextKeyUsername, username)
		c.Next()
	}
}

func (m *AuthMiddleware) verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), m.username) == 1

	var passOK bool
	if m.hashed {
		passOK = bcrypt.CompareHashAndPassword(m.password, []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), m.password) == 1
	}

	return userOK && passOK
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
