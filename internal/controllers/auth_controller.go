package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"velib_directory/internal/auth"
	"velib_directory/internal/middleware"
)

type AuthController struct {
	Verifier auth.CredentialVerifier
}

func NewAuthController(verifier auth.CredentialVerifier) *AuthController {
	return &AuthController{Verifier: verifier}
}

// Login checks the supplied credentials and issues a bearer token.
// Any failure, including a malformed body, reads as bad credentials: the
// endpoint never reveals which part of the pair was wrong.
func (ctl *AuthController) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Bad credentials"})
		return
	}

	if err := ctl.Verifier.Verify(body.Username, body.Password); err != nil {
		logrus.WithField("username", body.Username).Warn("login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Bad credentials"})
		return
	}

	token, err := middleware.GenerateToken(body.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
