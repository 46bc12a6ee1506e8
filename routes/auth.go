package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"weddingapi/models"
	"weddingapi/utils"
)

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func validateSignup(req *signupRequest) map[string]string {
	errs := map[string]string{}

	if req.FirstName == "" {
		errs["firstName"] = "Name is required"
	}
	if req.LastName == "" {
		errs["lastName"] = "Surname is required"
	}
	if req.Email == "" {
		errs["email"] = "Email is required"
	} else if !utils.ValidEmail(req.Email) {
		errs["email"] = "Invalid email format"
	}
	if req.Password == "" {
		errs["password"] = "Password is required"
	}

	return errs
}

// POST /signup
func (d *Deps) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	if errs := validateSignup(&req); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	u := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	if err := d.Users.Create(&u); err != nil {
		// UNIQUE(email) violations land here too
		log.Error().Err(err).Msg("create user")
		c.JSON(http.StatusConflict, gin.H{"message": "Could not save user."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully!", "uid": u.UID})
}

// POST /login
func (d *Deps) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	user, err := d.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Could not authenticate user."})
		return
	}

	token, err := utils.GenerateToken(user.Email, user.ID, user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not authenticate user."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "token": token})
}
