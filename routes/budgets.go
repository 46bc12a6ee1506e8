package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GET /budgets
func (d *Deps) getBudgets(c *gin.Context) {
	budgets, err := d.Budgets.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("fetch budgets")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch budgets. Try again later."})
		return
	}
	c.JSON(http.StatusOK, budgets)
}
