package routes

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"weddingapi/models"
	"weddingapi/utils"
)

func validateGuest(g *models.Guest) map[string]string {
	errs := map[string]string{}

	if !utils.ValidMinChars(g.FirstName, 2) {
		errs["firstName"] = "First name is required, min 2 characters"
	}
	if !utils.ValidMinChars(g.LastName, 2) {
		errs["lastName"] = "Last name is required, min 2 characters"
	}
	if !utils.ValidEmail(g.Email) {
		errs["email"] = "Email is required"
	}

	return errs
}

// GET /guests
func (d *Deps) getGuests(c *gin.Context) {
	guests, err := d.Guests.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("fetch guests")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch guests. Try again later."})
		return
	}
	c.JSON(http.StatusOK, guests)
}

// POST /guests
//
// Same submit workflow as events plus the duplicate check: an equality
// query on (firstName, lastName, email) runs before the writes. The check
// and the insert are not atomic; two racing submissions of the same triple
// can both pass. That matches the store's guarantees and is accepted.
func (d *Deps) createGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	if errs := validateGuest(&guest); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	n, err := d.Guests.CountMatching(guest.FirstName, guest.LastName, guest.Email)
	if err != nil {
		log.Error().Err(err).Msg("guest duplicate check")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not add guest. Try again later."})
		return
	}
	if n > 0 {
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{"exists": "Guest already exists"}})
		return
	}

	guest.ID = uuid.NewString()
	guest.GuestID = d.GuestCodes.Next()
	guest.UserUID = c.GetString("userUID")
	guest.Timestamp = time.Now().UnixMilli()

	if err := d.GuestIDs.Add(guest.GuestID); err != nil {
		log.Error().Err(err).Int64("guestID", guest.GuestID).Msg("write guest-id record")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not add guest. Try again later."})
		return
	}
	if err := d.Guests.Create(&guest); err != nil {
		log.Error().Err(err).Int64("guestID", guest.GuestID).Msg("write guest record")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not add guest. Try again later."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "guest added!", "guest": guest})
}

// DELETE /guests/:id
func (d *Deps) deleteGuest(c *gin.Context) {
	id := c.Param("id")

	if err := d.Guests.Delete(id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("delete guest")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete the guest."})
		return
	}

	log.Info().Str("id", id).Msg("guest deleted")

	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully!"})
}

// GET /guests/live
func (d *Deps) liveGuests(c *gin.Context) {
	snapshots, err := d.Guests.Watch(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("watch guests")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not watch guests."})
		return
	}

	c.Stream(func(w io.Writer) bool {
		snap, ok := <-snapshots
		if !ok {
			return false
		}
		c.SSEvent("snapshot", snap)
		return true
	})
}
