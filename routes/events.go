package routes

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"weddingapi/models"
	"weddingapi/utils"
)

// validateEvent runs every field check and returns the full error map,
// keyed by form field name. An empty map means the draft can be submitted.
func validateEvent(e *models.Event) map[string]string {
	errs := map[string]string{}

	if !utils.ValidMinChars(e.FirstPerson, 2) {
		errs["firstPerson"] = "Use at least 2 characters"
	}
	if !utils.ValidMinChars(e.SecondPerson, 2) {
		errs["secondPerson"] = "Use at least 2 characters"
	}
	if !utils.ValidMinChars(e.EventDate, 4) {
		errs["eventDate"] = "Choose event date"
	}
	if !utils.ValidTime(e.EventTime) {
		errs["eventTime"] = "Enter event time in HH:MM format"
	}
	if !utils.ValidMinChars(e.CeremonyPlace, 2) {
		errs["ceremonyPlace"] = "Enter ceremony place, use at least 2 characters"
	}
	if !utils.ValidMinChars(e.CeremonyStreetAddress, 2) {
		errs["ceremonyStreetAddress"] = "Enter ceremony street address, use at least 2 characters"
	}
	if !utils.ValidMinChars(e.CeremonyCityAddress, 2) {
		errs["ceremonyCityAddress"] = "Enter ceremony city address, use at least 2 characters"
	}
	if !utils.ValidMinChars(e.ReceptionPlace, 2) {
		errs["receptionPlace"] = "Enter reception place, use at least 2 characters"
	}
	if !utils.ValidMinChars(e.ReceptionStreetAddress, 2) {
		errs["receptionStreetAddress"] = "Enter reception street address, use at least 2 characters"
	}
	if !utils.ValidMinChars(e.ReceptionCityAddress, 2) {
		errs["receptionCityAddress"] = "Enter reception city address, use at least 2 characters"
	}
	if !utils.ValidPhone(e.FirstPersonPhone) {
		errs["firstPersonPhone"] = "Enter first person's number. Use at least 6 numbers"
	}
	if !utils.ValidPhone(e.SecondPersonPhone) {
		errs["secondPersonPhone"] = "Enter second person's number. Use at least 6 numbers"
	}
	// color is optional, no check

	return errs
}

// GET /events
func (d *Deps) getEvents(c *gin.Context) {
	events, err := d.Events.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("fetch events")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not fetch events. Try again later."})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /events/:id
func (d *Deps) getEvent(c *gin.Context) {
	event, err := d.Events.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Could not fetch event."})
		return
	}
	c.JSON(http.StatusOK, event)
}

// POST /events
//
// The submit workflow of the event form: validate every field, publish the
// aggregated error map if anything failed, otherwise pull the next event
// code and write the code registry record plus the event itself.
func (d *Deps) createEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not parse request data."})
		return
	}

	if errs := validateEvent(&event); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	event.ID = uuid.NewString()
	event.EventID = d.EventCodes.Next()
	event.UserID = c.GetInt64("userId")

	if err := d.EventIDs.Add(event.EventID); err != nil {
		log.Error().Err(err).Int64("eventID", event.EventID).Msg("write event-id record")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create event. Try again later."})
		return
	}
	if err := d.Events.Create(&event); err != nil {
		log.Error().Err(err).Int64("eventID", event.EventID).Msg("write event record")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create event. Try again later."})
		return
	}

	d.Inv.Purge(c, "events")

	c.JSON(http.StatusCreated, gin.H{"message": "event created!", "event": event})
}

// DELETE /events/:id
func (d *Deps) deleteEvent(c *gin.Context) {
	id := c.Param("id")
	userId := c.GetInt64("userId")

	ev, err := d.Events.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Could not fetch the event."})
		return
	}
	if ev.UserID != userId {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized to delete event."})
		return
	}

	if err := d.Events.Delete(id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("delete event")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete the event."})
		return
	}

	d.Inv.Purge(c, "events")
	log.Info().Str("id", id).Msg("event deleted")

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully!"})
}

// GET /events/live
//
// SSE stream of full collection snapshots: one on subscribe, one after
// every remote change. Client disconnect cancels the request context and
// tears the underlying change stream down.
func (d *Deps) liveEvents(c *gin.Context) {
	snapshots, err := d.Events.Watch(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("watch events")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not watch events."})
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
