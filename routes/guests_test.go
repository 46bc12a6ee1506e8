package routes

import (
	"net/http"
	"strings"
	"testing"

	"weddingapi/models"
)

const annJSON = `{
	"firstName": "Ann",
	"lastName": "Lee",
	"email": "ann@x.com",
	"presence": "yes",
	"selectedMenuGuest": ["vegetarian"],
	"alcohols": ["wine"]
}`

// Fresh triple: exactly one guest record and one guest-id record appear,
// stamped with code, owner uid and timestamp.
func TestCreateGuest_Success(t *testing.T) {
	ts := setupServer(t)
	w := doReq(ts.s, http.MethodPost, "/guests", annJSON, authToken(t, 1))
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d; body=%s", w.Code, w.Body.String())
	}
	if len(ts.gr.Items) != 1 {
		t.Fatalf("want 1 guest record, got %d", len(ts.gr.Items))
	}
	if len(ts.gi.Codes) != 1 {
		t.Fatalf("want 1 guest-id record, got %d", len(ts.gi.Codes))
	}
	for _, g := range ts.gr.Items {
		if g.GuestID != ts.gi.Codes[0] {
			t.Fatalf("registry code %d != guest code %d", ts.gi.Codes[0], g.GuestID)
		}
		if g.UserUID != "uid-1" {
			t.Fatalf("owner uid not stamped: %q", g.UserUID)
		}
		if g.Timestamp == 0 {
			t.Fatalf("timestamp not stamped")
		}
	}
}

// Same triple twice: second submit is rejected with the exists error and
// writes nothing new.
func TestCreateGuest_DuplicateTriple(t *testing.T) {
	ts := setupServer(t)
	token := authToken(t, 1)

	if w := doReq(ts.s, http.MethodPost, "/guests", annJSON, token); w.Code != http.StatusCreated {
		t.Fatalf("first submit: want 201, got %d", w.Code)
	}
	w := doReq(ts.s, http.MethodPost, "/guests", annJSON, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("second submit: want 409, got %d; body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Guest already exists") {
		t.Fatalf("want exists error, got %s", w.Body.String())
	}
	if len(ts.gr.Items) != 1 || len(ts.gi.Codes) != 1 {
		t.Fatalf("duplicate wrote records: guests=%d ids=%d", len(ts.gr.Items), len(ts.gi.Codes))
	}
}

// A different email is a different guest; only the full triple matches.
func TestCreateGuest_SameNameDifferentEmail(t *testing.T) {
	ts := setupServer(t)
	token := authToken(t, 1)

	doReq(ts.s, http.MethodPost, "/guests", annJSON, token)
	other := strings.Replace(annJSON, "ann@x.com", "ann.lee@y.org", 1)
	if w := doReq(ts.s, http.MethodPost, "/guests", other, token); w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d; body=%s", w.Code, w.Body.String())
	}
	if len(ts.gr.Items) != 2 {
		t.Fatalf("want 2 guests, got %d", len(ts.gr.Items))
	}
}

// All field errors surface at once; invalid submit issues no store call.
func TestCreateGuest_ValidationErrors(t *testing.T) {
	ts := setupServer(t)
	w := doReq(ts.s, http.MethodPost, "/guests",
		`{"firstName": "A", "lastName": "", "email": "nope"}`, authToken(t, 1))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d; body=%s", w.Code, w.Body.String())
	}
	errs := errorsOf(t, w.Body.Bytes())
	for _, field := range []string{"firstName", "lastName", "email"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("missing error for %s: %v", field, errs)
		}
	}
	if len(ts.gr.Items) != 0 || len(ts.gi.Codes) != 0 {
		t.Fatalf("invalid submit wrote records")
	}
}

func TestDeleteGuest(t *testing.T) {
	ts := setupServer(t)
	ts.gr.Items["g1"] = models.Guest{ID: "g1", FirstName: "Ann"}

	w := doReq(ts.s, http.MethodDelete, "/guests/g1", "", authToken(t, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d; body=%s", w.Code, w.Body.String())
	}
	if len(ts.gr.Items) != 0 {
		t.Fatalf("guest still present after delete")
	}
}

func TestGuests_RequireAuth(t *testing.T) {
	ts := setupServer(t)
	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/guests"},
		{http.MethodPost, "/guests"},
		{http.MethodDelete, "/guests/g1"},
	} {
		if w := doReq(ts.s, r.method, r.path, "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: want 401, got %d", r.method, r.path, w.Code)
		}
	}
}
