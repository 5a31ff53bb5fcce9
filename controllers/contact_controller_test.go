package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driverp-api/models"
)

func contactPayload() map[string]string {
	return map[string]string{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"phone":   "+91 98765 43210",
		"reason":  "Buy a Bike",
		"find_us": "google",
		"message": "Interested in the Classic 350.",
	}
}

func TestSubmitContact(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	r := newTestRouter(db, mailer)

	w := doRequest(t, r, "POST", "/api/contact-form/", contactPayload())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	var contact models.Contact
	require.NoError(t, db.First(&contact, "email = ?", "ravi@example.com").Error)
	assert.Equal(t, "Buy a Bike", contact.Reason)

	require.Len(t, mailer.sentKinds(), 1)
	assert.Equal(t, "contact:ravi@example.com", mailer.sentKinds()[0])
}

// A failed confirmation mail is surfaced to the caller, but the inquiry row
// stays committed.
func TestSubmitContactEmailFailureKeepsRecord(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{fail: true}
	r := newTestRouter(db, mailer)

	w := doRequest(t, r, "POST", "/api/contact-form/", contactPayload())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitContactValidation(t *testing.T) {
	db := newTestDB(t)
	r := newTestRouter(db, &fakeMailer{})

	missing := contactPayload()
	delete(missing, "message")
	w := doRequest(t, r, "POST", "/api/contact-form/", missing)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	badEmail := contactPayload()
	badEmail["email"] = "not-an-email"
	w = doRequest(t, r, "POST", "/api/contact-form/", badEmail)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	badReason := contactPayload()
	badReason["reason"] = "Buy a Car"
	w = doRequest(t, r, "POST", "/api/contact-form/", badReason)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	badFindUs := contactPayload()
	badFindUs["find_us"] = "carrier pigeon"
	w = doRequest(t, r, "POST", "/api/contact-form/", badFindUs)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetContactsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	r := newTestRouter(db, mailer)

	first := contactPayload()
	w := doRequest(t, r, "POST", "/api/contact-form/", first)
	require.Equal(t, http.StatusOK, w.Code)

	second := contactPayload()
	second["email"] = "priya@example.com"
	w = doRequest(t, r, "POST", "/api/contact-form/", second)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, "GET", "/api/contacts/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var contacts []models.Contact
	decodeBody(t, w, &contacts)
	require.Len(t, contacts, 2)
}
