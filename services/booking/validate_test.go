package booking

import (
	"testing"
	"time"

	"freshfold/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	assert.Equal(t, "07700900123", NormalizeMobile("07700 900123"))
	assert.Equal(t, "447700900123", NormalizeMobile("+44 (7700) 900-123"))
	assert.Equal(t, "", NormalizeMobile("not a number"))
}

func TestValidPostcode(t *testing.T) {
	valid := []string{"SW1A 1AA", "sw1a1aa", "M1 1AE", "B33 8TH", "CR2 6XH", "  DN55 1PT  "}
	for _, pc := range valid {
		assert.True(t, ValidPostcode(pc), pc)
	}
	invalid := []string{"", "12345", "SW1A", "ABC 123", "SW1A 1AAA"}
	for _, pc := range invalid {
		assert.False(t, ValidPostcode(pc), pc)
	}
}

func TestValidLocker(t *testing.T) {
	assert.True(t, ValidLocker("1"))
	assert.True(t, ValidLocker("17"))
	assert.False(t, ValidLocker("0"))
	assert.False(t, ValidLocker("18"))
	assert.False(t, ValidLocker("abc"))
	assert.False(t, ValidLocker(""))
}

func TestMinCollectionDate(t *testing.T) {
	// Wednesday + 2 working days = Friday.
	wed := time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.January, 9, 10, 0, 0, 0, time.UTC), MinCollectionDate(wed))

	// Friday + 2 working days skips Sunday and lands on Monday.
	fri := time.Date(2026, time.January, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC), MinCollectionDate(fri))

	// Saturday counts as a working day; only Sunday is skipped.
	thu := time.Date(2026, time.January, 8, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.January, 10, 10, 0, 0, 0, time.UTC), MinCollectionDate(thu))
}

func TestValidCollectionDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"exactly at the minimum", "2026-01-09", true},
		{"beyond the minimum", "2026-01-13", true},
		{"too soon", "2026-01-08", false},
		{"today", "2026-01-07", false},
		{"in the past", "2025-12-01", false},
		{"sunday", "2026-01-11", false},
		{"malformed", "09/01/2026", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCollectionDate(tt.date, testNow))
		})
	}
}

func TestMissingFieldsCollectionFlow(t *testing.T) {
	session := &models.WizardSession{Flow: models.FlowCollection, Step: 1}
	assert.Equal(t, []string{"customerType"}, MissingFields(session, testNow))

	session.TypeChosen = true
	assert.Empty(t, MissingFields(session, testNow))

	// Step 2 combines contact details and services; only contact blocks.
	session.Step = 2
	assert.ElementsMatch(t, []string{"firstName", "lastName", "email", "mobile"},
		MissingFields(session, testNow))

	session.Form.FirstName = "Ada"
	session.Form.LastName = "Lovelace"
	session.Form.Email = "ada@example.com"
	session.Form.Mobile = "07700 900123"
	assert.Empty(t, MissingFields(session, testNow))

	// Address never blocks the collection flow.
	assert.NotContains(t, MissingFields(session, testNow), "address")

	session.Step = 3
	assert.ElementsMatch(t, []string{"lockerNumber", "collectionDate"},
		MissingFields(session, testNow))

	session.Form.Lockers = []string{"5"}
	session.Form.CollectionDate = "2026-01-09"
	assert.Empty(t, MissingFields(session, testNow))
}

func TestMissingFieldsDropoffFlow(t *testing.T) {
	session := &models.WizardSession{Flow: models.FlowDropoff, Step: 2, TypeChosen: true}

	// Dropoff additionally requires an address at the contact step.
	assert.Contains(t, MissingFields(session, testNow), "address")

	session.Form = models.BookingForm{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@example.com", Mobile: "07700900123",
		Address: "1 Analytical Way",
	}
	assert.Empty(t, MissingFields(session, testNow))

	// The services step never blocks, even with nothing selected.
	session.Step = 3
	assert.Empty(t, MissingFields(session, testNow))

	session.Step = 4
	assert.ElementsMatch(t, []string{"lockerNumber", "collectionDate"},
		MissingFields(session, testNow))
}

func TestAdvisoryProblems(t *testing.T) {
	session := &models.WizardSession{Flow: models.FlowCollection}
	session.Form.Address = "1 Analytical Way"
	assert.Empty(t, AdvisoryProblems(session))

	// An invalid postcode warns but never blocks the collection flow.
	session.Form.Postcode = "NOPE"
	assert.Equal(t, []string{"postcode"}, AdvisoryProblems(session))

	session.Form.Postcode = "SW1A 1AA"
	session.Form.Address = ""
	assert.Equal(t, []string{"address"}, AdvisoryProblems(session))
}

func TestSubmissionProblems(t *testing.T) {
	t.Run("complete collection form passes", func(t *testing.T) {
		session := &models.WizardSession{Flow: models.FlowCollection, Form: completeForm()}
		assert.Empty(t, SubmissionProblems(session, testNow))
	})

	t.Run("collection flow ignores bad postcode", func(t *testing.T) {
		form := completeForm()
		form.Postcode = "NOPE"
		session := &models.WizardSession{Flow: models.FlowCollection, Form: form}
		assert.Empty(t, SubmissionProblems(session, testNow))
	})

	t.Run("dropoff flow blocks on bad postcode and missing address", func(t *testing.T) {
		form := completeForm()
		form.Postcode = "NOPE"
		form.Address = ""
		session := &models.WizardSession{Flow: models.FlowDropoff, Form: form}
		assert.ElementsMatch(t, []string{"address", "postcode"}, SubmissionProblems(session, testNow))
	})

	t.Run("invalid locker id blocks", func(t *testing.T) {
		session := &models.WizardSession{Flow: models.FlowCollection, Form: completeForm("3", "99")}
		assert.Contains(t, SubmissionProblems(session, testNow), "lockerNumber")
	})

	t.Run("empty form reports everything", func(t *testing.T) {
		session := &models.WizardSession{Flow: models.FlowCollection}
		assert.ElementsMatch(t,
			[]string{"firstName", "lastName", "email", "mobile", "lockerNumber", "collectionDate"},
			SubmissionProblems(session, testNow))
	})
}
