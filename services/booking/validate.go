package booking

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"freshfold/models"
)

// LockerCount is the number of physical drop-off lockers at the site.
const LockerCount = 17

// MinBusinessDaysAhead is the earliest a collection can be scheduled.
const MinBusinessDaysAhead = 2

var (
	ukPostcodeRe = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9][A-Z0-9]?\s*[0-9][A-Z]{2}$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
)

// NormalizeMobile strips everything but digits from a phone number.
func NormalizeMobile(mobile string) string {
	return nonDigitRe.ReplaceAllString(mobile, "")
}

// ValidPostcode reports whether the postcode matches the UK format.
func ValidPostcode(postcode string) bool {
	return ukPostcodeRe.MatchString(strings.TrimSpace(postcode))
}

// ValidLocker reports whether id names a real locker (1..LockerCount).
func ValidLocker(id string) bool {
	n, err := strconv.Atoi(id)
	return err == nil && n >= 1 && n <= LockerCount
}

// MinCollectionDate returns the earliest allowed collection date counted from
// now: MinBusinessDaysAhead working days forward, Sundays skipped.
func MinCollectionDate(now time.Time) time.Time {
	d := now
	added := 0
	for added < MinBusinessDaysAhead {
		d = d.AddDate(0, 0, 1)
		if d.Weekday() != time.Sunday {
			added++
		}
	}
	return d
}

// ValidCollectionDate reports whether date (YYYY-MM-DD) is at least
// MinBusinessDaysAhead working days after now and not a Sunday.
func ValidCollectionDate(date string, now time.Time) bool {
	parsed, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	if parsed.Weekday() == time.Sunday {
		return false
	}
	min := MinCollectionDate(now)
	minDay := time.Date(min.Year(), min.Month(), min.Day(), 0, 0, 0, 0, now.Location())
	return !parsed.Before(minDay)
}

// MissingFields returns the required fields a session's current step still
// lacks. An empty result means Advance may proceed.
//
// The two flows intentionally disagree about address and postcode: the
// dropoff flow hard-blocks on address while the collection flow treats
// address and postcode as advisory only. AdvisoryProblems carries the
// non-blocking complaints.
func MissingFields(session *models.WizardSession, now time.Time) []string {
	form := &session.Form
	var missing []string

	switch stepKind(session.Flow, session.Step) {
	case stepCustomerType:
		if !session.TypeChosen {
			missing = append(missing, "customerType")
		}
	case stepContact, stepContactAndServices:
		if strings.TrimSpace(form.FirstName) == "" {
			missing = append(missing, "firstName")
		}
		if strings.TrimSpace(form.LastName) == "" {
			missing = append(missing, "lastName")
		}
		if strings.TrimSpace(form.Email) == "" {
			missing = append(missing, "email")
		}
		if NormalizeMobile(form.Mobile) == "" {
			missing = append(missing, "mobile")
		}
		if session.Flow == models.FlowDropoff && strings.TrimSpace(form.Address) == "" {
			missing = append(missing, "address")
		}
	case stepServices:
		// All flags may be false; the services step never blocks.
	case stepLockerAndDate:
		if len(form.Lockers) == 0 {
			missing = append(missing, "lockerNumber")
		}
		if !ValidCollectionDate(form.CollectionDate, now) {
			missing = append(missing, "collectionDate")
		}
	}
	return missing
}

// AdvisoryProblems reports non-blocking field complaints for the current form.
func AdvisoryProblems(session *models.WizardSession) []string {
	var problems []string
	form := &session.Form
	if form.Postcode != "" && !ValidPostcode(form.Postcode) {
		problems = append(problems, "postcode")
	}
	if session.Flow == models.FlowCollection && strings.TrimSpace(form.Address) == "" {
		problems = append(problems, "address")
	}
	return problems
}

// SubmissionProblems validates the whole form ahead of submission.
func SubmissionProblems(session *models.WizardSession, now time.Time) []string {
	form := &session.Form
	var problems []string

	if strings.TrimSpace(form.FirstName) == "" {
		problems = append(problems, "firstName")
	}
	if strings.TrimSpace(form.LastName) == "" {
		problems = append(problems, "lastName")
	}
	if strings.TrimSpace(form.Email) == "" {
		problems = append(problems, "email")
	}
	if NormalizeMobile(form.Mobile) == "" {
		problems = append(problems, "mobile")
	}
	if len(form.Lockers) == 0 {
		problems = append(problems, "lockerNumber")
	}
	for _, id := range form.Lockers {
		if !ValidLocker(id) {
			problems = append(problems, "lockerNumber")
			break
		}
	}
	if !ValidCollectionDate(form.CollectionDate, now) {
		problems = append(problems, "collectionDate")
	}
	// Postcode blocks only the dropoff flow; the collection flow lets an
	// invalid postcode through with a warning.
	if session.Flow == models.FlowDropoff {
		if strings.TrimSpace(form.Address) == "" {
			problems = append(problems, "address")
		}
		if !ValidPostcode(form.Postcode) {
			problems = append(problems, "postcode")
		}
	}
	return problems
}

type stepRole int

const (
	stepCustomerType stepRole = iota
	stepContact
	stepContactAndServices
	stepServices
	stepLockerAndDate
)

// stepKind maps a flow's step index onto its validation role. The collection
// flow folds contact details and services into one screen; dropoff splits
// them.
func stepKind(flow models.FlowKind, step int) stepRole {
	if flow == models.FlowDropoff {
		switch step {
		case 1:
			return stepCustomerType
		case 2:
			return stepContact
		case 3:
			return stepServices
		default:
			return stepLockerAndDate
		}
	}
	switch step {
	case 1:
		return stepCustomerType
	case 2:
		return stepContactAndServices
	default:
		return stepLockerAndDate
	}
}
