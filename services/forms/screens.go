package forms

import (
	"strconv"

	"homemate/models"
	"homemate/services/validation"
)

// Screen identifiers. Each screen carries its own validity rules; in
// particular the sign-in and registration password policies differ and must
// stay separate.
const (
	ScreenLogin       = "login"
	ScreenRegister    = "register"
	ScreenForgot      = "forgot"
	ScreenAddService  = "addService"
	ScreenEditService = "editService"
	ScreenReview      = "review"
)

// screenSpec ties a screen's user-editable fields to its derivation rules.
// derive recomputes per-field tri-state flags and the aggregate validity;
// collectErrors produces the inline messages shown after a blocked submit.
type screenSpec struct {
	fields        []string
	derive        func(snap *models.FormSnapshot)
	collectErrors func(snap *models.FormSnapshot) map[string]string
}

var screens map[string]screenSpec

// Populated in init rather than in the var declaration: the service-form
// helpers read screens back, which would otherwise be an initialization cycle.
func init() {
	screens = map[string]screenSpec{
		ScreenLogin: {
			fields:        []string{"email", "password"},
			derive:        deriveLogin,
			collectErrors: collectLoginErrors,
		},
		ScreenRegister: {
			fields:        []string{"firstName", "lastName", "email", "photoURL", "password", "confirmPassword"},
			derive:        deriveRegister,
			collectErrors: collectRegisterErrors,
		},
		ScreenForgot: {
			fields:        []string{"email"},
			derive:        deriveForgot,
			collectErrors: collectForgotErrors,
		},
		ScreenAddService: {
			fields:        []string{"serviceName", "category", "price", "description", "image", "providerName", "email"},
			derive:        deriveServiceForm,
			collectErrors: collectServiceFormErrors,
		},
		ScreenEditService: {
			fields:        []string{"serviceName", "category", "price", "description", "image"},
			derive:        deriveServiceForm,
			collectErrors: collectServiceFormErrors,
		},
		ScreenReview: {
			fields:        []string{"rating", "comment"},
			derive:        deriveReview,
			collectErrors: collectReviewErrors,
		},
	}
}

// triState maps a field's content and validity onto the indicator shown next
// to it: an empty field shows nothing at all.
func triState(value string, ok bool) models.FieldState {
	if value == "" {
		return models.FieldUntouched
	}
	if ok {
		return models.FieldValid
	}
	return models.FieldInvalid
}

func deriveLogin(snap *models.FormSnapshot) {
	email := snap.Values["email"]
	password := snap.Values["password"]

	emailOK := validation.IsValidEmail(email)
	passwordOK := validation.SignInPasswordOK(password)

	snap.Fields["email"] = triState(email, emailOK)
	snap.Fields["password"] = triState(password, passwordOK)
	snap.IsValid = emailOK && passwordOK
}

func collectLoginErrors(snap *models.FormSnapshot) map[string]string {
	errs := make(map[string]string)
	if !validation.IsValidEmail(snap.Values["email"]) {
		errs["email"] = "Please enter a valid email"
	}
	if !validation.SignInPasswordOK(snap.Values["password"]) {
		errs["password"] = "Password must be at least 6 characters"
	}
	return errs
}

func deriveRegister(snap *models.FormSnapshot) {
	firstName := snap.Values["firstName"]
	lastName := snap.Values["lastName"]
	email := snap.Values["email"]
	photoURL := snap.Values["photoURL"]
	password := snap.Values["password"]
	confirm := snap.Values["confirmPassword"]

	strength := validation.CheckPasswordStrength(password)
	firstOK := validation.MinLength(firstName, 2)
	lastOK := validation.MinLength(lastName, 2)
	emailOK := validation.IsValidEmail(email)
	photoOK := validation.IsNonEmpty(photoURL)
	matchOK := validation.PasswordsMatch(password, confirm)

	snap.Fields["firstName"] = triState(firstName, firstOK)
	snap.Fields["lastName"] = triState(lastName, lastOK)
	snap.Fields["email"] = triState(email, emailOK)
	snap.Fields["photoURL"] = triState(photoURL, photoOK)
	snap.Fields["password"] = triState(password, strength.Satisfied())
	snap.Fields["confirmPassword"] = triState(confirm, matchOK)

	// The strength breakdown renders only once the user has typed a password.
	if password != "" {
		s := strength
		snap.Strength = &s
	} else {
		snap.Strength = nil
	}

	snap.IsValid = firstOK && lastOK && emailOK && photoOK &&
		strength.Satisfied() && matchOK
}

func collectRegisterErrors(snap *models.FormSnapshot) map[string]string {
	errs := make(map[string]string)
	if !validation.MinLength(snap.Values["firstName"], 2) {
		errs["firstName"] = "First name must be at least 2 characters"
	}
	if !validation.MinLength(snap.Values["lastName"], 2) {
		errs["lastName"] = "Last name must be at least 2 characters"
	}
	if !validation.IsValidEmail(snap.Values["email"]) {
		errs["email"] = "Please enter a valid email"
	}
	if !validation.IsNonEmpty(snap.Values["photoURL"]) {
		errs["photoURL"] = "Please add a photo URL"
	}
	if !validation.RegistrationPasswordOK(snap.Values["password"]) {
		errs["password"] = "Password must be 8+ characters with uppercase, lowercase and a number"
	}
	if !validation.PasswordsMatch(snap.Values["password"], snap.Values["confirmPassword"]) {
		errs["confirmPassword"] = "Passwords do not match"
	}
	return errs
}

func deriveForgot(snap *models.FormSnapshot) {
	email := snap.Values["email"]
	ok := validation.IsValidEmail(email)
	snap.Fields["email"] = triState(email, ok)
	snap.IsValid = ok
}

func collectForgotErrors(snap *models.FormSnapshot) map[string]string {
	errs := make(map[string]string)
	if !validation.IsValidEmail(snap.Values["email"]) {
		errs["email"] = "Please enter a valid email"
	}
	return errs
}

// deriveServiceForm covers both the add and the edit screens: the edit form
// simply carries fewer fields in its spec.
func deriveServiceForm(snap *models.FormSnapshot) {
	valid := true
	for _, name := range screens[snap.Screen].fields {
		value := snap.Values[name]
		ok := serviceFieldOK(name, value)
		snap.Fields[name] = triState(value, ok)
		valid = valid && ok
	}
	snap.IsValid = valid
}

func serviceFieldOK(name, value string) bool {
	switch name {
	case "serviceName", "providerName":
		return validation.IsNonEmpty(value)
	case "category":
		return models.IsServiceCategory(value)
	case "price":
		price, err := strconv.ParseFloat(value, 64)
		return err == nil && validation.IsPositivePrice(price)
	case "description":
		return validation.IsNonEmpty(value) && validation.MinLength(value, 10)
	case "image":
		return validation.IsNonEmpty(value)
	case "email":
		return validation.IsValidEmail(value)
	}
	return true
}

func collectServiceFormErrors(snap *models.FormSnapshot) map[string]string {
	messages := map[string]string{
		"serviceName":  "Service name is required",
		"category":     "Please select a category",
		"price":        "Please enter a valid price",
		"description":  "Description must be at least 10 characters",
		"image":        "Image URL is required",
		"providerName": "Provider name is required",
		"email":        "Please enter a valid email address",
	}
	errs := make(map[string]string)
	for _, name := range screens[snap.Screen].fields {
		if !serviceFieldOK(name, snap.Values[name]) {
			errs[name] = messages[name]
		}
	}
	return errs
}

func deriveReview(snap *models.FormSnapshot) {
	rating, err := strconv.Atoi(snap.Values["rating"])
	ratingOK := err == nil && rating >= 1 && rating <= 5
	comment := snap.Values["comment"]
	commentOK := validation.WithinLength(comment, 10, 100)

	snap.Fields["rating"] = triState(snap.Values["rating"], ratingOK)
	snap.Fields["comment"] = triState(comment, commentOK)
	snap.IsValid = ratingOK && commentOK
}

func collectReviewErrors(snap *models.FormSnapshot) map[string]string {
	errs := make(map[string]string)
	rating, err := strconv.Atoi(snap.Values["rating"])
	if err != nil || rating < 1 || rating > 5 {
		errs["rating"] = "Rating must be between 1 and 5"
	}
	if !validation.WithinLength(snap.Values["comment"], 10, 100) {
		errs["comment"] = "Review must be 10-100 characters"
	}
	return errs
}
