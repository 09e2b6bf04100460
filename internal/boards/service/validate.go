package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength counts runes, not bytes.
const MinPasswordLength = 6

const (
	msgNameRequired      = "Name is required"
	msgInvalidEmail      = "Please enter a valid email"
	msgPasswordTooShort  = "Password must be at least 6 characters"
	msgPasswordRequired  = "Password is required"
	msgBoardNameRequired = "Board name is required"
	msgInitialTodo       = "Initial todo is required"
	msgBoardIDRequired   = "Board ID is required"
	msgTodoTitleRequired = "Todo title is required"
)

// validator collects field errors in the order the checks run.
type validator struct {
	fields []FieldError
}

func (v *validator) check(ok bool, path, msg string) {
	if !ok {
		v.fields = append(v.fields, FieldError{Path: path, Msg: msg})
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

// validEmail accepts a bare addr-spec only: no display name, no angle
// brackets, no surrounding whitespace.
func validEmail(email string) bool {
	if email == "" || strings.TrimSpace(email) != email {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	_, domain, ok := strings.Cut(email, "@")
	return ok && strings.Contains(domain, ".")
}

func validPassword(pw string) bool {
	return utf8.RuneCountInString(pw) >= MinPasswordLength
}
