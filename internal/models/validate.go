package models

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	MinPasswordLength = 7
	MinContentLength  = 3
)

var emailRegex = regexp.MustCompile(`^([\w\-.]+@([\w-]+\.)+[\w-]{2,4})?$`)

// ValidateEmail returns every failure message for an email value.
func ValidateEmail(email string) []string {
	var messages []string

	if email == "" {
		messages = append(messages, "Email is required!")
	} else if !emailRegex.MatchString(email) {
		messages = append(messages, fmt.Sprintf("%q is not a valid email!", email))
	}

	return messages
}

// ValidatePassword checks the plaintext password, before any hashing.
func ValidatePassword(password string) []string {
	var messages []string

	if password == "" {
		messages = append(messages, "Password is required.")
	} else if utf8.RuneCountInString(password) < MinPasswordLength {
		messages = append(messages, "Password must include atleast 7 characters")
	}

	return messages
}

// ValidateContent covers both secret and comment text, which share one rule.
func ValidateContent(content string) []string {
	var messages []string

	if content == "" {
		messages = append(messages, "Comment text is required!")
	} else if utf8.RuneCountInString(content) < MinContentLength {
		messages = append(messages, "Comment must include atleast 3 characters!")
	}

	return messages
}
