package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// messagePattern requires at least one letter and one word of 3+ characters,
// so whitespace or punctuation-only messages are rejected. The lookaheads
// need regexp2; the stdlib engine does not support them.
const messagePattern = `^(?=[\s\S]*\p{L})(?=[\s\S]*\w{3,})[\s\S]{10,}$`

var (
	messageExp        = regexp2.MustCompile(messagePattern, regexp2.None)
	errInvalidMessage = errors.New("le message doit contenir au moins 10 caractères significatifs")
)

type ContactRequest struct {
	Sujet   string `json:"sujet"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (req *ContactRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Sujet, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Message, validation.Required),
	)
	if err != nil {
		return err
	}

	ok, err := messageExp.MatchString(req.Message)
	if err != nil || !ok {
		return errInvalidMessage
	}

	return nil
}
