package event

import (
	"encoding/json"
	"fmt"
)

// Validate only checks that bs is JSON. The shape is checked later by
// Factory so that a well-formed but unexpected body can still be relayed.
func Validate(bs []byte) error {
	if len(bs) == 0 {
		return ErrEmptyBody
	}

	if !json.Valid(bs) {
		return ErrMalformedBody
	}

	return nil
}

func Factory(bs []byte) (*Envelope, error) {
	var e *Envelope

	if err := json.Unmarshal(bs, &e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFormat, err)
	}

	if e == nil {
		return nil, ErrMalformedFormat
	}

	return e, nil
}

func PayloadFactory(raw json.RawMessage) (*Payload, error) {
	p := &Payload{}

	if len(raw) == 0 || string(raw) == "null" {
		return p, nil
	}

	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFormat, err)
	}

	return p, nil
}
