package domain

import (
	"encoding/json"
	"fmt"
)

// Event is the closed union of domain notifications exchanged over the
// broker. The wire form is an externally tagged JSON envelope:
//
//	{"ProductCreatedEvent":{"product_id":"..."}}
//
// New notifications must be added as union members so the consumer's type
// switch stays exhaustive; untyped payloads are not allowed.
type Event interface {
	Tag() string
}

type ProductCreated struct {
	ProductID string `json:"product_id"`
}

func (ProductCreated) Tag() string { return "ProductCreatedEvent" }

// EncodeEvent renders the tagged envelope for publishing.
func EncodeEvent(event Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, NewError(KindDecodeFailure, "encode "+event.Tag(), err)
	}
	return json.Marshal(map[string]json.RawMessage{event.Tag(): payload})
}

// DecodeEvent parses a tagged envelope back into a union member. Malformed
// payloads come back as a KindDecodeFailure error; a valid envelope with an
// unrecognized tag wraps ErrUnknownEvent.
func DecodeEvent(data []byte) (Event, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, NewError(KindDecodeFailure, "decode event envelope", err)
	}
	if len(envelope) != 1 {
		return nil, NewError(KindDecodeFailure, fmt.Sprintf("event envelope has %d tags, want 1", len(envelope)), nil)
	}

	for tag, payload := range envelope {
		switch tag {
		case ProductCreated{}.Tag():
			var event ProductCreated
			if err := json.Unmarshal(payload, &event); err != nil {
				return nil, NewError(KindDecodeFailure, "decode "+tag, err)
			}
			return event, nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, tag)
		}
	}
	return nil, NewError(KindDecodeFailure, "empty event envelope", nil)
}
