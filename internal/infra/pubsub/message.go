package pubsub

import (
	"encoding/json"
	"strconv"

	"tradefood/internal/domain/service"
	"tradefood/internal/errors"
)

// encodedEvent is a checkout event ready to publish. Events of one browser
// session share an ordering key so subscribers see a checkout in order.
type encodedEvent struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeEvent(event *service.CheckoutEvent) (*encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "marshal checkout event")
	}

	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
	}
	if event.OrderID != 0 {
		attributes["order_id"] = strconv.FormatInt(event.OrderID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &encodedEvent{
		data:        data,
		attributes:  attributes,
		orderingKey: event.SessionID,
	}, nil
}
