package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/pawsitting/booking-system/internal/core/ports"
)

// eventEnvelope mirrors the provider's event JSON closely enough for the
// reconciler: checkout sessions carry amount_total, payment intents amount.
type eventEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID          string            `json:"id"`
			Metadata    map[string]string `json:"metadata"`
			AmountTotal int64             `json:"amount_total"`
			Amount      int64             `json:"amount"`
		} `json:"object"`
	} `json:"data"`
}

// ParseEvent decodes a verified webhook payload into the neutral event form.
func ParseEvent(payload []byte) (ports.WebhookEvent, error) {
	var env eventEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return ports.WebhookEvent{}, fmt.Errorf("stripe: decode event: %w", err)
	}
	if env.ID == "" || env.Type == "" {
		return ports.WebhookEvent{}, fmt.Errorf("stripe: event missing id or type")
	}

	amount := env.Data.Object.AmountTotal
	if amount == 0 {
		amount = env.Data.Object.Amount
	}

	return ports.WebhookEvent{
		ID:        env.ID,
		Type:      env.Type,
		ObjectID:  env.Data.Object.ID,
		Metadata:  env.Data.Object.Metadata,
		AmountDue: amount,
	}, nil
}
