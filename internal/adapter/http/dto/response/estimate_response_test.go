package response

import (
	"encoding/json"
	"testing"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	e := entities.Estimate{
		ID:     "est-1",
		Number: "EST-ABCD1234",
		Status: entities.EstimateStatusConverted,
		Items: []entities.EstimateItem{
			{Description: "Demo", Quantity: 2, SellPrice: 15},
		},
		SubtotalCost: 20,
		SubtotalSell: 30,
		Total:        29.16,
	}

	resp := FromEstimate(e)

	if resp.Badge.Label != "Converted" || resp.Badge.Tone != "purple" {
		t.Fatalf("unexpected badge %+v", resp.Badge)
	}
	if resp.CanSend || resp.CanConvert {
		t.Fatalf("converted estimate must not expose actions, got %+v", resp)
	}
	if resp.TotalMargin != 10 {
		t.Fatalf("expected margin 10, got %v", resp.TotalMargin)
	}
	if len(resp.Items) != 1 || resp.Items[0].LineTotal != 30 {
		t.Fatalf("unexpected items %+v", resp.Items)
	}
}

func TestFromEstimate_OmitsEmptyLinks(t *testing.T) {
	resp := FromEstimate(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusDraft})

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]any
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"client_id", "project_id", "invoice_id"} {
		if _, ok := keys[key]; ok {
			t.Fatalf("expected %q omitted when empty", key)
		}
	}
}

func TestFromEstimates_EmptyIsNotNull(t *testing.T) {
	raw, err := json.Marshal(FromEstimates(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("expected empty array, got %s", raw)
	}
}
