package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing access token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("checkout session", func(t *testing.T) {
		session, err := g.CreateCheckoutSession(context.Background(), entities.CheckoutSessionRequest{
			WorkspaceID: "ws-1", PlanID: "pro", Amount: 49.9, Currency: "USD",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.ID == "" || session.URL == "" {
			t.Fatalf("expected session id and url, got %+v", session)
		}
	})

	t.Run("subscription lifecycle", func(t *testing.T) {
		sub, err := g.GetSubscription(context.Background(), "preapproval-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.Status != entities.SubscriptionStatusActive {
			t.Fatalf("expected active, got %v", sub.Status)
		}

		sub, err = g.CancelSubscription(context.Background(), "preapproval-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.Status != entities.SubscriptionStatusCancelled {
			t.Fatalf("expected cancelled, got %v", sub.Status)
		}

		sub, err = g.ReactivateSubscription(context.Background(), "preapproval-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub.Status != entities.SubscriptionStatusActive {
			t.Fatalf("expected active, got %v", sub.Status)
		}
	})

	t.Run("payment methods", func(t *testing.T) {
		methods, err := g.ListPaymentMethods(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(methods) == 0 {
			t.Fatalf("expected mock payment methods")
		}
	})
}

func TestMercadoPagoGateway_CustomerPortalURL(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")
	t.Setenv("BILLING_PORTAL_BASE_URL", "https://billing.test/portal/")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := g.CustomerPortalURL(context.Background(), "ws-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://billing.test/portal?external_reference=ws-1" {
		t.Fatalf("unexpected url %q", url)
	}
	if strings.Contains(url, "//portal") {
		t.Fatalf("expected trailing slash trimmed, got %q", url)
	}
}

func TestMapPreapprovalStatus(t *testing.T) {
	cases := map[string]entities.SubscriptionStatus{
		"authorized": entities.SubscriptionStatusActive,
		"ACTIVE":     entities.SubscriptionStatusActive,
		"cancelled":  entities.SubscriptionStatusCancelled,
		"canceled":   entities.SubscriptionStatusCancelled,
		"paused":     entities.SubscriptionStatusPastDue,
		"pending":    entities.SubscriptionStatusPastDue,
		"whatever":   entities.SubscriptionStatusPastDue,
	}
	for raw, want := range cases {
		if got := mapPreapprovalStatus(raw); got != want {
			t.Fatalf("mapPreapprovalStatus(%q) = %v, want %v", raw, got, want)
		}
	}
}
