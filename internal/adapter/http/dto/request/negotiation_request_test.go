package request

import "testing"

func TestApplyNegotiationRequest_Resolvers(t *testing.T) {
	r := ApplyNegotiationRequest{
		ActorRole:      " dealer ",
		Action:         " Request_Order ",
		ExpectedStatus: " accepted ",
	}
	if got := r.ResolveActorRole(); got != "DEALER" {
		t.Fatalf("expected DEALER, got %q", got)
	}
	if got := r.ResolveAction(); got != "request_order" {
		t.Fatalf("expected request_order, got %q", got)
	}
	if got := r.ResolveExpectedStatus(); got != "ACCEPTED" {
		t.Fatalf("expected ACCEPTED, got %q", got)
	}

	empty := ApplyNegotiationRequest{}
	if got := empty.ResolveExpectedStatus(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestAppendMessageRequest_Resolvers(t *testing.T) {
	r := AppendMessageRequest{SenderRole: "manufacturer", MessageType: " offer "}
	if got := r.ResolveSenderRole(); got != "MANUFACTURER" {
		t.Fatalf("expected MANUFACTURER, got %q", got)
	}
	if got := r.ResolveMessageType(); got != "OFFER" {
		t.Fatalf("expected OFFER, got %q", got)
	}

	r2 := AppendMessageRequest{}
	if got := r2.ResolveMessageType(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
