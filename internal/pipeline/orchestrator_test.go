package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"manna/internal/catalog"
	"manna/internal/exclusion"
	"manna/internal/logging"
	"manna/internal/repair"
)

type stubClient struct {
	responses []string
	err       error
	calls     int
}

func (s *stubClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	idx := s.calls - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return s.responses[idx], nil
}

func validResponse(t *testing.T, verse string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"versiculo":    verse,
		"reflexion":    "Una reflexión.",
		"para_meditar": []map[string]string{{"cita": "Romanos 5:8", "texto": "texto"}},
		"oracion":      "Oración, en el nombre de Jesús, amén.",
		"tags":         []string{"Fe", "Esperanza"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func testUnit() Unit {
	return Unit{
		Date:     "2025-03-09",
		Language: "es",
		Version:  "RVR1960",
		Citation: catalog.Citation{Book: "Juan", Reference: "3:16"},
		Excluded: exclusion.NewSet(),
	}
}

func TestGenerateSuccess(t *testing.T) {
	client := &stubClient{responses: []string{validResponse(t, `Juan 3:16 RVR1960: "Texto"`)}}
	orch := NewOrchestrator(client, logging.NewNop())

	record, err := orch.Generate(context.Background(), testUnit())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if record.ID != "juan316RVR1960" {
		t.Fatalf("unexpected id %q", record.ID)
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 call, got %d", client.calls)
	}
}

func TestGenerateRetryBound(t *testing.T) {
	client := &stubClient{responses: []string{"not json at all"}}
	var delays []time.Duration
	orch := NewOrchestrator(client, logging.NewNop(),
		WithBackoff(time.Millisecond, 4*time.Millisecond),
		WithSleeper(func(d time.Duration) { delays = append(delays, d) }))

	_, err := orch.Generate(context.Background(), testUnit())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if client.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", client.calls)
	}
	if len(delays) != 2 {
		t.Fatalf("expected 2 backoff sleeps, got %v", delays)
	}
	if delays[1] <= delays[0] {
		t.Fatalf("backoff must strictly increase: %v", delays)
	}
	if !repair.IsRetryable(errors.Unwrap(err)) && !repair.IsRetryable(err) {
		t.Fatalf("final error should wrap the retryable cause: %v", err)
	}
}

func TestGenerateRecoversAfterRetry(t *testing.T) {
	client := &stubClient{responses: []string{
		"garbage",
		validResponse(t, `Juan 3:16 RVR1960: "Texto"`),
	}}
	orch := NewOrchestrator(client, logging.NewNop(),
		WithBackoff(time.Millisecond, 4*time.Millisecond),
		WithSleeper(func(time.Duration) {}))

	record, err := orch.Generate(context.Background(), testUnit())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if record == nil || client.calls != 2 {
		t.Fatalf("expected recovery on attempt 2, calls=%d", client.calls)
	}
}

func TestGenerateFatalErrorStopsImmediately(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("api key revoked")}
	orch := NewOrchestrator(client, logging.NewNop(),
		WithSleeper(func(time.Duration) {}))

	_, err := orch.Generate(context.Background(), testUnit())
	if err == nil {
		t.Fatal("expected error")
	}
	if client.calls != 1 {
		t.Fatalf("fatal error must not be retried, calls=%d", client.calls)
	}
}

func TestGenerateMismatchedCitationRetries(t *testing.T) {
	client := &stubClient{responses: []string{validResponse(t, `Romanos 8:28 RVR1960: "Texto"`)}}
	orch := NewOrchestrator(client, logging.NewNop(),
		WithAttempts(2),
		WithBackoff(time.Millisecond, 4*time.Millisecond),
		WithSleeper(func(time.Duration) {}))

	_, err := orch.Generate(context.Background(), testUnit())
	if err == nil {
		t.Fatal("expected mismatch failure")
	}
	if client.calls != 2 {
		t.Fatalf("mismatch should be retried, calls=%d", client.calls)
	}
}

func TestGenerateContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &stubClient{responses: []string{"garbage"}}
	orch := NewOrchestrator(client, logging.NewNop())

	_, err := orch.Generate(ctx, testUnit())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
