package settings

import (
	"context"
	"testing"
)

func TestSettingsContextRoundTrip(t *testing.T) {
	params := NewCliParams()
	params.IsQuiet = true

	ctx := IntoContext(context.Background(), params)
	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("expected settings in context")
	}
	if got != params {
		t.Fatalf("expected same settings pointer, got %+v", got)
	}
}

func TestFromContextMissing(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("expected no settings in empty context")
	}
}
