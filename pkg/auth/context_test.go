package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestWithActor_ActorFromCtx(t *testing.T) {
	actor := Actor{ID: uuid.New(), Role: RoleAdmin}
	ctx := WithActor(context.Background(), actor)

	got, err := ActorFromCtx(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != actor {
		t.Fatalf("expected %v, got %v", actor, got)
	}
}

func TestActorFromCtx_EmptyContext(t *testing.T) {
	_, err := ActorFromCtx(context.Background())
	if !errors.Is(err, ErrActorNotFound) {
		t.Fatalf("expected ErrActorNotFound, got %v", err)
	}
}

func TestActorFromCtx_NilUUID(t *testing.T) {
	ctx := WithActor(context.Background(), Actor{ID: uuid.Nil, Role: RoleAdmin})
	_, err := ActorFromCtx(ctx)
	if !errors.Is(err, ErrActorNotFound) {
		t.Fatalf("expected ErrActorNotFound for uuid.Nil, got %v", err)
	}
}

func TestActorFromCtx_Isolation(t *testing.T) {
	actor1 := Actor{ID: uuid.New(), Role: RoleAdmin}
	actor2 := Actor{ID: uuid.New(), Role: RoleUser}

	ctx1 := WithActor(context.Background(), actor1)
	ctx2 := WithActor(context.Background(), actor2)

	got1, _ := ActorFromCtx(ctx1)
	got2, _ := ActorFromCtx(ctx2)

	if got1 != actor1 {
		t.Fatalf("ctx1: expected %v, got %v", actor1, got1)
	}
	if got2 != actor2 {
		t.Fatalf("ctx2: expected %v, got %v", actor2, got2)
	}
}

func TestActor_IsAdmin(t *testing.T) {
	if !(Actor{ID: uuid.New(), Role: RoleAdmin}).IsAdmin() {
		t.Fatal("admin role must report IsAdmin")
	}
	if (Actor{ID: uuid.New(), Role: RoleUser}).IsAdmin() {
		t.Fatal("user role must not report IsAdmin")
	}
	if (Actor{ID: uuid.New()}).IsAdmin() {
		t.Fatal("empty role must not report IsAdmin")
	}
}
