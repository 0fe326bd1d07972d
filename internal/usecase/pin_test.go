package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/giftpad/cardmarket/internal/domain/errors"
	testhelpers "github.com/giftpad/cardmarket/internal/test"
)

func TestPinUseCaseSetAndStatus(t *testing.T) {
	pins := testhelpers.NewPinRepositoryStub()
	uc := NewPinUseCase(pins, testhelpers.HasherStub{})
	ctx := context.Background()

	set, err := uc.Status(ctx, 1)
	if err != nil || set {
		t.Fatalf("expected unset pin, got set=%v err=%v", set, err)
	}

	if err := uc.Set(ctx, 1, "1234"); err != nil {
		t.Fatalf("set pin failed: %v", err)
	}
	if pins.Hashes[1] != "hash:1234" {
		t.Fatalf("hash not stored: %v", pins.Hashes[1])
	}

	set, err = uc.Status(ctx, 1)
	if err != nil || !set {
		t.Fatalf("expected set pin, got set=%v err=%v", set, err)
	}
}

func TestPinUseCaseSetValidation(t *testing.T) {
	uc := NewPinUseCase(testhelpers.NewPinRepositoryStub(), testhelpers.HasherStub{})

	for _, pin := range []string{"", "123", "12345", "12a4", "12 4", "١٢٣٤"} {
		if err := uc.Set(context.Background(), 1, pin); err != domainErrors.ErrValidation {
			t.Fatalf("pin %q: expected validation error, got %v", pin, err)
		}
	}
}

func TestPinUseCaseVerify(t *testing.T) {
	pins := testhelpers.NewPinRepositoryStub()
	uc := NewPinUseCase(pins, testhelpers.HasherStub{})
	ctx := context.Background()

	if err := uc.Verify(ctx, 1, "1234"); err != domainErrors.ErrPinNotSet {
		t.Fatalf("expected pin not set, got %v", err)
	}

	if err := uc.Set(ctx, 1, "1234"); err != nil {
		t.Fatalf("set pin failed: %v", err)
	}

	if err := uc.Verify(ctx, 1, "1234"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if err := uc.Verify(ctx, 1, "0000"); err != domainErrors.ErrInvalidPin {
		t.Fatalf("expected invalid pin, got %v", err)
	}
	if err := uc.Verify(ctx, 1, ""); err != domainErrors.ErrInvalidPin {
		t.Fatalf("expected invalid pin, got %v", err)
	}

	pins.Err = errors.New("storage")
	if err := uc.Verify(ctx, 1, "1234"); err == nil || err == domainErrors.ErrInvalidPin {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestPinUseCaseChange(t *testing.T) {
	pins := testhelpers.NewPinRepositoryStub()
	uc := NewPinUseCase(pins, testhelpers.HasherStub{})
	ctx := context.Background()

	if err := uc.Set(ctx, 1, "1234"); err != nil {
		t.Fatalf("set pin failed: %v", err)
	}

	if err := uc.Change(ctx, 1, "0000", "5678"); err != domainErrors.ErrInvalidPin {
		t.Fatalf("expected invalid pin, got %v", err)
	}
	if err := uc.Change(ctx, 1, "1234", "56789"); err != domainErrors.ErrValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := uc.Change(ctx, 1, "1234", "5678"); err != nil {
		t.Fatalf("change pin failed: %v", err)
	}
	if err := uc.Verify(ctx, 1, "5678"); err != nil {
		t.Fatalf("new pin rejected: %v", err)
	}
}
