package step

import (
	"context"
	"errors"
	"testing"
)

func TestFuncStep_Defaults(t *testing.T) {
	s := NewFuncStep(MustNewID("test:step:defaults"), nil, nil)

	if s.Severity() != SeverityRequired {
		t.Errorf("Severity() = %v, want %v", s.Severity(), SeverityRequired)
	}

	status, err := s.Check(NewRunContext(context.Background()))
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if status != StatusNeedsApply {
		t.Errorf("nil check: Status = %v, want %v", status, StatusNeedsApply)
	}

	if err := s.Apply(NewRunContext(context.Background())); err != nil {
		t.Errorf("nil apply: error = %v, want nil", err)
	}

	if s.Describe() != "test:step:defaults" {
		t.Errorf("Describe() = %q, want the ID as fallback", s.Describe())
	}
}

func TestFuncStep_InvokesClosures(t *testing.T) {
	checkErr := errors.New("check broke")
	applyErr := errors.New("apply broke")

	s := NewFuncStep(
		MustNewID("test:step:closures"),
		func(RunContext) (Status, error) { return StatusUnknown, checkErr },
		func(RunContext) error { return applyErr },
	)

	status, err := s.Check(NewRunContext(context.Background()))
	if status != StatusUnknown || !errors.Is(err, checkErr) {
		t.Errorf("Check() = (%v, %v), want (%v, %v)", status, err, StatusUnknown, checkErr)
	}
	if err := s.Apply(NewRunContext(context.Background())); !errors.Is(err, applyErr) {
		t.Errorf("Apply() error = %v, want %v", err, applyErr)
	}
}

func TestFuncStep_WithersCopy(t *testing.T) {
	base := NewFuncStep(MustNewID("test:step:with"), nil, nil)

	optional := base.WithSeverity(SeverityOptional)
	described := base.WithDescription("install the thing")

	if base.Severity() != SeverityRequired {
		t.Error("WithSeverity mutated the receiver")
	}
	if optional.Severity() != SeverityOptional {
		t.Errorf("Severity() = %v, want %v", optional.Severity(), SeverityOptional)
	}
	if described.Describe() != "install the thing" {
		t.Errorf("Describe() = %q, want %q", described.Describe(), "install the thing")
	}
}

func TestRunContext_DryRunFlag(t *testing.T) {
	base := NewRunContext(context.Background())
	if base.DryRun() {
		t.Error("new RunContext: DryRun() = true, want false")
	}

	dry := base.WithDryRun(true)
	if !dry.DryRun() {
		t.Error("WithDryRun(true): DryRun() = false, want true")
	}
	if base.DryRun() {
		t.Error("WithDryRun mutated the receiver")
	}
}
