package quota_test

import (
	"errors"
	"testing"

	"curator/internal/config"
	"curator/internal/quota"
	"curator/internal/services"
)

func testSettings() config.Quota {
	return config.Quota{
		DailyBudget:      10000,
		ConfirmThreshold: 100,
		WarnFloor:        1000,
		SearchCost:       100,
		DetailCost:       1,
		WriteCost:        50,
	}
}

func TestChargeBelowThresholdSkipsConfirmation(t *testing.T) {
	confirmed := false
	ledger := quota.NewLedger(testSettings(), quota.ConfirmerFunc(func(string) (bool, error) {
		confirmed = true
		return true, nil
	}), nil)

	if err := ledger.EstimateAndCharge(100, "search"); err != nil {
		t.Fatalf("EstimateAndCharge failed: %v", err)
	}
	if confirmed {
		t.Fatal("charge at threshold must not prompt")
	}
	if status := ledger.Status(); status.Used != 100 {
		t.Fatalf("expected 100 points used, got %d", status.Used)
	}
}

func TestExpensiveChargeRequiresConfirmation(t *testing.T) {
	var prompted string
	ledger := quota.NewLedger(testSettings(), quota.ConfirmerFunc(func(prompt string) (bool, error) {
		prompted = prompt
		return true, nil
	}), nil)

	if err := ledger.EstimateAndCharge(150, "deep search"); err != nil {
		t.Fatalf("EstimateAndCharge failed: %v", err)
	}
	if prompted == "" {
		t.Fatal("expected confirmation prompt for 150 point charge")
	}
	if status := ledger.Status(); status.Used != 150 {
		t.Fatalf("expected 150 points used, got %d", status.Used)
	}
}

func TestDeclinedChargeLeavesLedgerUnchanged(t *testing.T) {
	ledger := quota.NewLedger(testSettings(), quota.ConfirmerFunc(func(string) (bool, error) {
		return false, nil
	}), nil)

	err := ledger.EstimateAndCharge(150, "deep search")
	if err == nil {
		t.Fatal("expected quota declined error")
	}
	if !errors.Is(err, services.ErrQuotaDeclined) {
		t.Fatalf("expected ErrQuotaDeclined, got %v", err)
	}
	if status := ledger.Status(); status.Used != 0 {
		t.Fatalf("declined charge must not commit, got %d used", status.Used)
	}
}

func TestStatusReportsPercent(t *testing.T) {
	ledger := quota.NewLedger(testSettings(), nil, nil)
	if err := ledger.EstimateAndCharge(2500, "batch"); err == nil {
		// nil confirmer auto-approves
	} else {
		t.Fatalf("EstimateAndCharge failed: %v", err)
	}

	status := ledger.Status()
	if status.Used != 2500 || status.Remaining != 7500 || status.Total != 10000 {
		t.Fatalf("unexpected status: %#v", status)
	}
	if status.PercentUsed != 25 {
		t.Fatalf("expected 25 percent used, got %v", status.PercentUsed)
	}
}
