package model

import "testing"

func TestSellRequestStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   SellRequestStatus
		value string
	}{
		{"pending", SellStatusPending, "pending"},
		{"doing", SellStatusDoing, "doing"},
		{"cancel", SellStatusCancel, "cancel"},
		{"completed", SellStatusCompleted, "completed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !tc.got.Valid() {
				t.Fatalf("expected %s to be valid", tc.value)
			}
		})
	}

	if SellRequestStatus("done").Valid() {
		t.Fatal("unexpected valid status")
	}
}

func TestSellRequestStatusTerminal(t *testing.T) {
	if SellStatusPending.Terminal() || SellStatusDoing.Terminal() {
		t.Fatal("pending/doing must not be terminal")
	}
	if !SellStatusCancel.Terminal() || !SellStatusCompleted.Terminal() {
		t.Fatal("cancel/completed must be terminal")
	}
}

func TestWithdrawalStatusValues(t *testing.T) {
	cases := []struct {
		status WithdrawalStatus
		value  string
	}{
		{WithdrawalStatusPending, "pending"},
		{WithdrawalStatusCompleted, "completed"},
		{WithdrawalStatusFailed, "failed"},
	}

	for _, tc := range cases {
		if string(tc.status) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.status)
		}
		if !tc.status.Valid() {
			t.Fatalf("expected %s to be valid", tc.value)
		}
	}

	if WithdrawalStatus("rejected").Valid() {
		t.Fatal("unexpected valid status")
	}
}
