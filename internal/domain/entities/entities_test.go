package entities

import "testing"

func TestUser_Password(t *testing.T) {
	var u User
	if u.CheckPassword("anything") {
		t.Fatalf("expected empty hash to never match")
	}
	if err := u.SetPassword("segredo123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.PasswordHash == "segredo123" {
		t.Fatalf("expected hashed password")
	}
	if !u.CheckPassword("segredo123") {
		t.Fatalf("expected password to match")
	}
	if u.CheckPassword("outra") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestPermissionsFor(t *testing.T) {
	roles := DefaultRoles()

	t.Run("super implies all", func(t *testing.T) {
		p := PermissionsFor([]Role{{Name: "x", IsSuper: true}})
		if !p.IsSuper || !p.CanAccessAdmin || !p.CanReviewPayments {
			t.Fatalf("unexpected permissions: %+v", p)
		}
	})

	t.Run("admin only", func(t *testing.T) {
		p := PermissionsFor([]Role{roles[1]})
		if p.IsSuper || !p.CanAccessAdmin || p.CanReviewPayments {
			t.Fatalf("unexpected permissions: %+v", p)
		}
	})

	t.Run("merged", func(t *testing.T) {
		p := PermissionsFor([]Role{roles[1], roles[2]})
		if p.IsSuper || !p.CanAccessAdmin || !p.CanReviewPayments {
			t.Fatalf("unexpected permissions: %+v", p)
		}
	})

	t.Run("none", func(t *testing.T) {
		if p := PermissionsFor(nil); p != (Permissions{}) {
			t.Fatalf("expected no permissions, got %+v", p)
		}
	})
}

func TestRegistrationHelpers(t *testing.T) {
	r := Registration{}
	if !r.IsAwaiting() || r.HasProof() {
		t.Fatalf("unexpected zero registration state")
	}
	r.Status = RegistrationStatusRecusada
	r.ProofFilePath = "comprovantes/x.pdf"
	if r.IsAwaiting() || !r.HasProof() {
		t.Fatalf("unexpected registration state")
	}
	if !ValidPaymentType(PaymentTypePix) || ValidPaymentType("boleto") {
		t.Fatalf("unexpected payment type validation")
	}
	if !ValidTransport(TransportCarro) || ValidTransport("aviao") {
		t.Fatalf("unexpected transport validation")
	}
	if ValidRegistrationStatus("PAGO") || !ValidRegistrationStatus(RegistrationStatusConfirmada) {
		t.Fatalf("unexpected status validation")
	}
}

func TestPaymentStatusFromProvider(t *testing.T) {
	cases := map[string]PaymentStatus{
		"approved":     PaymentStatusAprovado,
		"rejected":     PaymentStatusNegado,
		"in_process":   PaymentStatusPendente,
		"":             PaymentStatusPendente,
		"charged_back": PaymentStatusNegado,
	}
	for in, want := range cases {
		if got := PaymentStatusFromProvider(in); got != want {
			t.Fatalf("PaymentStatusFromProvider(%q) = %s, want %s", in, got, want)
		}
	}
}
