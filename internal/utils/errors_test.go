package utils

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidArgument, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeUnavailable, http.StatusServiceUnavailable},
		{CodeTimeout, http.StatusGatewayTimeout},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(E(tc.code, "Op", "msg", nil)); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.code, tc.want, got)
		}
	}

	if got := HTTPStatus(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("plain error: expected 500, got %d", got)
	}
}

func TestIsCodeSeesThroughWrapping(t *testing.T) {
	inner := E(CodeUnavailable, "Provider.Complete", "backend down", errors.New("dial refused"))
	if !IsCode(inner, CodeUnavailable) {
		t.Fatal("expected UNAVAILABLE")
	}
	if IsCode(inner, CodeInternal) {
		t.Fatal("did not expect INTERNAL")
	}
	if IsCode(errors.New("plain"), CodeInternal) {
		t.Fatal("plain errors carry no code")
	}
}

func TestAppErrorMessageShapes(t *testing.T) {
	err := E(CodeInternal, "Svc.Op", "failed", errors.New("cause"))
	want := "Svc.Op: failed: cause"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	bare := &AppError{Message: "just a message"}
	if bare.Error() != "just a message" {
		t.Fatalf("unexpected: %q", bare.Error())
	}
}
