package controllers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/KomalRiazOCS/HospitalAPI/routes"
)

// newTestApp mounts the full route table. The cases below exercise only
// paths that fail before any database access.
func newTestApp() *fiber.App {
	app := fiber.New()
	routes.SetupPatientRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupAuthRoutes(app)
	routes.SetupGameCodeRoutes(app)
	routes.SetupTodoRoutes(app)
	return app
}

func TestHospitalAppointments_InvalidDate(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/appointments/hospital/invalid-date", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	payload, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(payload), "Invalid date.") {
		t.Errorf("expected the invalid date message, got %q", string(payload))
	}
}

func TestCreateAppointment_InvalidPatientID(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/appointments/not-an-id", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	payload, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(payload), "The patient with the given ID was not found.") {
		t.Errorf("expected the patient not found message, got %q", string(payload))
	}
}

func TestGetPatient_InvalidID(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/patients/not-an-id", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCreatePatient_ValidationFailure(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/patients/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreatePatient_InvalidPetType(t *testing.T) {
	app := newTestApp()

	payload := `{"petName":"Rex","petType":"fish","ownerName":"Sam","ownerAddress":"1 Main St","ownerPhone":"12345678901"}`
	req := httptest.NewRequest("POST", "/patients/", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	respBody, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(respBody), "PetType") {
		t.Errorf("expected PetType in the message, got %q", string(respBody))
	}
}
