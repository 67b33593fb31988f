package utils

import (
	"math"
	"testing"
	"time"

	"github.com/KomalRiazOCS/HospitalAPI/models"
)

func appt(start time.Time, status models.FeeStatus, amount string) models.Appointment {
	return models.Appointment{
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Description: "checkup",
		FeeStatus:   status,
		Amount:      amount,
	}
}

func TestAggregateFinancialSummary_BalanceIdentity(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)
	patients := []models.Patient{
		{PetType: models.PetTypeDog, Appointments: []models.Appointment{
			appt(start.Add(24*time.Hour), models.FeeStatusUSD, "100"),
			appt(start.Add(48*time.Hour), models.FeeStatusEUR, "50.5"),
			appt(start.Add(72*time.Hour), models.FeeStatusUnpaid, "30"),
		}},
		{PetType: models.PetTypeCat, Appointments: []models.Appointment{
			appt(start.Add(96*time.Hour), models.FeeStatusBitcoin, "19.5"),
			appt(start.Add(120*time.Hour), models.FeeStatusUnpaid, "10"),
		}},
	}

	summary := AggregateFinancialSummary(patients, start, end)

	if summary.Paid != 170 {
		t.Errorf("expected paid 170, got %v", summary.Paid)
	}
	if summary.Unpaid != 40 {
		t.Errorf("expected unpaid 40, got %v", summary.Unpaid)
	}
	if summary.Balance != summary.Paid-summary.Unpaid {
		t.Errorf("balance %v does not equal paid-unpaid %v", summary.Balance, summary.Paid-summary.Unpaid)
	}
}

func TestAggregateFinancialSummary_WindowPartition(t *testing.T) {
	start := time.Date(2023, 5, 21, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 7)
	patients := []models.Patient{
		{PetType: models.PetTypeDog, Appointments: []models.Appointment{
			appt(start, models.FeeStatusUSD, "10"),                      // on the start boundary: counted
			appt(end, models.FeeStatusUSD, "20"),                        // on the end boundary: excluded
			appt(start.Add(-time.Second), models.FeeStatusUSD, "40"),    // before the window
			appt(end.Add(time.Hour), models.FeeStatusUnpaid, "80"),      // after the window
			appt(start.Add(time.Hour), models.FeeStatusUnpaid, "5"),     // inside
		}},
	}

	summary := AggregateFinancialSummary(patients, start, end)

	if summary.Paid != 10 {
		t.Errorf("expected paid 10, got %v", summary.Paid)
	}
	if summary.Unpaid != 5 {
		t.Errorf("expected unpaid 5, got %v", summary.Unpaid)
	}
}

func TestAggregateFinancialSummary_Empty(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.Local)
	summary := AggregateFinancialSummary(nil, start, start.AddDate(0, 1, 0))

	if summary.Paid != 0 || summary.Unpaid != 0 || summary.Balance != 0 {
		t.Errorf("expected zeroed summary, got %+v", summary)
	}
}

func TestAggregatePetSummary_SingleWinner(t *testing.T) {
	day := time.Date(2023, 5, 22, 10, 0, 0, 0, time.Local)
	patients := []models.Patient{
		{PetType: models.PetTypeDog, Appointments: []models.Appointment{
			appt(day, models.FeeStatusUSD, "10"),
			appt(day, models.FeeStatusUnpaid, "20"),
			appt(day, models.FeeStatusEUR, "30"),
		}},
		{PetType: models.PetTypeCat, Appointments: []models.Appointment{
			appt(day, models.FeeStatusUSD, "40"),
		}},
	}

	mostPopular, summary := AggregatePetSummary(patients)

	if len(mostPopular) != 1 || mostPopular[0] != "dog" {
		t.Errorf("expected [dog], got %v", mostPopular)
	}
	if summary["dog"].Count != 3 {
		t.Errorf("expected dog count 3, got %d", summary["dog"].Count)
	}
	// Revenue ignores fee status entirely.
	if summary["dog"].TotalAmount != 60 {
		t.Errorf("expected dog totalAmount 60, got %v", summary["dog"].TotalAmount)
	}
	if summary["cat"].Count != 1 || summary["cat"].TotalAmount != 40 {
		t.Errorf("unexpected cat summary %+v", summary["cat"])
	}
}

func TestAggregatePetSummary_Tie(t *testing.T) {
	day := time.Date(2023, 5, 22, 10, 0, 0, 0, time.Local)
	patients := []models.Patient{
		{PetType: models.PetTypeDog, Appointments: []models.Appointment{
			appt(day, models.FeeStatusUSD, "10"),
			appt(day, models.FeeStatusUSD, "10"),
		}},
		{PetType: models.PetTypeCat, Appointments: []models.Appointment{
			appt(day, models.FeeStatusUSD, "10"),
			appt(day, models.FeeStatusUSD, "10"),
		}},
	}

	mostPopular, _ := AggregatePetSummary(patients)

	if len(mostPopular) != 2 {
		t.Fatalf("expected two tied pet types, got %v", mostPopular)
	}
	seen := map[string]bool{}
	for _, petType := range mostPopular {
		seen[petType] = true
	}
	if !seen["dog"] || !seen["cat"] {
		t.Errorf("expected dog and cat in %v", mostPopular)
	}
}

func TestAggregatePetSummary_CountsPatientWithoutAppointments(t *testing.T) {
	patients := []models.Patient{
		{PetType: models.PetTypeBird},
	}

	mostPopular, summary := AggregatePetSummary(patients)

	entry, ok := summary["bird"]
	if !ok {
		t.Fatal("expected a bird entry even with no appointments")
	}
	if entry.Count != 0 || entry.TotalAmount != 0 {
		t.Errorf("expected zeroed bird entry, got %+v", entry)
	}
	// A zero count still equals the running maximum of zero.
	if len(mostPopular) != 1 || mostPopular[0] != "bird" {
		t.Errorf("expected [bird], got %v", mostPopular)
	}
}

func TestAggregatePetSummary_Empty(t *testing.T) {
	mostPopular, summary := AggregatePetSummary(nil)

	if len(summary) != 0 {
		t.Errorf("expected empty summary, got %v", summary)
	}
	if len(mostPopular) != 0 {
		t.Errorf("expected no popular pets, got %v", mostPopular)
	}
}

func TestRemainingBill(t *testing.T) {
	day := time.Date(2023, 5, 22, 10, 0, 0, 0, time.Local)
	patient := models.Patient{
		PetType: models.PetTypeDog,
		Appointments: []models.Appointment{
			appt(day, models.FeeStatusUnpaid, "100"),
			appt(day, models.FeeStatusUSD, "200"),
			appt(day, models.FeeStatusUnpaid, "150"),
		},
	}

	if bill := RemainingBill(patient); bill != 250 {
		t.Errorf("expected remaining bill 250, got %v", bill)
	}
}

func TestRemainingBill_NoAppointments(t *testing.T) {
	if bill := RemainingBill(models.Patient{}); bill != 0 {
		t.Errorf("expected zero bill, got %v", bill)
	}
}

func TestAppointmentsOn(t *testing.T) {
	dayStart, dayEnd := DayWindow(time.Date(2023, 5, 22, 0, 0, 0, 0, time.Local))
	patients := []models.Patient{
		{PetType: models.PetTypeDog, Appointments: []models.Appointment{
			appt(time.Date(2023, 5, 22, 10, 0, 0, 0, time.Local), models.FeeStatusUSD, "10"),
			appt(time.Date(2023, 5, 23, 10, 0, 0, 0, time.Local), models.FeeStatusUSD, "30"),
		}},
		{PetType: models.PetTypeCat, Appointments: []models.Appointment{
			appt(time.Date(2023, 5, 22, 14, 0, 0, 0, time.Local), models.FeeStatusUSD, "20"),
		}},
	}

	matches := AppointmentsOn(patients, dayStart, dayEnd)

	if len(matches) != 2 {
		t.Fatalf("expected 2 appointments on the day, got %d", len(matches))
	}
	for _, appointment := range matches {
		if appointment.StartTime.Day() != 22 {
			t.Errorf("unexpected appointment on day %d", appointment.StartTime.Day())
		}
	}
}

func TestUnpaidAppointments(t *testing.T) {
	day := time.Date(2023, 5, 22, 10, 0, 0, 0, time.Local)
	patients := []models.Patient{
		{PetType: models.PetTypeDog, Appointments: []models.Appointment{
			appt(day, models.FeeStatusUnpaid, "100"),
			appt(day, models.FeeStatusUSD, "200"),
		}},
		{PetType: models.PetTypeCat, Appointments: []models.Appointment{
			appt(day, models.FeeStatusUnpaid, "150"),
		}},
	}

	unpaid := UnpaidAppointments(patients)

	if len(unpaid) != 2 {
		t.Fatalf("expected 2 unpaid appointments, got %d", len(unpaid))
	}
	for _, appointment := range unpaid {
		if !appointment.IsUnpaid() {
			t.Errorf("expected unpaid appointment, got %s", appointment.FeeStatus)
		}
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	if !math.IsNaN(ParseAmount("not-a-number")) {
		t.Error("expected NaN for malformed amount")
	}
	if ParseAmount("12.5") != 12.5 {
		t.Errorf("expected 12.5, got %v", ParseAmount("12.5"))
	}
}
