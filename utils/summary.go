package utils

import (
	"math"
	"strconv"
	"time"

	"github.com/KomalRiazOCS/HospitalAPI/models"
)

// FinancialSummary is a paid/unpaid/balance triple over one time window.
type FinancialSummary struct {
	Paid    float64 `json:"paid"`
	Unpaid  float64 `json:"unpaid"`
	Balance float64 `json:"balance"`
}

// PetTypeSummary aggregates one pet type across every appointment,
// regardless of fee status.
type PetTypeSummary struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}

// ParseAmount parses the textual amount of an appointment. Malformed text
// becomes NaN and flows through the sums unchecked.
func ParseAmount(amount string) float64 {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// AggregateFinancialSummary buckets every appointment whose start time falls
// in the half-open window [start, end) by fee status. An unpaid status
// accumulates into Unpaid, any other status counts as a paid currency.
func AggregateFinancialSummary(patients []models.Patient, start, end time.Time) FinancialSummary {
	var summary FinancialSummary
	for _, patient := range patients {
		for _, appointment := range patient.Appointments {
			startTime := appointment.StartTime
			if startTime.Before(start) || !startTime.Before(end) {
				continue
			}
			if appointment.IsUnpaid() {
				summary.Unpaid += ParseAmount(appointment.Amount)
			} else {
				summary.Paid += ParseAmount(appointment.Amount)
			}
		}
	}
	summary.Balance = summary.Paid - summary.Unpaid
	return summary
}

// AggregatePetSummary groups appointments by pet type and returns the set of
// types tied for the highest appointment count. Tie-break order follows the
// order pet types first appear in the input; callers must not assume any
// other ordering within a tie.
func AggregatePetSummary(patients []models.Patient) (mostPopularPets []string, petSummary map[string]PetTypeSummary) {
	petSummary = make(map[string]PetTypeSummary)
	var order []string

	for _, patient := range patients {
		petType := string(patient.PetType)
		entry, seen := petSummary[petType]
		if !seen {
			order = append(order, petType)
		}
		for _, appointment := range patient.Appointments {
			entry.Count++
			entry.TotalAmount += ParseAmount(appointment.Amount)
		}
		petSummary[petType] = entry
	}

	mostPopularPets = []string{}
	maxCount := 0
	for _, petType := range order {
		count := petSummary[petType].Count
		if count > maxCount {
			mostPopularPets = []string{petType}
			maxCount = count
		} else if count == maxCount {
			mostPopularPets = append(mostPopularPets, petType)
		}
	}

	return mostPopularPets, petSummary
}

// RemainingBill sums the amounts of a patient's unpaid appointments.
func RemainingBill(patient models.Patient) float64 {
	total := 0.0
	for _, appointment := range patient.Appointments {
		if appointment.IsUnpaid() {
			total += ParseAmount(appointment.Amount)
		}
	}
	return total
}

// AppointmentsOn returns every appointment, across all patients, whose start
// time falls inside the inclusive [dayStart, dayEnd] window.
func AppointmentsOn(patients []models.Patient, dayStart, dayEnd time.Time) []models.Appointment {
	appointments := []models.Appointment{}
	for _, patient := range patients {
		for _, appointment := range patient.Appointments {
			startTime := appointment.StartTime
			if !startTime.Before(dayStart) && !startTime.After(dayEnd) {
				appointments = append(appointments, appointment)
			}
		}
	}
	return appointments
}

// UnpaidAppointments returns the flat list of unpaid appointments across all
// patients, with no date filtering.
func UnpaidAppointments(patients []models.Patient) []models.Appointment {
	appointments := []models.Appointment{}
	for _, patient := range patients {
		for _, appointment := range patient.Appointments {
			if appointment.IsUnpaid() {
				appointments = append(appointments, appointment)
			}
		}
	}
	return appointments
}
