// Package fixtures provides the seeded employee master used when no
// directory database is wired up. It implements the same repository
// interface as the PostgreSQL reader, so dev and test environments
// run against a deterministic roster.
package fixtures

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Arjun", "Vihaan", "Ishaan",
	"Saanvi", "Ananya", "Priya", "Kavya", "Rohan", "Neha",
	"Ritika", "Karan", "Sneha",
}

var lastNames = []string{
	"Reddy", "Sharma", "Patel", "Singh", "Kumar", "Iyer",
	"Nair", "Mehta", "Gupta", "Joshi", "Kaur", "Verma",
	"Chopra", "Desai", "Bhat",
}

var departments = []string{"HR", "IT", "Finance", "Sales", "Marketing", "Operations"}

var departmentDesignations = map[string][]string{
	"HR":         {"HR General", "HR IT", "HR Finance", "HR Sales", "HR Operations"},
	"IT":         {"Junior Developer", "Developer", "Senior Developer", "Tech Lead", "Engineering Manager"},
	"Finance":    {"Finance Executive", "Accountant", "Senior Accountant", "Finance Manager", "Finance Controller"},
	"Sales":      {"Sales Executive", "Senior Sales Executive", "Sales Manager", "Regional Sales Manager", "Sales Head"},
	"Marketing":  {"Marketing Executive", "Content Strategist", "Digital Marketing Specialist", "Marketing Manager", "Marketing Head"},
	"Operations": {"Operations Executive", "Senior Operations Executive", "Operations Manager", "Operations Lead", "Operations Head"},
}

var baseSalaries = map[string]int{
	"HR":         35000,
	"IT":         55000,
	"Finance":    45000,
	"Sales":      40000,
	"Marketing":  38000,
	"Operations": 36000,
}

// Directory is a deterministic, seeded employee master.
type Directory struct {
	byDepartment map[string][]employee.Employee
}

// NewDirectory generates count employees under a fixed seed. The same
// (seed, count) pair always yields the same roster.
func NewDirectory(seed int64, count int) *Directory {
	rng := rand.New(rand.NewSource(seed))
	byDepartment := make(map[string][]employee.Employee, len(departments))

	for i := 1; i <= count; i++ {
		first := pick(rng, firstNames)
		last := pick(rng, lastNames)
		dept := pick(rng, departments)
		designation := pick(rng, departmentDesignations[dept])

		emp := employee.Employee{
			ID:          fmt.Sprintf("EMP%03d", i),
			Name:        first + " " + last,
			Department:  dept,
			Designation: designation,
			Email:       fmt.Sprintf("%s.%s%d@company.com", strings.ToLower(first), strings.ToLower(last), i),
			PhoneNumber: phoneNumber(rng),
			HireDate:    hireDate(rng),
			BaseSalary:  salary(rng, dept, designation),
		}
		byDepartment[dept] = append(byDepartment[dept], emp)
	}

	return &Directory{byDepartment: byDepartment}
}

// ListByDepartment implements employee.DirectoryRepository.
func (d *Directory) ListByDepartment(_ context.Context, department string) ([]employee.Employee, error) {
	emps, ok := d.byDepartment[department]
	if !ok {
		return nil, employee.ErrDepartmentUnknown
	}
	out := make([]employee.Employee, len(emps))
	copy(out, emps)
	return out, nil
}

// Departments implements employee.DirectoryRepository.
func (d *Directory) Departments(context.Context) ([]string, error) {
	out := make([]string, len(departments))
	copy(out, departments)
	return out, nil
}

// Designations implements employee.DirectoryRepository.
func (d *Directory) Designations(_ context.Context, department string) ([]string, error) {
	emps, ok := d.byDepartment[department]
	if !ok {
		return nil, employee.ErrDepartmentUnknown
	}
	seen := make(map[string]bool)
	var out []string
	for _, e := range emps {
		if !seen[e.Designation] {
			seen[e.Designation] = true
			out = append(out, e.Designation)
		}
	}
	sort.Strings(out)
	return out, nil
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.Intn(len(items))]
}

func phoneNumber(rng *rand.Rand) string {
	prefixes := []string{"98", "99", "97", "96", "95"}
	var b strings.Builder
	b.WriteString(pick(rng, prefixes))
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "%d", rng.Intn(10))
	}
	return b.String()
}

func hireDate(rng *rand.Rand) time.Time {
	year := 2016 + rng.Intn(9)
	month := time.Month(1 + rng.Intn(12))
	day := 1 + rng.Intn(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// salary follows the master's band model: a per-department base scaled
// by seniority keywords in the designation, plus a random component.
func salary(rng *rand.Rand, dept, designation string) decimal.Decimal {
	multiplier := 1.0
	switch {
	case strings.Contains(designation, "Head") || strings.Contains(designation, "Controller"):
		multiplier = 2.3
	case strings.Contains(designation, "Lead") || strings.Contains(designation, "Manager"):
		multiplier = 1.8
	case strings.Contains(designation, "Senior"):
		multiplier = 1.4
	}
	amount := float64(baseSalaries[dept])*multiplier + float64(rng.Intn(15001))
	return decimal.NewFromFloat(amount).Round(0)
}
