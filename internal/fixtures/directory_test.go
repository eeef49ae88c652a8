package fixtures

import (
	"context"
	"regexp"
	"sort"
	"testing"

	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory_DeterministicUnderSeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a := NewDirectory(7, 100)
	b := NewDirectory(7, 100)

	for _, dept := range []string{"HR", "IT", "Finance", "Sales", "Marketing", "Operations"} {
		empsA, err := a.ListByDepartment(ctx, dept)
		require.NoError(t, err)
		empsB, err := b.ListByDepartment(ctx, dept)
		require.NoError(t, err)
		assert.Equal(t, empsA, empsB, "department %s differs between identical seeds", dept)
	}
}

func TestDirectory_CoversEveryEmployeeOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := NewDirectory(7, 250)

	depts, err := dir.Departments(ctx)
	require.NoError(t, err)

	seen := make(map[string]bool)
	total := 0
	for _, dept := range depts {
		emps, err := dir.ListByDepartment(ctx, dept)
		require.NoError(t, err)
		for _, e := range emps {
			assert.False(t, seen[e.ID], "duplicate employee %s", e.ID)
			seen[e.ID] = true
			assert.Equal(t, dept, e.Department)
		}
		total += len(emps)
	}
	assert.Equal(t, 250, total)
}

func TestDirectory_EmployeeShape(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := NewDirectory(7, 50)

	idPattern := regexp.MustCompile(`^EMP\d{3,}$`)
	phonePattern := regexp.MustCompile(`^9[5-9]\d{8}$`)

	depts, err := dir.Departments(ctx)
	require.NoError(t, err)
	for _, dept := range depts {
		emps, err := dir.ListByDepartment(ctx, dept)
		require.NoError(t, err)
		for _, e := range emps {
			assert.Regexp(t, idPattern, e.ID)
			assert.Regexp(t, phonePattern, e.PhoneNumber)
			assert.NotEmpty(t, e.Name)
			assert.NotEmpty(t, e.Designation)
			assert.Contains(t, e.Email, "@company.com")
			assert.False(t, e.HireDate.IsZero())
			assert.True(t, e.BaseSalary.IsPositive())
		}
	}
}

func TestDirectory_ListByDepartment_Unknown(t *testing.T) {
	t.Parallel()
	dir := NewDirectory(7, 10)

	_, err := dir.ListByDepartment(context.Background(), "Legal")
	assert.ErrorIs(t, err, employee.ErrDepartmentUnknown)
}

func TestDirectory_ListByDepartment_ReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := NewDirectory(7, 200)

	first, err := dir.ListByDepartment(ctx, "IT")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	first[0].Name = "mutated"

	second, err := dir.ListByDepartment(ctx, "IT")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestDirectory_Designations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := NewDirectory(7, 400)

	designations, err := dir.Designations(ctx, "IT")
	require.NoError(t, err)
	require.NotEmpty(t, designations)

	assert.True(t, sort.StringsAreSorted(designations))

	seen := make(map[string]bool)
	for _, d := range designations {
		assert.False(t, seen[d], "duplicate designation %s", d)
		seen[d] = true
	}

	_, err = dir.Designations(ctx, "Legal")
	assert.ErrorIs(t, err, employee.ErrDepartmentUnknown)
}
