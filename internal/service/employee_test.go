package service

import (
	"context"
	"fmt"
	"testing"

	"hr-admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEmployeeListPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		createEmployee(t, db, fmt.Sprintf("emp-%02d", i), fmt.Sprintf("emp%02d@example.com", i))
	}

	total, page1, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	assert.Len(t, page1, 10)

	total, page2, err := svc.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	assert.Len(t, page2, 5)

	// pages partition the collection
	seen := map[uint]bool{}
	for _, e := range append(page1, page2...) {
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
	assert.Len(t, seen, 15)
}

func TestEmployeeListDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)

	for i := 0; i < 12; i++ {
		createEmployee(t, db, fmt.Sprintf("emp-%02d", i), fmt.Sprintf("emp%02d@example.com", i))
	}

	// zero values fall back to page 1, limit 10
	total, employees, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Len(t, employees, 10)
}

func TestEmployeeGetIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	e := createEmployee(t, db, "Grace", "grace@example.com")

	first, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmployeePatchShallowMerge(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	e := createEmployee(t, db, "Grace", "grace@example.com")

	newPhone := "555-0199"
	updated, err := svc.Update(ctx, e.ID, model.EmployeePatch{Phone: &newPhone})
	require.NoError(t, err)

	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Grace", updated.Name, "absent fields stay unchanged")
	assert.Equal(t, "grace@example.com", updated.Email)
	assert.Equal(t, "R&D", updated.Department)
}

func TestEmployeeUpdateMissing(t *testing.T) {
	svc := NewEmployeeService(newTestDB(t))

	name := "Nobody"
	_, err := svc.Update(context.Background(), 999, model.EmployeePatch{Name: &name})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEmployeeDeleteThenGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	e := createEmployee(t, db, "Grace", "grace@example.com")

	require.NoError(t, svc.Delete(ctx, e.ID))
	_, err := svc.Get(ctx, e.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEmployeeDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	createEmployee(t, db, "Grace", "grace@example.com")
	err := svc.Create(ctx, &model.Employee{Name: "Imposter", Email: "grace@example.com"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestEmployeeSearchByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmployeeService(db)
	ctx := context.Background()

	createEmployee(t, db, "Grace Hopper", "grace@example.com")
	createEmployee(t, db, "Grace Kelly", "kelly@example.com")
	createEmployee(t, db, "Alan Turing", "alan@example.com")
	for i := 0; i < 6; i++ {
		createEmployee(t, db, fmt.Sprintf("Graceful %d", i), fmt.Sprintf("g%d@example.com", i))
	}

	hits, err := svc.SearchByName(ctx, "Grace")
	require.NoError(t, err)
	assert.Len(t, hits, 5, "search caps at five results")

	hits, err = svc.SearchByName(ctx, "Alan")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Alan Turing", hits[0].Name)
}
