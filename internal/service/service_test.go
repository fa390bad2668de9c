package service

import (
	"path/filepath"
	"testing"

	"hr-admin/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.Candidate{},
		&model.Leave{},
		&model.Attendance{},
	))
	return db
}

func createEmployee(t *testing.T, db *gorm.DB, name, email string) *model.Employee {
	t.Helper()
	e := model.Employee{
		Profile:    "https://img.example.com/" + name + ".png",
		Name:       name,
		Email:      email,
		Phone:      "555-0100",
		Position:   "Engineer",
		Department: "R&D",
	}
	require.NoError(t, db.Create(&e).Error)
	return &e
}
