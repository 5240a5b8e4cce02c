package main

import (
	"classroom/database"
	"classroom/models"
	"classroom/testutil"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestSeedIsRepeatable(t *testing.T) {
	testutil.SetupTestDB(t)
	db := database.Database.Db
	rng := rand.New(rand.NewSource(42))

	for run := 1; run <= 2; run++ {
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			return seed(tx, rng)
		}), "run %d", run)

		assert.EqualValues(t, 25, count(t, db, &models.User{}, ""), "run %d", run)
		assert.EqualValues(t, 5, count(t, db, &models.User{}, "role = ?", models.RoleInstructor), "run %d", run)
		assert.EqualValues(t, 20, count(t, db, &models.User{}, "role = ?", models.RoleStudent), "run %d", run)
		assert.EqualValues(t, 10, count(t, db, &models.Course{}, ""), "run %d", run)
		assert.NotZero(t, count(t, db, &models.Assignment{}, ""), "run %d", run)

		// Every student gets at least one enrollment and no pair repeats
		var enrollments []models.Enrollment
		require.NoError(t, db.Find(&enrollments).Error)
		seen := map[[2]uint]bool{}
		students := map[uint]bool{}
		for _, e := range enrollments {
			key := [2]uint{e.StudentID, e.CourseID}
			assert.False(t, seen[key], "duplicate enrollment %v", key)
			seen[key] = true
			students[e.StudentID] = true
		}
		assert.Len(t, students, 20, "run %d", run)

		// Grades only land on assignments of courses the student is enrolled in
		var grades []models.Grade
		require.NoError(t, db.Find(&grades).Error)
		for _, g := range grades {
			var assignment models.Assignment
			require.NoError(t, db.First(&assignment, g.AssignmentID).Error)
			assert.True(t, seen[[2]uint{g.StudentID, assignment.CourseID}], "grade %d without enrollment", g.ID)
			assert.GreaterOrEqual(t, g.Grade, 50.0)
			assert.LessOrEqual(t, g.Grade, 100.0)
		}
	}
}
