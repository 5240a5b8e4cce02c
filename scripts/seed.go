package main

import (
	"classroom/config"
	"classroom/database"
	"classroom/models"
	"classroom/utils"
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const seedPassword = "password123"

var (
	firstNames = []string{"Ada", "Alan", "Grace", "Edsger", "Barbara", "Donald", "Frances", "Ken", "Margaret", "Dennis", "Radia", "Tim"}
	lastNames  = []string{"Lovelace", "Turing", "Hopper", "Dijkstra", "Liskov", "Knuth", "Allen", "Thompson", "Hamilton", "Ritchie", "Perlman", "Berners-Lee"}
	subjects   = []string{"Algorithms", "Databases", "Networks", "Operating Systems", "Compilers", "Distributed Systems", "Security", "Graphics", "Statistics", "Linear Algebra"}
)

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		return seed(tx, rng)
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Database seeded successfully!")
}

func seed(tx *gorm.DB, rng *rand.Rand) error {
	// Children first; the tables carry no FK constraints but keep the order anyway
	for _, table := range []interface{}{&models.Grade{}, &models.Assignment{}, &models.Enrollment{}, &models.Course{}, &models.User{}} {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("wipe %T: %w", table, err)
		}
	}

	hashed, err := utils.HashPassword(seedPassword)
	if err != nil {
		return err
	}

	instructors, err := seedUsers(tx, rng, models.RoleInstructor, 5, hashed)
	if err != nil {
		return err
	}
	students, err := seedUsers(tx, rng, models.RoleStudent, 20, hashed)
	if err != nil {
		return err
	}

	courses := make([]models.Course, 0, len(subjects))
	for i, subject := range subjects {
		courses = append(courses, models.Course{
			Name:         fmt.Sprintf("Course %d: %s", i+1, subject),
			Description:  fmt.Sprintf("An introduction to %s.", subject),
			InstructorID: instructors[rng.Intn(len(instructors))].ID,
		})
	}
	if err := tx.Create(&courses).Error; err != nil {
		return fmt.Errorf("create courses: %w", err)
	}

	var assignments []models.Assignment
	for _, course := range courses {
		for i := 0; i < 1+rng.Intn(3); i++ {
			assignments = append(assignments, models.Assignment{
				Title:       fmt.Sprintf("%s homework %d", course.Name, i+1),
				Description: "Solve the exercises from this week's lecture.",
				DueDate:     datatypes.Date(time.Now().AddDate(0, 0, 7*(i+1))),
				CourseID:    course.ID,
			})
		}
	}
	if err := tx.Create(&assignments).Error; err != nil {
		return fmt.Errorf("create assignments: %w", err)
	}

	enrolled, graded := 0, 0
	for _, student := range students {
		for _, idx := range rng.Perm(len(courses))[:1+rng.Intn(5)] {
			course := courses[idx]
			enrollment := models.Enrollment{StudentID: student.ID, CourseID: course.ID, EnrolledDate: utils.Today()}
			if err := tx.Create(&enrollment).Error; err != nil {
				return fmt.Errorf("enroll student %d: %w", student.ID, err)
			}
			enrolled++

			for _, assignment := range assignments {
				if assignment.CourseID != course.ID || rng.Intn(2) == 0 {
					continue
				}
				grade := models.Grade{
					AssignmentID: assignment.ID,
					StudentID:    student.ID,
					Grade:        float64(50 + rng.Intn(51)),
					GradedDate:   utils.Today(),
				}
				if err := tx.Create(&grade).Error; err != nil {
					return fmt.Errorf("grade student %d: %w", student.ID, err)
				}
				graded++
			}
		}
	}

	log.Printf("Seeded %d instructors, %d students, %d courses, %d assignments, %d enrollments, %d grades",
		len(instructors), len(students), len(courses), len(assignments), enrolled, graded)
	return nil
}

func seedUsers(tx *gorm.DB, rng *rand.Rand, role string, count int, hashedPassword string) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		users = append(users, models.User{
			Name:     first + " " + last,
			Email:    fmt.Sprintf("%s%d@example.com", role, i+1),
			Phone:    fmt.Sprintf("555%07d", rng.Intn(10000000)),
			Password: hashedPassword,
			Role:     role,
		})
	}
	if err := tx.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("create %ss: %w", role, err)
	}
	return users, nil
}
