package courseRoutes

import (
	controllers "classroom/controllers/course"
	"classroom/middleware"
	"classroom/models"
	validators "classroom/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers courses, enrollments, assignments, grades and student history.
// The second route of each pair is the legacy path kept for older clients.
func SetupCourseRoutes(app *fiber.App) {
	instructorOnly := middleware.RequireRole(models.RoleInstructor)
	studentOnly := middleware.RequireRole(models.RoleStudent)

	courseGroup := app.Group("/courses")
	courseGroup.Post("/", instructorOnly, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Post("/create", instructorOnly, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/", middleware.RequireAuthenticated, controllers.GetAllCourses)
	courseGroup.Get("/list", middleware.RequireAuthenticated, controllers.GetAllCourses)
	courseGroup.Put("/:id", instructorOnly, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Put("/update/:id", instructorOnly, validators.UpdateCourse(), controllers.UpdateCourse)

	enrollGroup := app.Group("/enrollments")
	enrollGroup.Post("/", studentOnly, validators.EnrollCourse(), controllers.EnrollInCourse)
	enrollGroup.Post("/enroll", studentOnly, validators.EnrollCourse(), controllers.EnrollInCourse)
	enrollGroup.Get("/", studentOnly, controllers.GetEnrollments)
	enrollGroup.Get("/list", studentOnly, controllers.GetEnrollments)

	assignmentGroup := app.Group("/assignments")
	assignmentGroup.Post("/", instructorOnly, validators.CreateAssignment(), controllers.CreateAssignment)
	assignmentGroup.Post("/create", instructorOnly, validators.CreateAssignment(), controllers.CreateAssignment)
	assignmentGroup.Get("/course/:course_id", middleware.RequireAuthenticated, validators.CourseAssignments(), controllers.GetCourseAssignments)
	assignmentGroup.Get("/:course_id", middleware.RequireAuthenticated, validators.CourseAssignments(), controllers.GetCourseAssignments)

	gradeGroup := app.Group("/grades")
	gradeGroup.Post("/", instructorOnly, validators.AssignGrade(), controllers.AssignGrade)
	gradeGroup.Post("/assign", instructorOnly, validators.AssignGrade(), controllers.AssignGrade)

	app.Get("/student/history", studentOnly, controllers.StudentHistory)
}
