package courseRoutes

import (
	courseController "skilldev/controllers/course"
	courseValidator "skilldev/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course, module, enrollment, completion and
// certificate routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api")

	courseGroup.Get("/courses", courseValidator.CourseList(), courseController.GetCourses)
	courseGroup.Get("/modules", courseValidator.ModuleList(), courseController.GetModules)

	courseGroup.Post("/enroll", courseValidator.Enroll(), courseController.EnrollInCourse)
	courseGroup.Get("/enroll", courseValidator.EnrollmentList(), courseController.GetEnrollments)

	courseGroup.Post("/module-completion", courseValidator.ToggleModuleCompletion(), courseController.ToggleModuleCompletion)

	courseGroup.Post("/course-completion", courseValidator.CourseCompletionPost(), courseController.CourseCompletion)
	courseGroup.Get("/course-completion", courseValidator.CourseCompletionGet(), courseController.CourseCompletionStatus)

	courseGroup.Get("/certificates", courseValidator.Certificates(), courseController.GetCertificates)
}
