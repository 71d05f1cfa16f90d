package courseController

import (
	"log"
	"time"

	"skilldev/database"
	"skilldev/middleware"
	"skilldev/models"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse creates an enrollment. The unique (user_id, course_id)
// index is the only duplicate guard; a constraint violation maps to 409.
func EnrollInCourse(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)
	courseID := c.Locals("courseID").(int)

	enrollment := models.Enrollment{
		UserID:   uint(userID),
		CourseID: uint(courseID),
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		if database.IsDuplicateKeyErr(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course", nil)
		}
		log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Successfully enrolled", nil)
}

type enrolledCourseRow struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	EnrolledAt  time.Time `json:"enrolled_at"`
	Status      string    `json:"status"`
}

// GetEnrollments lists the caller's enrolled, non-archived courses.
func GetEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	var courses []enrolledCourseRow
	err := database.Database.Db.Table("learning_modules lm").
		Select("lm.id, lm.title, lm.description, lm.content, lm.created_at, e.enrolled_at, e.status").
		Joins("INNER JOIN enrollments e ON lm.id = e.course_id").
		Where("e.user_id = ? AND (lm.archived = ? OR lm.archived IS NULL)", userID, false).
		Scan(&courses).Error
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error occurred", nil)
	}

	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No enrolled courses found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"courses": courses,
	})
}
