package courseController

import (
	"log"
	"time"

	"skilldev/database"
	"skilldev/middleware"

	"github.com/gofiber/fiber/v2"
)

type courseSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

type courseWithEnrollment struct {
	courseSummary
	IsEnrolled bool `json:"is_enrolled"`
}

// GetCourses lists all courses with the caller's enrollment state, or
// only enrolled courses when enrolled=true.
func GetCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)
	enrolledOnly := c.Locals("enrolledOnly").(bool)

	db := database.Database.Db

	if enrolledOnly {
		var courses []courseSummary
		err := db.Table("learning_modules lm").
			Select("lm.id, lm.title, lm.description, lm.content, lm.created_at").
			Joins("INNER JOIN enrollments e ON lm.id = e.course_id").
			Where("e.user_id = ?", userID).
			Scan(&courses).Error
		if err != nil {
			log.Printf("Error fetching enrolled courses: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error occurred", nil)
		}
		if len(courses) == 0 {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No courses found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
			"courses": courses,
		})
	}

	var courses []courseWithEnrollment
	err := db.Table("learning_modules lm").
		Select("lm.id, lm.title, lm.description, lm.content, lm.created_at, CASE WHEN e.user_id IS NOT NULL THEN 1 ELSE 0 END AS is_enrolled").
		Joins("LEFT JOIN enrollments e ON lm.id = e.course_id AND e.user_id = ?", userID).
		Scan(&courses).Error
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error occurred", nil)
	}
	if len(courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No courses found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"courses": courses,
	})
}
