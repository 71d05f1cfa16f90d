package courseController

import (
	"log"

	"skilldev/database"
	"skilldev/middleware"

	"github.com/gofiber/fiber/v2"
)

type moduleRow struct {
	ID          uint   `json:"id"`
	CourseID    uint   `json:"course_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsCompleted bool   `json:"is_completed"`
}

// GetModules lists a course's chapters with the caller's completion
// state derived from the presence of a module_completion row.
func GetModules(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	userID := c.Locals("userID").(int)

	var modules []moduleRow
	err := database.Database.Db.Table("chapters c").
		Select("c.id, c.course_id, c.title, c.content, CASE WHEN mc.id IS NOT NULL THEN 1 ELSE 0 END AS is_completed").
		Joins("LEFT JOIN module_completion mc ON c.id = mc.chapter_id AND mc.user_id = ?", userID).
		Where("c.course_id = ?", courseID).
		Order("c.id ASC").
		Scan(&modules).Error
	if err != nil {
		log.Printf("Error fetching modules for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error occurred", nil)
	}

	if len(modules) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No modules found for this course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"modules": modules,
	})
}
