package courseController

import (
	"errors"
	"log"
	"time"

	"skilldev/database"
	"skilldev/middleware"
	"skilldev/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const completedAtLayout = "2006-01-02 15:04:05"

// ToggleModuleCompletion flips the completion state of one chapter for
// one user. Calling it twice returns to the original state; that is the
// contract the mobile app relies on, not an accident.
func ToggleModuleCompletion(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)
	moduleID := c.Locals("moduleID").(int)

	db := database.Database.Db

	// Delete-first makes each branch a single atomic statement; the
	// unique index backs the insert side under concurrent toggles.
	res := db.Where("user_id = ? AND chapter_id = ?", userID, moduleID).Delete(&models.ModuleCompletion{})
	if res.Error != nil {
		log.Printf("Error toggling module completion: %v", res.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing request", nil)
	}
	if res.RowsAffected > 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Module completion status removed", fiber.Map{
			"completed": false,
		})
	}

	completion := models.ModuleCompletion{
		UserID:    uint(userID),
		ChapterID: uint(moduleID),
	}
	if err := db.Create(&completion).Error; err != nil {
		if database.IsDuplicateKeyErr(err) {
			// Lost a race against a concurrent toggle; the row exists,
			// which is the state this call was about to produce.
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Module marked as completed", fiber.Map{
				"completed": true,
			})
		}
		log.Printf("Error toggling module completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing request", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module marked as completed", fiber.Map{
		"completed": true,
	})
}

// CourseCompletion handles the POST endpoint. With action=
// complete_course it records completion idempotently; otherwise it
// reports the completion fraction and the authoritative completed flag.
func CourseCompletion(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)
	courseID := c.Locals("courseID").(int)
	action := c.Locals("action").(string)

	db := database.Database.Db

	if action == "complete_course" {
		completion := models.CourseCompletion{
			UserID:      uint(userID),
			CourseID:    uint(courseID),
			CompletedAt: time.Now(),
		}

		// Insert-if-absent: repeated calls keep the first row, and the
		// stored timestamp is what every call reports back.
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoNothing: true,
		}).Create(&completion).Error
		if err != nil {
			log.Printf("Error recording course completion: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing request", nil)
		}

		var stored models.CourseCompletion
		if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&stored).Error; err != nil {
			log.Printf("Error reading course completion: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing request", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed successfully", fiber.Map{
			"is_completed": true,
			"completed_at": stored.CompletedAt.Format(completedAtLayout),
		})
	}

	var totalModules int64
	if err := db.Model(&models.Chapter{}).Where("course_id = ?", courseID).Count(&totalModules).Error; err != nil {
		log.Printf("Error counting chapters: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing request", nil)
	}

	var completedModules int64
	err := db.Model(&models.ModuleCompletion{}).
		Joins("INNER JOIN chapters ch ON module_completion.chapter_id = ch.id").
		Where("ch.course_id = ? AND module_completion.user_id = ?", courseID, userID).
		Count(&completedModules).Error
	if err != nil {
		log.Printf("Error counting completed modules: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing request", nil)
	}

	isCompleted, completedAt, err := courseCompletedAt(userID, courseID)
	if err != nil {
		log.Printf("Error reading course completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing request", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course completion status retrieved", fiber.Map{
		"is_completed":      isCompleted,
		"completed_modules": completedModules,
		"total_modules":     totalModules,
		"completed_at":      completedAt,
	})
}

// CourseCompletionStatus handles the GET endpoint: a bare membership
// check against the course_completion table.
func CourseCompletionStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)
	courseID := c.Locals("courseID").(int)

	isCompleted, completedAt, err := courseCompletedAt(userID, courseID)
	if err != nil {
		log.Printf("Error reading course completion: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error processing request", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course completion status retrieved", fiber.Map{
		"is_completed": isCompleted,
		"completed_at": completedAt,
	})
}

// courseCompletedAt returns whether a completion row exists and its
// formatted timestamp (nil when absent). Only a missing row means
// "not completed"; any other query failure is the caller's to report.
func courseCompletedAt(userID, courseID int) (bool, interface{}, error) {
	var completion models.CourseCompletion
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&completion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	return true, completion.CompletedAt.Format(completedAtLayout), nil
}
