package courseController

import (
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"skilldev/config"
	"skilldev/database"
	"skilldev/middleware"

	"github.com/gofiber/fiber/v2"
)

type certificateRow struct {
	ID            uint
	CertificateID uint
	ImagePath     string
	Description   string
	AssignedAt    time.Time
}

// GetCertificates lists the user's certificate grants joined to their
// definitions. Stored image paths are rewritten to absolute URLs: the
// configured base URL plus the URL-escaped filename, directories
// discarded.
func GetCertificates(c *fiber.Ctx) error {
	userID := c.Locals("userId").(string)

	var rows []certificateRow
	err := database.Database.Db.Table("user_certificates uc").
		Select("uc.id, c.id AS certificate_id, c.image_path, c.description, uc.assigned_at").
		Joins("JOIN certifications c ON uc.certificate_id = c.id").
		Where("uc.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error fetching certificates: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Database error occurred", nil)
	}

	if len(rows) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No certificates found for the user", nil)
	}

	certificates := make([]fiber.Map, len(rows))
	for i, row := range rows {
		certificates[i] = fiber.Map{
			"id":             row.ID,
			"certificate_id": row.CertificateID,
			"image_path":     imageURL(row.ImagePath),
			"description":    row.Description,
			"assigned_at":    row.AssignedAt.Format("2006-01-02"),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"certificates": certificates,
	})
}

// imageURL recombines the configured base URL with the escaped
// filename portion of a stored path.
func imageURL(storedPath string) string {
	base := strings.TrimRight(config.AppConfig.BaseURL, "/")
	return base + "/" + url.PathEscape(path.Base(storedPath))
}
