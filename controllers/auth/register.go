package authController

import (
	"log"

	"skilldev/config"
	"skilldev/database"
	"skilldev/middleware"
	"skilldev/models"
	"skilldev/utils"
	authValidator "skilldev/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Alternative form field names the mobile clients have used for each
// upload. First match wins.
var (
	idProofKeys        = []string{"id_proof_file", "id_proof", "idProofFile", "idProof"}
	proofClearanceKeys = []string{"proof_clearance_file", "proof_clearance", "proofClearanceFile", "clearanceFile"}
	profileImageKeys   = []string{"profileImage", "profile_image", "profile", "image"}
)

// Register creates a user from a multipart form with three document
// uploads. Files are staged to disk first; any failure after staging
// discards them so an aborted registration leaves nothing behind.
func Register(c *fiber.Ctx) error {
	reqData := c.Locals("registerData").(*authValidator.RegisterRequest)

	form, err := c.MultipartForm()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Incomplete data provided", nil)
	}

	uploadDir := config.AppConfig.UploadDir

	var staged []*utils.StagedFile
	discardStaged := func() {
		for _, f := range staged {
			f.Discard()
		}
	}

	idProof, err := utils.StageUpload(form, idProofKeys, uploadDir)
	if err != nil || idProof == nil {
		discardStaged()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "ID proof file not uploaded", nil)
	}
	staged = append(staged, idProof)

	proofClearance, err := utils.StageUpload(form, proofClearanceKeys, uploadDir)
	if err != nil || proofClearance == nil {
		discardStaged()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Proof of clearance file not uploaded", nil)
	}
	staged = append(staged, proofClearance)

	profileImage, err := utils.StageUpload(form, profileImageKeys, uploadDir)
	if err != nil || profileImage == nil {
		discardStaged()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Profile image not uploaded", nil)
	}
	staged = append(staged, profileImage)

	db := database.Database.Db

	// Check if email already exists
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", reqData.Email).Count(&count).Error; err != nil {
		discardStaged()
		log.Printf("Error checking existing email: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to register user", nil)
	}
	if count > 0 {
		discardStaged()
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		discardStaged()
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to register user", nil)
	}

	newUser := models.User{
		Username:           reqData.Username,
		Email:              reqData.Email,
		Password:           string(hashedPassword),
		IDProof:            idProof.Name,
		IDProofPath:        idProof.Path,
		ProofClearance:     proofClearance.Name,
		ProofClearancePath: proofClearance.Path,
		ProfileImage:       profileImage.Name,
		ProfileImagePath:   profileImage.Path,
	}

	if err := db.Create(&newUser).Error; err != nil {
		discardStaged()
		// The unique index on email closes the race between the
		// existence check above and this insert.
		if database.IsDuplicateKeyErr(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to register user", nil)
	}

	go utils.SendWelcomeEmail(newUser.Username, newUser.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully", fiber.Map{
		"username": newUser.Username,
		"email":    newUser.Email,
	})
}
