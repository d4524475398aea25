package services

import (
	"fmt"
	"time"

	"ai_unk_go_backend/internal/models"

	"gorm.io/gorm"
)

// UserService upserts users on login. The owner allow-list promotes one
// configured identity to admin; everyone else defaults to the user role.
type UserService struct {
	db          *gorm.DB
	ownerOpenID string
}

func NewUserService(db *gorm.DB, ownerOpenID string) *UserService {
	return &UserService{db: db, ownerOpenID: ownerOpenID}
}

// CreateOrUpdateUser is called on every authenticated request. It refreshes
// lastSignedIn and display fields, creating the record on first login.
func (s *UserService) CreateOrUpdateUser(openID, email, name, loginMethod string) (*models.User, error) {
	if openID == "" {
		return nil, fmt.Errorf("user openId is required for upsert")
	}

	assign := models.User{
		Email:        email,
		Name:         name,
		LoginMethod:  loginMethod,
		LastSignedIn: time.Now(),
	}
	if openID == s.ownerOpenID {
		assign.Role = models.RoleAdmin
	}

	var user models.User
	result := s.db.Where(models.User{OpenID: openID}).Assign(assign).FirstOrCreate(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserService) GetUserByOpenID(openID string) (*models.User, error) {
	var user models.User
	result := s.db.Where("open_id = ?", openID).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}
