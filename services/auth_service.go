package services

import (
	"KidSafe/models"
	"KidSafe/repositories"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL        = 24 * time.Hour
	childSessionTTL = 30 * 24 * time.Hour
)

// Claims is the JWT payload for both roles. UID is the parent firebase_uid
// or the child id in decimal, depending on UserType.
type Claims struct {
	UID      string `json:"uid"`
	UserType string `json:"user_type"`
	jwt.StandardClaims
}

func jwtKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("kidsafe_dev_secret")
}

type AuthService struct {
	ParentRepo   repositories.ParentRepository
	ChildRepo    repositories.ChildRepository
	SessionRepo  repositories.SessionRepository
	FirebaseAuth *auth.Client
}

func NewAuthService(parentRepo repositories.ParentRepository, childRepo repositories.ChildRepository, sessionRepo repositories.SessionRepository, firebaseAuth *auth.Client) *AuthService {
	return &AuthService{ParentRepo: parentRepo, ChildRepo: childRepo, SessionRepo: sessionRepo, FirebaseAuth: firebaseAuth}
}

func (s *AuthService) RegisterParent(name, email, password, avatar string) (models.Parent, string, error) {
	if email == "" {
		return models.Parent{}, "", fmt.Errorf("%w: email cannot be empty", models.ErrValidation)
	}
	if password == "" {
		return models.Parent{}, "", fmt.Errorf("%w: password cannot be empty", models.ErrValidation)
	}

	// Register the account in Firebase first; it owns email verification.
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(name)
	createdUser, err := s.FirebaseAuth.CreateUser(context.Background(), params)
	if err != nil {
		return models.Parent{}, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Parent{}, "", err
	}

	parent := models.Parent{
		Name:        name,
		Email:       email,
		Password:    string(hashedPassword),
		Role:        "parent",
		Avatar:      avatar,
		FirebaseUID: createdUser.UID,
	}
	if err := s.ParentRepo.Save(&parent); err != nil {
		return models.Parent{}, "", err
	}

	token, err := s.generateToken(parent.FirebaseUID, "parent")
	if err != nil {
		return models.Parent{}, "", err
	}
	return parent, token, nil
}

func (s *AuthService) LoginParent(email, password string) (models.Parent, string, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return models.Parent{}, "", models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(parent.Password), []byte(password)); err != nil {
		return models.Parent{}, "", models.ErrInvalidCredentials
	}

	token, err := s.generateToken(parent.FirebaseUID, "parent")
	if err != nil {
		return models.Parent{}, "", err
	}
	return parent, token, nil
}

// LoginChild authenticates a child by profile id and per-child PIN. The id
// is the canonical key; the display name plays no part in authentication.
// The wrong PIN fails identically for every profile.
func (s *AuthService) LoginChild(childID uint, pin string) (models.Child, string, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Child{}, "", models.ErrProfileNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(child.PinHash), []byte(pin)); err != nil {
		return models.Child{}, "", models.ErrInvalidCredentials
	}

	// Children have no backend auth account, so the session is recorded
	// server-side to survive device restarts and to allow revocation.
	session := models.ChildSession{
		ChildID:   child.ID,
		Token:     uuid.NewString(),
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(childSessionTTL),
	}
	if err := s.SessionRepo.Save(&session); err != nil {
		return models.Child{}, "", err
	}

	token, err := s.generateToken(strconv.FormatUint(uint64(child.ID), 10), "child")
	if err != nil {
		return models.Child{}, "", err
	}
	return child, token, nil
}

// LogoutChild drops every stored session for the child. Parent logout is a
// client-side token discard; there is nothing to revoke server-side.
func (s *AuthService) LogoutChild(childID uint) error {
	if _, err := s.ChildRepo.FindByID(childID); err != nil {
		return models.ErrProfileNotFound
	}
	return s.SessionRepo.DeleteByChildID(childID)
}

// VerifyToken resolves an authenticated uid to its parent or child record.
func (s *AuthService) VerifyToken(uid, userType string) (interface{}, error) {
	switch userType {
	case "parent":
		parent, err := s.ParentRepo.FindByFirebaseUID(uid)
		if err != nil {
			return nil, models.ErrProfileNotFound
		}
		return parent, nil
	case "child":
		childID, err := strconv.ParseUint(uid, 10, 64)
		if err != nil {
			return nil, models.ErrProfileNotFound
		}
		child, err := s.ChildRepo.FindByID(uint(childID))
		if err != nil {
			return nil, models.ErrProfileNotFound
		}
		return child, nil
	}
	return nil, models.ErrProfileNotFound
}

// UpdateDeviceToken stores the FCM token of the parent's device so alerts
// can be pushed to it.
func (s *AuthService) UpdateDeviceToken(parentFirebaseUID, deviceToken string) error {
	parent, err := s.ParentRepo.FindByFirebaseUID(parentFirebaseUID)
	if err != nil {
		return models.ErrProfileNotFound
	}
	parent.DeviceToken = deviceToken
	return s.ParentRepo.Save(&parent)
}

func (s *AuthService) generateToken(uid, userType string) (string, error) {
	claims := &Claims{
		UID:      uid,
		UserType: userType,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}
