package services

import (
	"context"
	"errors"

	"Stowage/internal/helpers"
	"Stowage/internal/mapper"
	"Stowage/internal/models"
	"Stowage/internal/store"

	"github.com/sirupsen/logrus"
)

type UserService interface {
	FetchUser(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, firstName, lastName, email string) error
}

type userServiceImpl struct {
	docs       store.DocumentStore
	logService LogService
}

func NewUserService(docs store.DocumentStore, logService LogService) UserService {
	return &userServiceImpl{docs: docs, logService: logService}
}

// FetchUser rebuilds the session user: profile fields from the user document
// plus every box from the boxes child collection. Malformed box records are
// skipped, not fatal. The result is fresh per call and never cached.
func (s *userServiceImpl) FetchUser(ctx context.Context, userID string) (*models.User, error) {
	record, err := s.docs.Get(ctx, helpers.UserDocPath(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user := &models.User{UserID: userID}
	user.FirstName, _ = record["firstName"].(string)
	user.LastName, _ = record["lastName"].(string)
	user.Email, _ = record["email"].(string)
	if locations, ok := toLocations(record["availableLocations"]); ok {
		user.AvailableLocations = locations
	}

	boxes, err := s.fetchBoxes(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(boxes) == 0 {
		// Accounts written before boxes became a child collection carried
		// them as an inline array on the user document. Read-only support.
		boxes = decodeInlineBoxes(record["boxes"])
	}
	user.Boxes = boxes
	return user, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID, firstName, lastName, email string) error {
	err := s.docs.Update(ctx, helpers.UserDocPath(userID), store.Record{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *userServiceImpl) fetchBoxes(ctx context.Context, userID string) ([]models.Box, error) {
	docs, err := s.docs.ListChildren(ctx, helpers.BoxCollectionPath(userID))
	if err != nil {
		return nil, err
	}
	boxes := make([]models.Box, 0, len(docs))
	for i := range docs {
		record, err := store.DecodeDocument(docs[i])
		if err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"path":  docs[i].Path,
				"error": err.Error(),
			}).Warn("skipping undecodable box document")
			continue
		}
		box, err := mapper.RecordToBox(docs[i].ID(), record)
		if err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"path":  docs[i].Path,
				"error": err.Error(),
			}).Warn("skipping malformed box record")
			continue
		}
		boxes = append(boxes, *box)
	}
	return boxes, nil
}

func decodeInlineBoxes(value interface{}) []models.Box {
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}
	boxes := make([]models.Box, 0, len(raw))
	for _, entry := range raw {
		record, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		id, ok := record["id"].(string)
		if !ok {
			continue
		}
		box, err := mapper.RecordToBox(id, record)
		if err != nil {
			continue
		}
		boxes = append(boxes, *box)
	}
	return boxes
}
