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

type BoxService interface {
	ListBoxes(ctx context.Context, userID string) ([]models.Box, error)
	GetBox(ctx context.Context, userID, boxID string) (*models.Box, error)
	DeleteBox(ctx context.Context, userID, boxID string) error
}

type boxServiceImpl struct {
	docs       store.DocumentStore
	blobs      store.BlobStore
	logService LogService
}

func NewBoxService(docs store.DocumentStore, blobs store.BlobStore, logService LogService) BoxService {
	return &boxServiceImpl{docs: docs, blobs: blobs, logService: logService}
}

func (s *boxServiceImpl) ListBoxes(ctx context.Context, userID string) ([]models.Box, error) {
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

func (s *boxServiceImpl) GetBox(ctx context.Context, userID, boxID string) (*models.Box, error) {
	record, err := s.docs.Get(ctx, helpers.BoxDocPath(userID, boxID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBoxNotFound
		}
		return nil, err
	}
	return mapper.RecordToBox(boxID, record)
}

// DeleteBox removes the document first, then sweeps the box's photo objects.
// Blob failures after the document is gone are logged and left for the
// janitor; they never roll the delete back.
func (s *boxServiceImpl) DeleteBox(ctx context.Context, userID, boxID string) error {
	err := s.docs.Delete(ctx, helpers.BoxDocPath(userID, boxID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBoxNotFound
		}
		return err
	}

	keys, err := s.blobs.List(ctx, helpers.BoxBlobPrefix(userID, boxID))
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"userId": userID,
			"boxId":  boxID,
			"error":  err.Error(),
		}).Warn("could not list box photos for cleanup")
		return nil
	}
	for _, key := range keys {
		if err := s.blobs.Delete(ctx, key); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"userId": userID,
				"boxId":  boxID,
				"object": key,
				"error":  err.Error(),
			}).Warn("could not delete box photo")
		}
	}
	return nil
}
