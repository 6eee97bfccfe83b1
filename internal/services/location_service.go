package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"Stowage/internal/helpers"
	"Stowage/internal/store"

	"github.com/sirupsen/logrus"
)

// DefaultLocations returns the set every account starts with.
func DefaultLocations() []string {
	return []string{"Basement", "Garage", "Attic"}
}

type LocationService interface {
	FetchOrInitialize(ctx context.Context, userID string) ([]string, error)
	AddLocation(ctx context.Context, userID string, name string) ([]string, error)
}

type locationServiceImpl struct {
	docs       store.DocumentStore
	logService LogService
}

func NewLocationService(docs store.DocumentStore, logService LogService) LocationService {
	return &locationServiceImpl{docs: docs, logService: logService}
}

// FetchOrInitialize reads the user's location set. A record without one gets
// the defaults written back immediately, so the next read is consistent.
func (s *locationServiceImpl) FetchOrInitialize(ctx context.Context, userID string) ([]string, error) {
	path := helpers.UserDocPath(userID)
	record, err := s.docs.Get(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if locations, ok := toLocations(record["availableLocations"]); ok {
		return locations, nil
	}
	defaults := DefaultLocations()
	if err := s.docs.Update(ctx, path, store.Record{"availableLocations": defaults}); err != nil {
		return nil, err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"userId": userID,
	}).Info("initialized default locations")
	return defaults, nil
}

// AddLocation inserts a trimmed, case-sensitively new label, re-sorts the
// whole set and persists it as a full replacement. Blank and duplicate names
// are no-ops returning the current set.
func (s *locationServiceImpl) AddLocation(ctx context.Context, userID string, name string) ([]string, error) {
	locations, err := s.FetchOrInitialize(ctx, userID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return locations, nil
	}
	for _, existing := range locations {
		if existing == name {
			return locations, nil
		}
	}
	locations = append(locations, name)
	sort.Strings(locations)
	err = s.docs.Update(ctx, helpers.UserDocPath(userID), store.Record{"availableLocations": locations})
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func toLocations(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
