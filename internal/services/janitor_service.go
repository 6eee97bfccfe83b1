package services

import (
	"context"
	"errors"
	"sync"

	"Stowage/internal/config"
	"Stowage/internal/helpers"
	"Stowage/internal/store"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor sweeps orphaned photo objects. Box deletion removes blobs on a
// best-effort basis only, so objects whose box document is gone accumulate
// until a sweep collects them.
type Janitor struct {
	docs          store.DocumentStore
	blobs         store.BlobStore
	logService    LogService
	configuration *config.Configuration
	sweeping      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	docs store.DocumentStore,
	blobs store.BlobStore,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		docs:          docs,
		blobs:         blobs,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

func (j *Janitor) ForceStartSweepCycle() error {
	j.mutex.Lock()
	if j.sweeping {
		j.mutex.Unlock()
		return errors.New("sweep is in progress")
	}
	j.sweeping = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.sweeping = false
			j.mutex.Unlock()
		}()
		j.sweep(context.Background(), true)
	}()

	return nil
}

func (j *Janitor) StartSweepCycle() {
	j.logService.Log.Debug("starting blob sweep job")

	cronSchedule := j.configuration.Janitor.Schedule
	_, err := j.cron.AddFunc(cronSchedule, func() {
		j.mutex.Lock()
		if j.sweeping {
			j.mutex.Unlock()
			return
		}
		j.sweeping = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.sweeping = false
			j.mutex.Unlock()
		}()
		j.sweep(context.Background(), false)
	})

	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "sweep",
			"error": err.Error(),
		}).Error("Failed to start sweep job")
	}
	j.cron.Start()
}

func (j *Janitor) StopSweep() {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	j.cron.Stop()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "sweep",
		"status": "stopped",
	}).Info("Janitor sweep stopped")
}

func (j *Janitor) IsSweeping() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.sweeping
}

func (j *Janitor) sweep(ctx context.Context, forced bool) {
	logFields := logrus.Fields{"job": "sweep", "status": "start"}
	if forced {
		logFields["status"] = "forced"
	}
	j.logService.Log.WithFields(logFields).Info("sweeping orphaned photo objects")

	users, err := j.docs.ListChildren(ctx, helpers.UsersCollection)
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "sweep",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to list user documents")
		return
	}

	var removedCount int
	for i := range users {
		removedCount += j.sweepUser(ctx, users[i].ID())
	}
	if removedCount > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "sweep",
			"status": "success",
			"count":  removedCount,
		}).Info("sweep job finished")
	}
}

func (j *Janitor) sweepUser(ctx context.Context, userID string) int {
	boxDocs, err := j.docs.ListChildren(ctx, helpers.BoxCollectionPath(userID))
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "sweep",
			"status": "error",
			"userId": userID,
			"error":  err.Error(),
		}).Error("Failed to list box documents")
		return 0
	}
	liveBoxes := make(map[string]struct{}, len(boxDocs))
	for i := range boxDocs {
		liveBoxes[boxDocs[i].ID()] = struct{}{}
	}

	keys, err := j.blobs.List(ctx, helpers.UserBlobPrefix(userID))
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "sweep",
			"status": "error",
			"userId": userID,
			"error":  err.Error(),
		}).Error("Failed to list photo objects")
		return 0
	}

	var removed int
	for _, key := range keys {
		boxID := helpers.BoxIDFromObjectPath(key)
		if boxID == "" {
			continue
		}
		if _, alive := liveBoxes[boxID]; alive {
			continue
		}
		if err := j.blobs.Delete(ctx, key); err != nil {
			j.logService.Log.WithFields(logrus.Fields{
				"job":    "sweep",
				"status": "error",
				"object": key,
				"error":  err.Error(),
			}).Error("Failed to delete orphaned object")
			continue
		}
		removed++
	}
	return removed
}
