package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"Stowage/internal/helpers"
	"Stowage/internal/mapper"
	"Stowage/internal/models"
	"Stowage/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadOutcome is the settled result of one photo upload within a Save.
type UploadOutcome struct {
	Index int
	URL   string
	Err   error
}

type draftPhoto struct {
	data        []byte
	contentType string
}

// BoxEditor owns the draft state of exactly one box being created or edited.
// The draft keeps a blank trailing item slot as a typing convenience; that
// slot, and any other blank entry, never reaches the persisted record.
// An editor instance is not safe for concurrent use by multiple goroutines;
// the only internal synchronization is the single-Save guard.
type BoxEditor struct {
	userID string
	boxID  string

	name          string
	items         []string
	photos        []draftPhoto
	location      string
	locationNotes string
	remoteURLs    []string

	docs       store.DocumentStore
	blobs      store.BlobStore
	logService LogService
	client     *http.Client

	mutex  sync.Mutex
	saving bool
}

// NewBoxEditor opens a draft. With an existing box the fields are seeded from
// it and a blank item slot is appended for the next entry; photo bytes are
// not resolved until LoadPhotos. With nil the draft starts empty, and the box
// id is generated at first save.
func NewBoxEditor(userID string, existing *models.Box, docs store.DocumentStore, blobs store.BlobStore, logService LogService) *BoxEditor {
	editor := &BoxEditor{
		userID:     userID,
		items:      []string{""},
		docs:       docs,
		blobs:      blobs,
		logService: logService,
		client:     http.DefaultClient,
	}
	if existing != nil {
		editor.boxID = existing.ID
		editor.name = existing.Name
		editor.location = existing.Location
		editor.locationNotes = existing.LocationNotes
		editor.remoteURLs = append([]string(nil), existing.PhotoURLs...)
		editor.items = append([]string(nil), existing.Items...)
		if len(editor.items) == 0 || editor.items[len(editor.items)-1] != "" {
			editor.items = append(editor.items, "")
		}
	}
	return editor
}

// LoadPhotos resolves the existing photo URLs into draft payloads. Fetches
// run concurrently; a failed fetch drops that photo and the rest survive.
// Arrival order never reorders photos: results keep URL order.
func (e *BoxEditor) LoadPhotos(ctx context.Context) {
	if len(e.remoteURLs) == 0 {
		return
	}
	fetched := make([]*draftPhoto, len(e.remoteURLs))
	var wg sync.WaitGroup
	for i, photoURL := range e.remoteURLs {
		wg.Add(1)
		go func(i int, photoURL string) {
			defer wg.Done()
			photo, err := e.fetchPhoto(ctx, photoURL)
			if err != nil {
				e.logService.Log.WithFields(logrus.Fields{
					"url":   photoURL,
					"error": err.Error(),
				}).Warn("could not load photo")
				return
			}
			fetched[i] = photo
		}(i, photoURL)
	}
	wg.Wait()
	for _, photo := range fetched {
		if photo != nil {
			e.photos = append(e.photos, *photo)
		}
	}
	e.remoteURLs = nil
}

func (e *BoxEditor) fetchPhoto(ctx context.Context, photoURL string) (*draftPhoto, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &draftPhoto{data: data, contentType: resp.Header.Get("Content-Type")}, nil
}

func (e *BoxEditor) AddPhoto(data []byte, contentType string) {
	e.photos = append(e.photos, draftPhoto{data: data, contentType: contentType})
}

// RemovePhoto drops the photo at index. Out-of-range indices are a no-op;
// passing a valid index is the caller's responsibility.
func (e *BoxEditor) RemovePhoto(index int) {
	if index < 0 || index >= len(e.photos) {
		return
	}
	e.photos = append(e.photos[:index], e.photos[index+1:]...)
}

func (e *BoxEditor) PhotoCount() int {
	return len(e.photos)
}

func (e *BoxEditor) SetName(name string) {
	e.name = name
}

func (e *BoxEditor) Name() string {
	return e.name
}

func (e *BoxEditor) SetLocation(location string) {
	e.location = location
}

func (e *BoxEditor) SetLocationNotes(notes string) {
	e.locationNotes = notes
}

// SetItem writes the item slot at index. Filling the last slot grows the
// list by one blank slot, so there is always room to type the next item.
func (e *BoxEditor) SetItem(index int, text string) {
	if index < 0 || index >= len(e.items) {
		return
	}
	e.items[index] = text
	if index == len(e.items)-1 && text != "" {
		e.items = append(e.items, "")
	}
}

// RemoveItem deletes the slot at index. The list degenerates to a single
// blank slot rather than ever becoming empty.
func (e *BoxEditor) RemoveItem(index int) {
	if index < 0 || index >= len(e.items) {
		return
	}
	e.items = append(e.items[:index], e.items[index+1:]...)
	if len(e.items) == 0 {
		e.items = []string{""}
	}
}

func (e *BoxEditor) Items() []string {
	return append([]string(nil), e.items...)
}

// Save commits the draft: every pending photo is uploaded concurrently to
// its deterministic key, the document write waits behind the join over all
// uploads, and a failed upload is dropped from the URL list instead of
// aborting the save. Successful URLs keep the original photo order. The
// returned outcomes report every upload individually. A failed document
// write leaves the draft untouched for a retry. At most one Save may be in
// flight per editor.
func (e *BoxEditor) Save(ctx context.Context) (*models.Box, []UploadOutcome, error) {
	e.mutex.Lock()
	if e.saving {
		e.mutex.Unlock()
		return nil, nil, ErrSaveInProgress
	}
	e.saving = true
	e.mutex.Unlock()
	defer func() {
		e.mutex.Lock()
		e.saving = false
		e.mutex.Unlock()
	}()

	boxID := e.boxID
	if boxID == "" {
		boxID = uuid.NewString()
	}

	outcomes := make([]UploadOutcome, len(e.photos))
	var wg sync.WaitGroup
	for i := range e.photos {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := helpers.PhotoObjectPath(e.userID, boxID, i)
			url, err := e.blobs.Put(ctx, path, e.photos[i].data, e.photos[i].contentType)
			outcomes[i] = UploadOutcome{Index: i, URL: url, Err: err}
			if err != nil {
				e.logService.Log.WithFields(logrus.Fields{
					"userId": e.userID,
					"boxId":  boxID,
					"index":  i,
					"error":  err.Error(),
				}).Warn("photo upload failed")
			}
		}(i)
	}
	wg.Wait()

	photoURLs := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err == nil {
			photoURLs = append(photoURLs, outcome.URL)
		}
	}

	box := &models.Box{
		ID:            boxID,
		Name:          e.name,
		Items:         nonBlankItems(e.items),
		PhotoURLs:     photoURLs,
		Location:      e.location,
		LocationNotes: e.locationNotes,
		Timestamp:     time.Now().UTC(),
	}
	err := e.docs.Set(ctx, helpers.BoxDocPath(e.userID, boxID), mapper.BoxToRecord(box))
	if err != nil {
		return nil, outcomes, err
	}
	e.boxID = boxID
	return box, outcomes, nil
}

func nonBlankItems(items []string) []string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			kept = append(kept, item)
		}
	}
	return kept
}
