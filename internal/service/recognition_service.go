package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-object-recognizer/internal/dictionary"
	apperrors "go-object-recognizer/internal/errors"
	"go-object-recognizer/internal/logger"
	"go-object-recognizer/internal/repository"
	"go-object-recognizer/pkg/models"

	"github.com/sirupsen/logrus"
)

const (
	captureTimeLayout = "03:04 PM"
	displayTimeLayout = "03:04 PM, Jan 02"
)

// RecognitionService exposes the operations behind the HTTP surface:
// storing uploads, serving image bytes, reporting pending work and
// listing enriched processed entries.
type RecognitionService interface {
	// UploadImage decodes a base64 data-URI payload and stores it as a
	// pending record, returning the new record id.
	UploadImage(ctx context.Context, dataURI string) (string, error)

	// ImageData returns the raw image bytes of a stored record.
	ImageData(ctx context.Context, id string) ([]byte, error)

	// HasPending reports whether any records still await classification.
	HasPending(ctx context.Context) (bool, error)

	// ListProcessedEntries returns all processed records newest-first,
	// each enriched with a normalized label, confidence percentage and
	// dictionary definition.
	ListProcessedEntries(ctx context.Context) ([]models.Entry, error)
}

type recognitionService struct {
	images   repository.ImageRepository
	resolver dictionary.Resolver
}

// NewRecognitionService creates a recognition service over the given
// image repository and definition resolver.
func NewRecognitionService(images repository.ImageRepository, resolver dictionary.Resolver) RecognitionService {
	return &recognitionService{
		images:   images,
		resolver: resolver,
	}
}

// UploadImage decodes the data-URI payload and inserts a pending record.
func (s *recognitionService) UploadImage(ctx context.Context, dataURI string) (string, error) {
	_, encoded, found := strings.Cut(dataURI, ",")
	if !found {
		return "", apperrors.NewValidationError("invalid image data", nil)
	}

	binary, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", apperrors.NewValidationError("invalid image encoding", err)
	}

	now := time.Now()
	record := &repository.ImageRecord{
		Timestamp:     now.Unix(),
		FormattedTime: now.Format(captureTimeLayout),
		ImageData:     binary,
		Status:        repository.StatusPending,
	}

	id, err := s.images.Insert(ctx, record)
	if err != nil {
		return "", apperrors.NewStorageError("failed to store image", err)
	}

	logger.WithField("image_id", id).Info("Image uploaded successfully")
	return id, nil
}

// ImageData returns the raw image bytes of a stored record.
func (s *recognitionService) ImageData(ctx context.Context, id string) ([]byte, error) {
	record, err := s.images.FindByID(ctx, id)
	switch {
	case errors.Is(err, repository.ErrInvalidImageID):
		return nil, apperrors.NewValidationError("invalid image id", err)
	case errors.Is(err, repository.ErrImageNotFound):
		return nil, apperrors.NewNotFoundError("image not found", err)
	case err != nil:
		return nil, apperrors.NewStorageError("failed to load image", err)
	}

	if len(record.ImageData) == 0 {
		return nil, apperrors.NewNotFoundError("image not found", nil)
	}
	return record.ImageData, nil
}

// HasPending reports whether any records still await classification.
func (s *recognitionService) HasPending(ctx context.Context) (bool, error) {
	count, err := s.images.CountByStatus(ctx, repository.StatusPending)
	if err != nil {
		return false, apperrors.NewStorageError("failed to count pending images", err)
	}
	return count > 0, nil
}

// ListProcessedEntries returns enriched processed records newest-first.
func (s *recognitionService) ListProcessedEntries(ctx context.Context) ([]models.Entry, error) {
	records, err := s.images.FindByStatus(ctx, repository.StatusProcessed)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to load processed images", err)
	}

	entries := make([]models.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, s.enrichEntry(ctx, record))
	}
	return entries, nil
}

// enrichEntry derives the display fields for one processed record. The
// definition is resolved over the network and written back to the
// store best-effort; a failed write is logged and the entry is still
// rendered. Enrichment is idempotent, so recomputing on every listing
// simply overwrites the stored definition.
func (s *recognitionService) enrichEntry(ctx context.Context, record repository.ImageRecord) models.Entry {
	entry := models.Entry{
		ImageID:       record.ID.Hex(),
		Timestamp:     record.Timestamp,
		FormattedTime: record.FormattedTime,
		CapturedAt:    time.Unix(record.Timestamp, 0).Format(displayTimeLayout),
	}

	if len(record.Classifications) == 0 {
		entry.TopClass = "Unknown"
		entry.Definition = dictionary.NoDefinition
		entry.Confidence = "0%"
		return entry
	}

	top := record.Classifications[0]
	word := dictionary.NormalizeWord(top.Label)
	if word == "" {
		// The classifier emitted a label with no usable token.
		entry.TopClass = "Unknown"
		entry.Definition = dictionary.NoDefinition
		entry.Confidence = "0%"
		return entry
	}

	definition := s.resolver.Lookup(ctx, word)

	if err := s.images.SetDefinition(ctx, record.ID, definition); err != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"image_id": record.ID.Hex(),
			"word":     word,
		}).Warn("Failed to persist definition")
	}

	entry.TopClass = word
	entry.Confidence = fmt.Sprintf("%.2f%%", top.Confidence*100)
	entry.Definition = definition
	return entry
}
